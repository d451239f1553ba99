// internal/domain/catalog/entity.go
package catalog

import "time"

// Category groups products. Products reference it by id only; the
// reference is weak and may dangle after a category is recreated elsewhere.
type Category struct {
	ID          int64      `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Product is a catalog entry. CategoryID is a weak reference: it need not
// resolve, and readers substitute "Unknown" where it matters.
type Product struct {
	ID          int64      `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Price       float64    `bson:"price" json:"price"`
	ImageURL    string     `bson:"image_url" json:"image_url"`
	Stock       int        `bson:"stock" json:"stock"`
	CategoryID  int64      `bson:"category_id" json:"category_id"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
