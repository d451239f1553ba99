// internal/domain/cart/entity.go
package cart

import "time"

// Item is one line of a cart. A cart never holds two items for the same
// product; merges collapse duplicates by incrementing the quantity.
type Item struct {
	ProductID int64 `bson:"product_id" json:"product_id"`
	Quantity  int   `bson:"quantity" json:"quantity"`
}

// Cart holds the pending items for one user. There is at most one cart per
// user_id; carts carry no id of their own.
type Cart struct {
	UserID    int64     `bson:"user_id" json:"user_id"`
	Items     []Item    `bson:"items" json:"items"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
