// internal/domain/transaction/entity.go
package transaction

import "time"

// Transaction is the legacy purchase record. Unlike orders, nothing is
// snapshotted: UserName, ProductName and Price are joined live from the
// referenced records on every read, substituting "Unknown" (or 0) when a
// reference dangles.
type Transaction struct {
	ID              int64     `bson:"id" json:"id"`
	UserID          int64     `bson:"user_id" json:"user_id"`
	ProductID       int64     `bson:"product_id" json:"product_id"`
	Quantity        int       `bson:"quantity" json:"quantity"`
	Status          string    `bson:"status" json:"status"`
	TransactionDate time.Time `bson:"transaction_date" json:"transaction_date"`

	// Read-time enrichment, never persisted.
	UserName    string  `bson:"-" json:"user_name,omitempty"`
	ProductName string  `bson:"-" json:"product_name,omitempty"`
	Price       float64 `bson:"-" json:"price"`
}
