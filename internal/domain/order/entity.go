// internal/domain/order/entity.go
package order

import "time"

// Valid order statuses.
const (
	StatusOrdered   = "ordered"
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the allowed order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOrdered, StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot taken from the product at order time.
// Later product edits must not alter it.
type OrderItem struct {
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

// Order is a placed order. UserName is resolved from the user record at
// read time and never stored.
type Order struct {
	ID            int64                  `bson:"id" json:"id"`
	UserID        int64                  `bson:"user_id" json:"user_id"`
	UserName      string                 `bson:"-" json:"user_name,omitempty"`
	Items         []OrderItem            `bson:"items" json:"items"`
	TotalAmount   float64                `bson:"total_amount" json:"total_amount"`
	Status        string                 `bson:"status" json:"status"`
	DeliveryInfo  map[string]interface{} `bson:"delivery_info,omitempty" json:"delivery_info,omitempty"`
	PaymentMethod string                 `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time             `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
