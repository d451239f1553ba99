// internal/store/bootstrap/fixtures.go
package bootstrap

import (
	"time"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/order"
	"github.com/faraz365/storefront-backend/internal/domain/transaction"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/store"
)

// VolatileSeeds are the sequencer counters matching the bundled sample
// data; the volatile store always starts from these.
var VolatileSeeds = map[store.Kind]int64{
	store.Users:        3,
	store.Categories:   4,
	store.Products:     4,
	store.Orders:       2,
	store.Transactions: 3,
	store.Contacts:     1,
}

// SampleUsers returns the demo accounts.
func SampleUsers() []user.User {
	now := time.Now().UTC()
	return []user.User{
		{ID: 1, Name: "Admin User", Email: "admin@admin.com", Password: "admin123", Role: user.RoleAdmin, CreatedAt: now},
		{ID: 2, Name: "John Doe", Email: "user@user.com", Password: "user123", Role: user.RoleUser, CreatedAt: now},
	}
}

// SampleCategories returns the demo categories.
func SampleCategories() []catalog.Category {
	return []catalog.Category{
		{ID: 1, Name: "Shirts", Description: "Stylish shirts for all occasions"},
		{ID: 2, Name: "Pants", Description: "Comfortable and trendy pants"},
		{ID: 3, Name: "Shoes", Description: "Quality footwear for every style"},
	}
}

// SampleProducts returns the demo products.
func SampleProducts() []catalog.Product {
	now := time.Now().UTC()
	return []catalog.Product{
		{
			ID:          1,
			Name:        "Classic White Shirt",
			Description: "Elegant white cotton shirt perfect for office and casual wear",
			Price:       29.99,
			ImageURL:    "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg",
			Stock:       50,
			CategoryID:  1,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Name:        "Blue Denim Jeans",
			Description: "Comfortable blue denim jeans with modern fit",
			Price:       49.99,
			ImageURL:    "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg",
			Stock:       35,
			CategoryID:  2,
			CreatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Black Leather Shoes",
			Description: "Premium black leather dress shoes for formal occasions",
			Price:       89.99,
			ImageURL:    "https://images.pexels.com/photos/267301/pexels-photo-267301.jpeg",
			Stock:       25,
			CategoryID:  3,
			CreatedAt:   now,
		},
	}
}

// SampleTransactions returns the demo legacy transactions.
func SampleTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: 1, UserID: 2, ProductID: 1, Quantity: 2, Status: order.StatusDelivered, TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, UserID: 2, ProductID: 3, Quantity: 1, Status: order.StatusShipped, TransactionDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
	}
}

// SampleOrders returns the demo order preloaded into the volatile store.
// The durable backend starts with no orders.
func SampleOrders() []order.Order {
	return []order.Order{
		{
			ID:          1,
			UserID:      2,
			TotalAmount: 139.97,
			Status:      order.StatusDelivered,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Items: []order.OrderItem{
				{ProductName: "Classic White Shirt", Quantity: 2, Price: 29.99},
				{ProductName: "Black Leather Shoes", Quantity: 1, Price: 89.99},
			},
		},
	}
}
