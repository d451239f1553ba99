// internal/domain/analytics/service.go
package analytics

import (
	"context"

	"github.com/faraz365/storefront-backend/internal/store"
)

// Service serves the admin dashboard aggregates. Revenue and sales figures
// are canned demo data; only the product and customer totals are read from
// the live store. Real aggregate computation is out of scope.
type Service struct {
	store store.Store
}

// NewService creates a new analytics service
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// MonthlyRevenue is one month of revenue history.
type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}

// TopProduct is one entry of the best-sellers list.
type TopProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int    `json:"revenue"`
}

// StatusCount is the order count for one status, with its chart color.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// TotalStats summarizes the store.
type TotalStats struct {
	TotalRevenue   int   `json:"totalRevenue"`
	TotalOrders    int   `json:"totalOrders"`
	TotalProducts  int64 `json:"totalProducts"`
	TotalCustomers int64 `json:"totalCustomers"`
}

// Report is the full analytics payload.
type Report struct {
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
	TopProducts    []TopProduct     `json:"topProducts"`
	OrdersByStatus []StatusCount    `json:"ordersByStatus"`
	TotalStats     TotalStats       `json:"totalStats"`
}

// Get builds the dashboard report. The range parameter is accepted for
// compatibility; the canned series always covers six months.
func (s *Service) Get(ctx context.Context, _ string) *Report {
	productCount, err := s.store.Count(ctx, store.Products)
	if err != nil {
		productCount = 0
	}
	userCount, err := s.store.Count(ctx, store.Users)
	if err != nil {
		userCount = 0
	}

	return &Report{
		MonthlyRevenue: []MonthlyRevenue{
			{Month: "Jan", Revenue: 4500, Orders: 45},
			{Month: "Feb", Revenue: 5200, Orders: 52},
			{Month: "Mar", Revenue: 4800, Orders: 48},
			{Month: "Apr", Revenue: 6100, Orders: 61},
			{Month: "May", Revenue: 7300, Orders: 73},
			{Month: "Jun", Revenue: 8200, Orders: 82},
		},
		TopProducts: []TopProduct{
			{Name: "Classic White Shirt", Sales: 156, Revenue: 4680},
			{Name: "Blue Denim Jeans", Sales: 134, Revenue: 6698},
			{Name: "Black Leather Shoes", Sales: 98, Revenue: 8820},
			{Name: "Summer Dress", Sales: 87, Revenue: 3480},
			{Name: "Casual Sneakers", Sales: 76, Revenue: 4560},
		},
		OrdersByStatus: []StatusCount{
			{Status: "Delivered", Count: 245, Color: "#10B981"},
			{Status: "Shipped", Count: 67, Color: "#3B82F6"},
			{Status: "Ordered", Count: 34, Color: "#F59E0B"},
			{Status: "Cancelled", Count: 12, Color: "#EF4444"},
		},
		TotalStats: TotalStats{
			TotalRevenue:   36100,
			TotalOrders:    358,
			TotalProducts:  productCount,
			TotalCustomers: userCount,
		},
	}
}
