// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

// Service handles order business logic. Item name and price are copied
// from the product at creation (snapshot-at-write); only user_name is
// resolved live on reads.
type Service struct {
	store store.Store
	seq   *store.Sequencer
}

// NewService creates a new order service
func NewService(st store.Store, seq *store.Sequencer) *Service {
	return &Service{store: st, seq: seq}
}

// ItemRequest references a product to order.
type ItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreateRequest represents order placement data.
type CreateRequest struct {
	UserID        int64                  `json:"user_id" binding:"required"`
	Items         []ItemRequest          `json:"items" binding:"required"`
	DeliveryInfo  map[string]interface{} `json:"delivery_info"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
}

// UpdateStatusRequest represents an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create places an order. Each item's name and price are snapshotted from
// the product record at this moment; later product edits never alter the
// stored order. Stock is not validated or decremented.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.New(apperr.Validation, "Order must contain at least one item")
	}

	status := req.Status
	if status == "" {
		status = StatusOrdered
	}
	if !ValidStatus(status) {
		return nil, apperr.New(apperr.Validation, "Invalid order status")
	}

	var items []OrderItem
	var total float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperr.New(apperr.Validation, "Item quantity must be at least 1")
		}

		var p catalog.Product
		err := s.store.FindOne(ctx, store.Products, store.Filter{"id": item.ProductID}, &p)
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(apperr.Validation, "Product %d not found", item.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot product %d: %w", item.ProductID, err)
		}

		items = append(items, OrderItem{
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Price:       p.Price,
		})
		total += p.Price * float64(item.Quantity)
	}

	o := Order{
		ID:            s.seq.Next(store.Orders),
		UserID:        req.UserID,
		Items:         items,
		TotalAmount:   total,
		Status:        status,
		DeliveryInfo:  req.DeliveryInfo,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, store.Orders, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.enrich(ctx, &o)
	return &o, nil
}

// List returns orders newest first, optionally filtered by user.
// A degraded durable read yields an empty list.
func (s *Service) List(ctx context.Context, userID *int64) ([]Order, error) {
	filter := store.Filter{}
	if userID != nil {
		filter["user_id"] = *userID
	}

	var orders []Order
	err := s.store.Find(ctx, store.Orders, filter, &store.FindOptions{SortBy: "created_at", Desc: true}, &orders)
	if errors.Is(err, store.ErrUnavailable) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	for i := range orders {
		s.enrich(ctx, &orders[i])
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get retrieves a single order by id.
func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := s.store.FindOne(ctx, store.Orders, store.Filter{"id": id}, &o)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	s.enrich(ctx, &o)
	return &o, nil
}

// UpdateStatus moves an order to a new status. Items and totals are
// immutable after placement.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	if !ValidStatus(status) {
		return nil, apperr.New(apperr.Validation, "Invalid order status")
	}

	now := time.Now().UTC()
	matched, err := s.store.Update(ctx, store.Orders, store.Filter{"id": id}, store.Filter{"status": status, "updated_at": &now})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if matched == 0 {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}

	var o Order
	if err := s.store.FindOne(ctx, store.Orders, store.Filter{"id": id}, &o); err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	s.enrich(ctx, &o)
	return &o, nil
}

// enrich resolves user_name at read time, tolerating dangling references.
func (s *Service) enrich(ctx context.Context, o *Order) {
	var u user.User
	if err := s.store.FindOne(ctx, store.Users, store.Filter{"id": o.UserID}, &u); err != nil {
		o.UserName = "Unknown"
		return
	}
	o.UserName = u.Name
}
