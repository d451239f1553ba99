// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

// Service is the cart merge engine. Each operation is a read-modify-write
// on the single cart keyed by user_id; the individual store calls are
// atomic, but two concurrent requests for the same user can still race
// across their own read-write windows. Stock is never checked here — that
// is deferred to order placement.
type Service struct {
	store store.Store
}

// NewService creates a new cart service
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// AddItemRequest represents an add-to-cart request body
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// Get returns the user's cart. A missing cart reads as an empty one.
func (s *Service) Get(ctx context.Context, userID int64) (*Cart, error) {
	var c Cart
	err := s.store.FindOne(ctx, store.Carts, store.Filter{"user_id": userID}, &c)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return &Cart{UserID: userID, Items: []Item{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c, nil
}

// AddItem merges an item into the user's cart: a missing cart is created
// with the single item, an existing entry for the product has its quantity
// incremented, and anything else is appended. Duplicate product entries
// never survive a merge.
func (s *Service) AddItem(ctx context.Context, userID, productID int64, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, apperr.New(apperr.Validation, "Quantity must be at least 1")
	}

	var c Cart
	err := s.store.FindOne(ctx, store.Carts, store.Filter{"user_id": userID}, &c)
	if errors.Is(err, store.ErrNotFound) {
		c = Cart{
			UserID:    userID,
			Items:     []Item{{ProductID: productID, Quantity: quantity}},
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.store.Insert(ctx, store.Carts, c); err != nil {
			return nil, fmt.Errorf("create cart: %w", err)
		}
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, Item{ProductID: productID, Quantity: quantity})
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.writeBack(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RemoveItem drops the matching item from the cart. Removing an item that
// is not there is a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, userID, productID int64) (*Cart, error) {
	var c Cart
	err := s.store.FindOne(ctx, store.Carts, store.Filter{"user_id": userID}, &c)
	if errors.Is(err, store.ErrNotFound) {
		return &Cart{UserID: userID, Items: []Item{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.Items) {
		if c.Items == nil {
			c.Items = []Item{}
		}
		return &c, nil
	}
	c.Items = kept
	c.UpdatedAt = time.Now().UTC()

	if err := s.writeBack(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) writeBack(ctx context.Context, c *Cart) error {
	set := store.Filter{
		"items":      c.Items,
		"updated_at": c.UpdatedAt,
	}
	if _, err := s.store.Update(ctx, store.Carts, store.Filter{"user_id": c.UserID}, set); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
