// internal/domain/catalog/product_service.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store"
)

// ProductService handles product business logic
type ProductService struct {
	store store.Store
	seq   *store.Sequencer
	hub   *realtime.Hub
}

// NewProductService creates a new product service
func NewProductService(st store.Store, seq *store.Sequencer, hub *realtime.Hub) *ProductService {
	return &ProductService{store: st, seq: seq, hub: hub}
}

// ProductRequest carries the writable product fields. Updates are full
// field replacement, not a merge, so the same shape serves create and update.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"category_id"`
}

// DeletedPayload is broadcast when a record is removed.
type DeletedPayload struct {
	ID int64 `json:"id"`
}

func (r *ProductRequest) validate() error {
	if r.Price < 0 {
		return apperr.New(apperr.Validation, "Price must not be negative")
	}
	if r.Stock < 0 {
		return apperr.New(apperr.Validation, "Stock must not be negative")
	}
	return nil
}

// List returns all products. A degraded durable read yields an empty list.
func (s *ProductService) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.store.Find(ctx, store.Products, store.Filter{}, nil, &products)
	if errors.Is(err, store.ErrUnavailable) {
		return []Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// ListByCategory returns the products referencing a category.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	var products []Product
	err := s.store.Find(ctx, store.Products, store.Filter{"category_id": categoryID}, nil, &products)
	if errors.Is(err, store.ErrUnavailable) {
		return []Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Get retrieves a single product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := s.store.FindOne(ctx, store.Products, store.Filter{"id": id}, &p)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create assigns the next product id, stamps created_at and commits the
// record, then broadcasts product.added. No event is emitted on failure.
func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	p := Product{
		ID:          s.seq.Next(store.Products),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, store.Products, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.hub.Publish(realtime.ProductAdded, p)
	return &p, nil
}

// Update replaces the writable fields and stamps updated_at, then
// broadcasts product.updated with the committed record.
func (s *ProductService) Update(ctx context.Context, id int64, req *ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set := store.Filter{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image_url":   req.ImageURL,
		"stock":       req.Stock,
		"category_id": req.CategoryID,
		"updated_at":  &now,
	}

	matched, err := s.store.Update(ctx, store.Products, store.Filter{"id": id}, set)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if matched == 0 {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}

	var p Product
	if err := s.store.FindOne(ctx, store.Products, store.Filter{"id": id}, &p); err != nil {
		return nil, fmt.Errorf("reload product: %w", err)
	}

	s.hub.Publish(realtime.ProductUpdated, p)
	return &p, nil
}

// Delete removes a product and broadcasts product.deleted with its id.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	removed, err := s.store.Delete(ctx, store.Products, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if removed == 0 {
		return apperr.New(apperr.NotFound, "Product not found")
	}

	s.hub.Publish(realtime.ProductDeleted, DeletedPayload{ID: id})
	return nil
}
