// internal/domain/catalog/category_service.go
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

// CategoryService handles category business logic
type CategoryService struct {
	store store.Store
	seq   *store.Sequencer
	hub   *realtime.Hub
}

// NewCategoryService creates a new category service
func NewCategoryService(st store.Store, seq *store.Sequencer, hub *realtime.Hub) *CategoryService {
	return &CategoryService{store: st, seq: seq, hub: hub}
}

// CategoryRequest carries the writable category fields.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// List returns all categories. A degraded durable read yields an empty list.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.store.Find(ctx, store.Categories, store.Filter{}, nil, &categories)
	if errors.Is(err, store.ErrUnavailable) {
		return []Category{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

// Get retrieves a single category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := s.store.FindOne(ctx, store.Categories, store.Filter{"id": id}, &c)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create assigns the next category id and commits the record, then
// broadcasts category.added.
func (s *CategoryService) Create(ctx context.Context, req *CategoryRequest) (*Category, error) {
	c := Category{
		ID:          s.seq.Next(store.Categories),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.store.Insert(ctx, store.Categories, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.hub.Publish(realtime.CategoryAdded, c)
	return &c, nil
}

// Update replaces name and description and stamps updated_at, then
// broadcasts category.updated.
func (s *CategoryService) Update(ctx context.Context, id int64, req *CategoryRequest) (*Category, error) {
	now := time.Now().UTC()
	set := store.Filter{
		"name":        req.Name,
		"description": req.Description,
		"updated_at":  &now,
	}

	matched, err := s.store.Update(ctx, store.Categories, store.Filter{"id": id}, set)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if matched == 0 {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}

	var c Category
	if err := s.store.FindOne(ctx, store.Categories, store.Filter{"id": id}, &c); err != nil {
		return nil, fmt.Errorf("reload category: %w", err)
	}

	s.hub.Publish(realtime.CategoryUpdated, c)
	return &c, nil
}

// Delete removes a category unless products still reference it. The
// returned count reports how many products blocked the deletion; it is zero
// when the delete went through.
func (s *CategoryService) Delete(ctx context.Context, id int64) (int64, error) {
	var blocking []Product
	if err := s.store.Find(ctx, store.Products, store.Filter{"category_id": id}, nil, &blocking); err != nil {
		// The guard protects a write; a failed read must not pass for
		// "no references".
		return 0, apperr.Wrap(apperr.Unavailable, err, "Could not verify category references")
	}
	if n := int64(len(blocking)); n > 0 {
		return n, apperr.New(apperr.Conflict, "Cannot delete category while products reference it")
	}

	removed, err := s.store.Delete(ctx, store.Categories, store.Filter{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	if removed == 0 {
		return 0, apperr.New(apperr.NotFound, "Category not found")
	}

	s.hub.Publish(realtime.CategoryDeleted, DeletedPayload{ID: id})
	return 0, nil
}
