// internal/domain/transaction/service.go
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/order"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

// Service handles the legacy transaction records. Kept for compatibility
// with the old storefront client; new purchases go through orders.
type Service struct {
	store store.Store
	seq   *store.Sequencer
}

// NewService creates a new transaction service
func NewService(st store.Store, seq *store.Sequencer) *Service {
	return &Service{store: st, seq: seq}
}

// CreateRequest represents transaction creation data
type CreateRequest struct {
	UserID    int64 `json:"user_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// UpdateStatusRequest represents a transaction status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create records a transaction with status "ordered". Nothing is
// snapshotted; the response is enriched live like every read.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Transaction, error) {
	t := Transaction{
		ID:              s.seq.Next(store.Transactions),
		UserID:          req.UserID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		Status:          order.StatusOrdered,
		TransactionDate: time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, store.Transactions, t); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.enrich(ctx, &t)
	return &t, nil
}

// List returns transactions newest first, optionally filtered by user,
// each enriched with live user and product data.
func (s *Service) List(ctx context.Context, userID *int64) ([]Transaction, error) {
	filter := store.Filter{}
	if userID != nil {
		filter["user_id"] = *userID
	}

	var transactions []Transaction
	err := s.store.Find(ctx, store.Transactions, filter, &store.FindOptions{SortBy: "transaction_date", Desc: true}, &transactions)
	if errors.Is(err, store.ErrUnavailable) {
		return []Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	for i := range transactions {
		s.enrich(ctx, &transactions[i])
	}
	if transactions == nil {
		transactions = []Transaction{}
	}
	return transactions, nil
}

// UpdateStatus changes a transaction's status.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Transaction, error) {
	matched, err := s.store.Update(ctx, store.Transactions, store.Filter{"id": id}, store.Filter{"status": status})
	if err != nil {
		return nil, fmt.Errorf("update transaction status: %w", err)
	}
	if matched == 0 {
		return nil, apperr.New(apperr.NotFound, "Transaction not found")
	}

	var t Transaction
	if err := s.store.FindOne(ctx, store.Transactions, store.Filter{"id": id}, &t); err != nil {
		return nil, fmt.Errorf("reload transaction: %w", err)
	}

	s.enrich(ctx, &t)
	return &t, nil
}

// enrich joins user and product data live at read time. Dangling
// references read as "Unknown" with a zero price, never as an error.
func (s *Service) enrich(ctx context.Context, t *Transaction) {
	var u user.User
	if err := s.store.FindOne(ctx, store.Users, store.Filter{"id": t.UserID}, &u); err != nil {
		t.UserName = "Unknown"
	} else {
		t.UserName = u.Name
	}

	var p catalog.Product
	if err := s.store.FindOne(ctx, store.Products, store.Filter{"id": t.ProductID}, &p); err != nil {
		t.ProductName = "Unknown"
		t.Price = 0
	} else {
		t.ProductName = p.Name
		t.Price = p.Price
	}
}
