// internal/domain/transaction/service_test.go
package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/order"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

func newTransactionFixture(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := store.NewVolatileStore()
	seq := store.NewSequencer()
	ctx := context.Background()

	require.NoError(t, st.Insert(ctx, store.Users, user.User{ID: 2, Name: "John Doe"}))
	require.NoError(t, st.Insert(ctx, store.Products, catalog.Product{ID: 1, Name: "Shirt", Price: 29.99}))
	require.NoError(t, seq.InitFromStore(ctx, st))

	return NewService(st, seq), st
}

func TestCreate_EnrichesResponse(t *testing.T) {
	svc, _ := newTransactionFixture(t)

	tx, err := svc.Create(context.Background(), &CreateRequest{UserID: 2, ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, order.StatusOrdered, tx.Status)
	assert.Equal(t, "John Doe", tx.UserName)
	assert.Equal(t, "Shirt", tx.ProductName)
	assert.Equal(t, 29.99, tx.Price)
	assert.False(t, tx.TransactionDate.IsZero())
}

func TestEnrich_DanglingReferencesReadAsUnknown(t *testing.T) {
	svc, _ := newTransactionFixture(t)

	tx, err := svc.Create(context.Background(), &CreateRequest{UserID: 99, ProductID: 77, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", tx.UserName)
	assert.Equal(t, "Unknown", tx.ProductName)
	assert.Zero(t, tx.Price)
}

func TestEnrich_TracksLiveProductPrice(t *testing.T) {
	svc, st := newTransactionFixture(t)
	ctx := context.Background()

	tx, err := svc.Create(ctx, &CreateRequest{UserID: 2, ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 29.99, tx.Price)

	// Unlike orders, transactions carry no snapshot; reads follow the
	// product's current price.
	_, err = st.Update(ctx, store.Products, store.Filter{"id": int64(1)}, store.Filter{"price": 39.99})
	require.NoError(t, err)

	list, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 39.99, list[0].Price)
}

func TestList_NewestFirstAndUserFilter(t *testing.T) {
	svc, st := newTransactionFixture(t)
	ctx := context.Background()

	older := Transaction{ID: 90, UserID: 2, ProductID: 1, Quantity: 1, Status: order.StatusDelivered,
		TransactionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, st.Insert(ctx, store.Transactions, older))

	newer, err := svc.Create(ctx, &CreateRequest{UserID: 3, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	uid := int64(2)
	mine, err := svc.List(ctx, &uid)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, older.ID, mine[0].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTransactionFixture(t)
	ctx := context.Background()

	tx, err := svc.Create(ctx, &CreateRequest{UserID: 2, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, tx.ID, order.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, updated.Status)
	assert.Equal(t, "John Doe", updated.UserName)

	_, err = svc.UpdateStatus(ctx, 404, order.StatusShipped)
	assert.Equal(t, apperr.NotFound, apperr.ClassOf(err))
}
