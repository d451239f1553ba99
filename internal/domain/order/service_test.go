// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

func newOrderFixture(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := store.NewVolatileStore()
	seq := store.NewSequencer()
	ctx := context.Background()

	require.NoError(t, st.Insert(ctx, store.Users, user.User{ID: 1, Name: "John Doe", Email: "user@user.com"}))
	require.NoError(t, st.Insert(ctx, store.Products, catalog.Product{ID: 1, Name: "Shirt", Price: 29.99, Stock: 50}))
	require.NoError(t, st.Insert(ctx, store.Products, catalog.Product{ID: 2, Name: "Shoes", Price: 89.99, Stock: 10}))
	require.NoError(t, seq.InitFromStore(ctx, st))

	return NewService(st, seq), st
}

func TestCreate_SnapshotsNameAndPrice(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, &CreateRequest{
		UserID: 1,
		Items: []ItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, o.Items, 2)
	assert.Equal(t, OrderItem{ProductName: "Shirt", Quantity: 2, Price: 29.99}, o.Items[0])
	assert.Equal(t, OrderItem{ProductName: "Shoes", Quantity: 1, Price: 89.99}, o.Items[1])
	assert.InDelta(t, 149.97, o.TotalAmount, 0.001)
	assert.Equal(t, StatusOrdered, o.Status)
	assert.Equal(t, "John Doe", o.UserName)
}

func TestCreate_SnapshotImmuneToLaterProductEdits(t *testing.T) {
	svc, st := newOrderFixture(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, &CreateRequest{
		UserID: 1,
		Items:  []ItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = st.Update(ctx, store.Products, store.Filter{"id": int64(1)}, store.Filter{"name": "Renamed", "price": 99.0})
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", reloaded.Items[0].ProductName)
	assert.Equal(t, 29.99, reloaded.Items[0].Price)
	assert.InDelta(t, 29.99, reloaded.TotalAmount, 0.001)
}

func TestCreate_RejectsEmptyAndInvalidItems(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateRequest{UserID: 1})
	assert.Equal(t, apperr.Validation, apperr.ClassOf(err))

	_, err = svc.Create(ctx, &CreateRequest{
		UserID: 1,
		Items:  []ItemRequest{{ProductID: 1, Quantity: 0}},
	})
	assert.Equal(t, apperr.Validation, apperr.ClassOf(err))
}

func TestCreate_MissingProductIsValidationError(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), &CreateRequest{
		UserID: 1,
		Items:  []ItemRequest{{ProductID: 404, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.ClassOf(err))
	assert.Contains(t, apperr.MessageOf(err), "404")
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), &CreateRequest{
		UserID: 1,
		Items:  []ItemRequest{{ProductID: 1, Quantity: 1}},
		Status: "teleported",
	})
	assert.Equal(t, apperr.Validation, apperr.ClassOf(err))
}

func TestList_NewestFirstAndUserFilter(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &CreateRequest{UserID: 1, Items: []ItemRequest{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, &CreateRequest{UserID: 9, Items: []ItemRequest{{ProductID: 2, Quantity: 1}}})
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	uid := int64(1)
	mine, err := svc.List(ctx, &uid)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestList_DanglingUserReadsAsUnknown(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateRequest{UserID: 55, Items: []ItemRequest{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)

	uid := int64(55)
	orders, err := svc.List(ctx, &uid)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Unknown", orders[0].UserName)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, &CreateRequest{UserID: 1, Items: []ItemRequest{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, o.ID, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, updated.Status)
	require.NotNil(t, updated.UpdatedAt)
	// Items are immutable after placement.
	assert.Equal(t, o.Items, updated.Items)

	_, err = svc.UpdateStatus(ctx, o.ID, "lost")
	assert.Equal(t, apperr.Validation, apperr.ClassOf(err))

	_, err = svc.UpdateStatus(ctx, 999, StatusShipped)
	assert.Equal(t, apperr.NotFound, apperr.ClassOf(err))
}

func TestGet_Missing(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.Get(context.Background(), 12)
	assert.Equal(t, apperr.NotFound, apperr.ClassOf(err))
}
