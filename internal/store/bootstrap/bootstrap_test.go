// internal/store/bootstrap/bootstrap_test.go
package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/domain/order"
	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/store"
)

func TestNewVolatile_LoadsSampleData(t *testing.T) {
	seq := store.NewSequencer()
	st := NewVolatile(seq)
	ctx := context.Background()

	counts := map[store.Kind]int64{
		store.Users:        2,
		store.Categories:   3,
		store.Products:     3,
		store.Orders:       1,
		store.Transactions: 2,
		store.Contacts:     0,
	}
	for kind, want := range counts {
		got, err := st.Count(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, "count of %s", kind)
	}
}

func TestNewVolatile_SeedsSequencerPastSampleIds(t *testing.T) {
	seq := store.NewSequencer()
	st := NewVolatile(seq)
	ctx := context.Background()

	// Every counter starts just past the bundled data's maximum id.
	for _, kind := range store.SequencedKinds {
		max, err := st.MaxID(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, max+1, seq.Peek(kind), "seed of %s", kind)
	}

	assert.Equal(t, int64(3), seq.Next(store.Users))
	assert.Equal(t, int64(4), seq.Next(store.Products))
	assert.Equal(t, int64(2), seq.Next(store.Orders))
}

func TestNewVolatile_SampleRecordsAreQueryable(t *testing.T) {
	seq := store.NewSequencer()
	st := NewVolatile(seq)
	ctx := context.Background()

	var admin user.User
	require.NoError(t, st.FindOne(ctx, store.Users, store.Filter{"email": "admin@admin.com"}, &admin))
	assert.Equal(t, user.RoleAdmin, admin.Role)

	var shirts []catalog.Product
	require.NoError(t, st.Find(ctx, store.Products, store.Filter{"category_id": int64(1)}, nil, &shirts))
	require.Len(t, shirts, 1)
	assert.Equal(t, "Classic White Shirt", shirts[0].Name)

	var demo order.Order
	require.NoError(t, st.FindOne(ctx, store.Orders, store.Filter{"id": int64(1)}, &demo))
	assert.InDelta(t, 139.97, demo.TotalAmount, 0.001)
	assert.Len(t, demo.Items, 2)
}

func TestSeedDurable_SkipsNonEmptyCollections(t *testing.T) {
	// The volatile store satisfies the same interface, which is all the
	// idempotency check needs.
	st := store.NewVolatileStore()
	ctx := context.Background()

	require.NoError(t, st.Insert(ctx, store.Users, user.User{ID: 50, Name: "Existing"}))

	require.NoError(t, SeedDurable(ctx, st))

	users, err := st.Count(ctx, store.Users)
	require.NoError(t, err)
	assert.Equal(t, int64(1), users, "pre-existing users collection must not be reseeded")

	products, err := st.Count(ctx, store.Products)
	require.NoError(t, err)
	assert.Equal(t, int64(3), products, "empty collections are seeded")

	// Orders are never part of the durable seed.
	orders, err := st.Count(ctx, store.Orders)
	require.NoError(t, err)
	assert.Zero(t, orders)
}
