// internal/store/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/faraz365/storefront-backend/internal/config"
	mongodb "github.com/faraz365/storefront-backend/internal/infrastructure/database/mongo"
	"github.com/faraz365/storefront-backend/internal/store"
)

// Select picks the storage strategy exactly once, at process start. If the
// durable backend is reachable it is seeded (idempotently) and the
// sequencer is initialized from its current maximum ids; otherwise the
// process runs on the volatile store for its whole lifetime. There is no
// retry and no later promotion back to durable.
//
// The returned close function is a no-op in volatile mode.
func Select(ctx context.Context, cfg *config.Config) (store.Store, *store.Sequencer, func(context.Context) error) {
	seq := store.NewSequencer()

	client, err := mongodb.NewConnection(cfg)
	if err != nil {
		log.Printf("MongoDB not available, using in-memory data for demo: %v", err)
		return NewVolatile(seq), seq, func(context.Context) error { return nil }
	}

	durable := store.NewDurableStore(client.Database())

	if err := SeedDurable(ctx, durable); err != nil {
		log.Printf("Warning: sample data seeding failed: %v", err)
	}

	if err := seq.InitFromStore(ctx, durable); err != nil {
		// Without the real maxima, restarting at 1 would reissue ids.
		// Falling back to the fixture seeds keeps numbering safe for the
		// bundled data set.
		log.Printf("Warning: sequencer init failed, using fixture seeds: %v", err)
		for kind, next := range VolatileSeeds {
			seq.Seed(kind, next)
		}
	}

	return durable, seq, client.Close
}

// SeedDurable inserts the baseline sample data into every empty collection.
// Collections that already hold data are left untouched, so seeding is safe
// to run on every startup. Orders and contact messages start empty.
func SeedDurable(ctx context.Context, st store.Store) error {
	if err := seedCollection(ctx, st, store.Users, asDocs(SampleUsers())); err != nil {
		return err
	}
	if err := seedCollection(ctx, st, store.Categories, asDocs(SampleCategories())); err != nil {
		return err
	}
	if err := seedCollection(ctx, st, store.Products, asDocs(SampleProducts())); err != nil {
		return err
	}
	if err := seedCollection(ctx, st, store.Transactions, asDocs(SampleTransactions())); err != nil {
		return err
	}
	return nil
}

func seedCollection(ctx context.Context, st store.Store, kind store.Kind, docs []interface{}) error {
	count, err := st.Count(ctx, kind)
	if err != nil {
		return fmt.Errorf("count %s: %w", kind, err)
	}
	if count > 0 {
		return nil
	}
	for _, doc := range docs {
		if err := st.Insert(ctx, kind, doc); err != nil {
			return fmt.Errorf("seed %s: %w", kind, err)
		}
	}
	return nil
}

func asDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	return docs
}

// NewVolatile builds the in-memory fallback store preloaded with the same
// sample data the durable backend is seeded with (plus the demo order) and
// seeds the sequencer with the matching counters.
func NewVolatile(seq *store.Sequencer) *store.VolatileStore {
	st := store.NewVolatileStore()
	ctx := context.Background()

	for _, u := range SampleUsers() {
		_ = st.Insert(ctx, store.Users, u)
	}
	for _, c := range SampleCategories() {
		_ = st.Insert(ctx, store.Categories, c)
	}
	for _, p := range SampleProducts() {
		_ = st.Insert(ctx, store.Products, p)
	}
	for _, t := range SampleTransactions() {
		_ = st.Insert(ctx, store.Transactions, t)
	}
	for _, o := range SampleOrders() {
		_ = st.Insert(ctx, store.Orders, o)
	}

	for kind, next := range VolatileSeeds {
		seq.Seed(kind, next)
	}
	return st
}
