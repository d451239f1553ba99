// internal/store/store.go
package store

import (
	"context"
	"errors"
)

// Kind identifies one of the entity collections. The value doubles as the
// collection name in the durable backend.
type Kind string

const (
	Users        Kind = "users"
	Categories   Kind = "categories"
	Products     Kind = "products"
	Carts        Kind = "carts"
	Orders       Kind = "orders"
	Transactions Kind = "transactions"
	Contacts     Kind = "contactMessages"
)

// SequencedKinds are the kinds that carry store-assigned integer ids.
// Carts are keyed by user_id and are deliberately absent.
var SequencedKinds = []Kind{Users, Categories, Products, Orders, Transactions, Contacts}

// Mode reports which backend was selected at startup. The mode never
// changes for the lifetime of the process.
type Mode string

const (
	Durable  Mode = "durable"
	Volatile Mode = "volatile"
)

// Filter is an equality filter on bson field names, e.g. Filter{"id": 7}.
type Filter map[string]interface{}

// FindOptions controls result ordering for Find.
type FindOptions struct {
	SortBy string
	Desc   bool
}

var (
	// ErrNotFound is returned by FindOne when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned by the durable backend when a query fails
	// against a store that was reachable at startup. List readers degrade
	// to empty results; writers fail the request. The volatile backend
	// never returns it.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the storage strategy shared by the durable and volatile
// backends. Records must have identical shapes in both modes; the two
// backends are never consulted together or reconciled at runtime.
//
// Find decodes all matching records into out, which must be a *[]T.
// FindOne decodes a single match into out (*T) or returns ErrNotFound.
// Update applies set as a field-level patch to every match and reports the
// match count; Delete reports the removed count.
type Store interface {
	Find(ctx context.Context, kind Kind, filter Filter, opts *FindOptions, out interface{}) error
	FindOne(ctx context.Context, kind Kind, filter Filter, out interface{}) error
	Insert(ctx context.Context, kind Kind, doc interface{}) error
	Update(ctx context.Context, kind Kind, filter Filter, set Filter) (int64, error)
	Delete(ctx context.Context, kind Kind, filter Filter) (int64, error)
	Count(ctx context.Context, kind Kind) (int64, error)
	MaxID(ctx context.Context, kind Kind) (int64, error)
	Mode() Mode
}
