// internal/store/durable.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DurableStore serves every kind from a MongoDB database. Query failures
// against a store that was reachable at startup surface ErrUnavailable;
// the caller never falls back to volatile data mid-process.
type DurableStore struct {
	db *mongo.Database
}

// NewDurableStore creates a durable store over an established database handle.
func NewDurableStore(db *mongo.Database) *DurableStore {
	return &DurableStore{db: db}
}

func (s *DurableStore) Mode() Mode {
	return Durable
}

func (s *DurableStore) collection(kind Kind) *mongo.Collection {
	return s.db.Collection(string(kind))
}

func toBSON(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

func (s *DurableStore) Find(ctx context.Context, kind Kind, filter Filter, opts *FindOptions, out interface{}) error {
	findOpts := options.Find()
	if opts != nil && opts.SortBy != "" {
		dir := 1
		if opts.Desc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: dir}})
	}

	cursor, err := s.collection(kind).Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return fmt.Errorf("%w: find %s: %v", ErrUnavailable, kind, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, kind, err)
	}
	return nil
}

func (s *DurableStore) FindOne(ctx context.Context, kind Kind, filter Filter, out interface{}) error {
	err := s.collection(kind).FindOne(ctx, toBSON(filter)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: find one %s: %v", ErrUnavailable, kind, err)
	}
	return nil
}

func (s *DurableStore) Insert(ctx context.Context, kind Kind, doc interface{}) error {
	if _, err := s.collection(kind).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrUnavailable, kind, err)
	}
	return nil
}

func (s *DurableStore) Update(ctx context.Context, kind Kind, filter Filter, set Filter) (int64, error) {
	result, err := s.collection(kind).UpdateMany(ctx, toBSON(filter), bson.M{"$set": toBSON(set)})
	if err != nil {
		return 0, fmt.Errorf("%w: update %s: %v", ErrUnavailable, kind, err)
	}
	return result.MatchedCount, nil
}

func (s *DurableStore) Delete(ctx context.Context, kind Kind, filter Filter) (int64, error) {
	result, err := s.collection(kind).DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: delete %s: %v", ErrUnavailable, kind, err)
	}
	return result.DeletedCount, nil
}

func (s *DurableStore) Count(ctx context.Context, kind Kind) (int64, error) {
	count, err := s.collection(kind).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count %s: %v", ErrUnavailable, kind, err)
	}
	return count, nil
}

func (s *DurableStore) MaxID(ctx context.Context, kind Kind) (int64, error) {
	var doc struct {
		ID int64 `bson:"id"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	err := s.collection(kind).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: max id %s: %v", ErrUnavailable, kind, err)
	}
	return doc.ID, nil
}
