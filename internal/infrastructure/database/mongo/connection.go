// internal/infrastructure/database/mongo/connection.go
package mongo

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/faraz365/storefront-backend/internal/config"
)

// Client wraps the Mongo client
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to MongoDB and verifies reachability with a ping.
// Callers decide what an unreachable store means; this only reports it.
func NewConnection(cfg *config.Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach MongoDB: %w", err)
	}

	log.Println("✅ MongoDB connection established successfully")

	return &Client{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// Database returns the database handle
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Health checks the MongoDB connection health
func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close closes the MongoDB connection
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
