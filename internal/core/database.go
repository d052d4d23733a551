// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/agrovia-exports/go-backend/internal/config"
)

const (
	CollectionProducts    = "products"
	CollectionBlogPosts   = "blogposts"
	CollectionSubscribers = "users"
)

// Database wraps the single process-wide Mongo client. The client is
// established once at startup, injected into repositories, and safe for
// concurrent use by the driver.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewDatabase(
	ctx context.Context,
	cfg config.MongoConfig,
) (*Database, error) {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		//nolint:errcheck // cleanup on connection failure
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Close(ctx context.Context) error {
	if d.client != nil {
		return d.client.Disconnect(ctx)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	return nil
}

// EnsureIndexes creates the indexes the repositories rely on. The
// unique index on subscriber email is the authoritative duplicate
// guard; application-level pre-checks are only a fast path.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	idxCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	subscribers := d.Collection(CollectionSubscribers)
	_, err := subscribers.Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create subscriber email index: %w", err)
	}

	for _, name := range []string{CollectionProducts, CollectionBlogPosts} {
		_, err := d.Collection(name).Indexes().CreateOne(idxCtx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("create %s createdAt index: %w", name, err)
		}
	}

	return nil
}

// IsDuplicateKeyError reports whether err is a Mongo unique-index
// violation (E11000).
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
