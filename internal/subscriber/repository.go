// AngelaMos | 2026
// repository.go

package subscriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrovia-exports/go-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Subscriber, error)
	Create(ctx context.Context, sub *Subscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) Repository {
	return &repository{collection: collection}
}

func (r *repository) List(ctx context.Context) ([]Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	subscribers := make([]Subscriber, 0)
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, fmt.Errorf("decode subscribers: %w", err)
	}

	return subscribers, nil
}

// Create inserts the subscriber. The unique index on email is the
// authoritative duplicate guard; a violation surfaces as ErrDuplicateKey.
func (r *repository) Create(ctx context.Context, sub *Subscriber) error {
	sub.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create subscriber: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create subscriber: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("create subscriber: unexpected inserted id type")
	}
	sub.ID = oid

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	err := r.collection.FindOne(
		ctx,
		bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}

	return false, fmt.Errorf("check subscriber exists: %w", err)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}

	return count, nil
}
