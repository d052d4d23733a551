// AngelaMos | 2026
// repository.go

package blog

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
	List(ctx context.Context) ([]BlogPost, error)
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, id string, fields bson.M) (*BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) Repository {
	return &repository{collection: collection}
}

func (r *repository) List(ctx context.Context) ([]BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	posts := make([]BlogPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}

	return posts, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var post BlogPost
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get blog post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}

	return &post, nil
}

func (r *repository) Create(ctx context.Context, post *BlogPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("create blog post: unexpected inserted id type")
	}
	post.ID = oid

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fields bson.M,
) (*BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post BlogPost
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update blog post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}

	return &post, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete blog post: %w", core.ErrNotFound)
	}

	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf(
			"invalid id %q: %w",
			id,
			core.ErrNotFound,
		)
	}
	return oid, nil
}
