// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// Collection names in the bookshelf database.
const (
	usersCollection   = "users"
	booksCollection   = "books"
	reviewsCollection = "reviews"
)

const connectTimeout = 10 * time.Second

// Repository provides document store access methods backed by MongoDB.
// It implements the interfaces in internal/store.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// Interface conformance.
var (
	_ store.UserStore   = (*Repository)(nil)
	_ store.BookStore   = (*Repository)(nil)
	_ store.ReviewStore = (*Repository)(nil)
)

// New connects to MongoDB and returns a Repository bound to dbName.
func New(ctx context.Context, uri, dbName string) (*Repository, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Ping checks store connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) users() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *Repository) books() *mongo.Collection {
	return r.db.Collection(booksCollection)
}

func (r *Repository) reviews() *mongo.Collection {
	return r.db.Collection(reviewsCollection)
}

// parseID converts a hex identifier from a URL path into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}

// hexID renders a driver-assigned identifier as a hex string.
func hexID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}

func toInsertResult(res *mongo.InsertOneResult) model.InsertResult {
	return model.InsertResult{
		Acknowledged: true,
		InsertedID:   hexID(res.InsertedID),
	}
}

func toUpdateResult(res *mongo.UpdateResult) model.UpdateResult {
	out := model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = hexID(res.UpsertedID)
	}
	return out
}

func toDeleteResult(res *mongo.DeleteResult) model.DeleteResult {
	return model.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
