package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bookshelf/bookshelf/internal/model"
)

// ListUsers returns all user profiles.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// CreateUser inserts a user profile unconditionally.
func (r *Repository) CreateUser(ctx context.Context, user model.User) (model.InsertResult, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.users().InsertOne(ctx, user)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return toInsertResult(res), nil
}
