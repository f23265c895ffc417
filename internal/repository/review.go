package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// CreateReview inserts a review with creation and update timestamps set to
// now when absent. The one-review-per-(book, user) invariant is checked by
// the handler, not here.
func (r *Repository) CreateReview(ctx context.Context, review model.Review) (model.InsertResult, error) {
	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	if review.UpdatedAt.IsZero() {
		review.UpdatedAt = now
	}

	res, err := r.reviews().InsertOne(ctx, review)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert review: %w", err)
	}
	return toInsertResult(res), nil
}

// FindReviewByBookAndUser returns the review for the (bookID, email) pair.
func (r *Repository) FindReviewByBookAndUser(ctx context.Context, bookID, email string) (*model.Review, error) {
	var review model.Review
	err := r.reviews().FindOne(ctx, bson.M{
		"book_id":    bookID,
		"user_email": email,
	}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return &review, nil
}

// UpdateReviewText sets the review text and bumps the update timestamp.
func (r *Repository) UpdateReviewText(ctx context.Context, id, text string) (model.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	res, err := r.reviews().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"review_text": text,
			"updatedAt":   time.Now().UTC(),
		}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update review: %w", err)
	}
	return toUpdateResult(res), nil
}

// ListReviewsByBook returns all reviews for a book, most recently updated
// first.
func (r *Repository) ListReviewsByBook(ctx context.Context, bookID string) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cur, err := r.reviews().Find(ctx, bson.M{"book_id": bookID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

// DeleteReview removes a review by identifier. No ownership check.
func (r *Repository) DeleteReview(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.reviews().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete review: %w", err)
	}
	return toDeleteResult(res), nil
}
