package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// ListBooks returns books matching the filter, unordered.
// Search and Status compose conjunctively; zero values impose no constraint.
func (r *Repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	query := bson.M{}

	if filter.Search != "" {
		// User input is a literal substring, not a pattern.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"book_title": re},
			bson.M{"book_author": re},
		}
	}
	if filter.Status != "" {
		query["reading_status"] = filter.Status
	}

	return r.findBooks(ctx, query, nil)
}

// ListNewlyReleased returns at most limit books, newest first.
func (r *Repository) ListNewlyReleased(ctx context.Context, limit int64) ([]model.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.findBooks(ctx, bson.M{}, opts)
}

// ListPopular returns at most limit books, highest upvote count first.
func (r *Repository) ListPopular(ctx context.Context, limit int64) ([]model.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "upvote", Value: -1}}).
		SetLimit(limit)
	return r.findBooks(ctx, bson.M{}, opts)
}

// ListBooksByOwner returns all books owned by email.
func (r *Repository) ListBooksByOwner(ctx context.Context, email string) ([]model.Book, error) {
	return r.findBooks(ctx, bson.M{"user_email": email}, nil)
}

func (r *Repository) findBooks(ctx context.Context, query bson.M, opts *options.FindOptions) ([]model.Book, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.books().Find(ctx, query, opts)
	} else {
		cur, err = r.books().Find(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find books: %w", err)
	}

	books := []model.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

// GetBook returns a single book by its hex identifier.
func (r *Repository) GetBook(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var book model.Book
	err = r.books().FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// CreateBook inserts a book unconditionally.
func (r *Repository) CreateBook(ctx context.Context, book model.Book) (model.InsertResult, error) {
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}

	res, err := r.books().InsertOne(ctx, book)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert book: %w", err)
	}
	return toInsertResult(res), nil
}

// UpdateBook sets the provided fields on the book with the given identifier.
// A missing document is inserted (upsert).
func (r *Repository) UpdateBook(ctx context.Context, id string, update model.BookUpdate) (model.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	set := bson.M{}
	if update.BookTitle != nil {
		set["book_title"] = *update.BookTitle
	}
	if update.BookAuthor != nil {
		set["book_author"] = *update.BookAuthor
	}
	if update.CoverPhoto != nil {
		set["cover_photo"] = *update.CoverPhoto
	}
	if update.ReadingStatus != nil {
		set["reading_status"] = *update.ReadingStatus
	}

	res, err := r.books().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update book: %w", err)
	}
	return toUpdateResult(res), nil
}

// IncrementUpvote atomically adds 1 to the upvote counter and returns the
// post-increment value.
func (r *Repository) IncrementUpvote(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var book model.Book
	err = r.books().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"upvote": 1}},
		opts,
	).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, store.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment upvote: %w", err)
	}
	return book.Upvote, nil
}

// SetReadingStatus sets the reading_status field by identifier.
// A no-match update reports zero matched in the result.
func (r *Repository) SetReadingStatus(ctx context.Context, id, status string) (model.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	res, err := r.books().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"reading_status": status}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to set reading status: %w", err)
	}
	return toUpdateResult(res), nil
}

// DeleteBook removes a book by identifier.
func (r *Repository) DeleteBook(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.books().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete book: %w", err)
	}
	return toDeleteResult(res), nil
}
