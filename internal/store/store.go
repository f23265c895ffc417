// Package store defines the persistence contracts consumed by the HTTP
// handlers. The canonical implementation lives in internal/repository and
// talks to MongoDB; tests substitute in-memory fakes.
package store

import (
	"context"

	"github.com/bookshelf/bookshelf/internal/model"
)

// UserStore persists reader profiles.
type UserStore interface {
	// ListUsers returns all users, unfiltered and unpaginated.
	ListUsers(ctx context.Context) ([]model.User, error)

	// CreateUser inserts a user profile unconditionally. Email uniqueness
	// is not checked at this layer.
	CreateUser(ctx context.Context, user model.User) (model.InsertResult, error)
}

// BookStore persists books.
type BookStore interface {
	// ListBooks returns books matching the filter, unordered.
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)

	// ListNewlyReleased returns at most limit books, newest first.
	ListNewlyReleased(ctx context.Context, limit int64) ([]model.Book, error)

	// ListPopular returns at most limit books, highest upvote count first.
	ListPopular(ctx context.Context, limit int64) ([]model.Book, error)

	// ListBooksByOwner returns all books whose user_email matches email.
	ListBooksByOwner(ctx context.Context, email string) ([]model.Book, error)

	// GetBook returns a single book by its hex identifier.
	// Returns ErrInvalidID for malformed identifiers and ErrNotFound when
	// no document matches.
	GetBook(ctx context.Context, id string) (*model.Book, error)

	// CreateBook inserts a book unconditionally.
	CreateBook(ctx context.Context, book model.Book) (model.InsertResult, error)

	// UpdateBook sets the provided fields on the book with the given
	// identifier. A missing document is inserted (upsert).
	UpdateBook(ctx context.Context, id string, update model.BookUpdate) (model.UpdateResult, error)

	// IncrementUpvote atomically adds 1 to the book's upvote counter and
	// returns the post-increment value. Returns ErrNotFound when no
	// document matches.
	IncrementUpvote(ctx context.Context, id string) (int64, error)

	// SetReadingStatus sets the reading_status field by identifier. No
	// existence check is performed; a no-match update reports zero matched.
	SetReadingStatus(ctx context.Context, id, status string) (model.UpdateResult, error)

	// DeleteBook removes a book by identifier.
	DeleteBook(ctx context.Context, id string) (model.DeleteResult, error)
}

// ReviewStore persists book reviews.
type ReviewStore interface {
	// CreateReview inserts a review unconditionally; the duplicate check
	// is the caller's responsibility via FindReviewByBookAndUser.
	CreateReview(ctx context.Context, review model.Review) (model.InsertResult, error)

	// FindReviewByBookAndUser returns the review for the (bookID, email)
	// pair, or ErrNotFound when none exists.
	FindReviewByBookAndUser(ctx context.Context, bookID, email string) (*model.Review, error)

	// UpdateReviewText sets the review text and bumps the update
	// timestamp. No existence or ownership check is performed.
	UpdateReviewText(ctx context.Context, id, text string) (model.UpdateResult, error)

	// ListReviewsByBook returns all reviews for a book, most recently
	// updated first.
	ListReviewsByBook(ctx context.Context, bookID string) ([]model.Review, error)

	// DeleteReview removes a review by identifier.
	DeleteReview(ctx context.Context, id string) (model.DeleteResult, error)
}
