package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStore implements store.UserStore with injectable behavior.
type fakeUserStore struct {
	listUsersFunc  func(ctx context.Context) ([]model.User, error)
	createUserFunc func(ctx context.Context, user model.User) (model.InsertResult, error)
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.listUsersFunc(ctx)
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user model.User) (model.InsertResult, error) {
	return f.createUserFunc(ctx, user)
}

// fakeBookStore implements store.BookStore with injectable behavior.
// Unset functions fail loudly via nil dereference, which keeps tests
// honest about which store calls they expect.
type fakeBookStore struct {
	listBooksFunc         func(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	listNewlyReleasedFunc func(ctx context.Context, limit int64) ([]model.Book, error)
	listPopularFunc       func(ctx context.Context, limit int64) ([]model.Book, error)
	listBooksByOwnerFunc  func(ctx context.Context, email string) ([]model.Book, error)
	getBookFunc           func(ctx context.Context, id string) (*model.Book, error)
	createBookFunc        func(ctx context.Context, book model.Book) (model.InsertResult, error)
	updateBookFunc        func(ctx context.Context, id string, update model.BookUpdate) (model.UpdateResult, error)
	incrementUpvoteFunc   func(ctx context.Context, id string) (int64, error)
	setReadingStatusFunc  func(ctx context.Context, id, status string) (model.UpdateResult, error)
	deleteBookFunc        func(ctx context.Context, id string) (model.DeleteResult, error)

	updateCalled bool
	deleteCalled bool
}

func (f *fakeBookStore) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return f.listBooksFunc(ctx, filter)
}

func (f *fakeBookStore) ListNewlyReleased(ctx context.Context, limit int64) ([]model.Book, error) {
	return f.listNewlyReleasedFunc(ctx, limit)
}

func (f *fakeBookStore) ListPopular(ctx context.Context, limit int64) ([]model.Book, error) {
	return f.listPopularFunc(ctx, limit)
}

func (f *fakeBookStore) ListBooksByOwner(ctx context.Context, email string) ([]model.Book, error) {
	return f.listBooksByOwnerFunc(ctx, email)
}

func (f *fakeBookStore) GetBook(ctx context.Context, id string) (*model.Book, error) {
	return f.getBookFunc(ctx, id)
}

func (f *fakeBookStore) CreateBook(ctx context.Context, book model.Book) (model.InsertResult, error) {
	return f.createBookFunc(ctx, book)
}

func (f *fakeBookStore) UpdateBook(ctx context.Context, id string, update model.BookUpdate) (model.UpdateResult, error) {
	f.updateCalled = true
	return f.updateBookFunc(ctx, id, update)
}

func (f *fakeBookStore) IncrementUpvote(ctx context.Context, id string) (int64, error) {
	return f.incrementUpvoteFunc(ctx, id)
}

func (f *fakeBookStore) SetReadingStatus(ctx context.Context, id, status string) (model.UpdateResult, error) {
	return f.setReadingStatusFunc(ctx, id, status)
}

func (f *fakeBookStore) DeleteBook(ctx context.Context, id string) (model.DeleteResult, error) {
	f.deleteCalled = true
	return f.deleteBookFunc(ctx, id)
}

// fakeReviewStore implements store.ReviewStore with injectable behavior.
type fakeReviewStore struct {
	createReviewFunc      func(ctx context.Context, review model.Review) (model.InsertResult, error)
	findReviewFunc        func(ctx context.Context, bookID, email string) (*model.Review, error)
	updateReviewTextFunc  func(ctx context.Context, id, text string) (model.UpdateResult, error)
	listReviewsByBookFunc func(ctx context.Context, bookID string) ([]model.Review, error)
	deleteReviewFunc      func(ctx context.Context, id string) (model.DeleteResult, error)

	createCalled bool
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, review model.Review) (model.InsertResult, error) {
	f.createCalled = true
	return f.createReviewFunc(ctx, review)
}

func (f *fakeReviewStore) FindReviewByBookAndUser(ctx context.Context, bookID, email string) (*model.Review, error) {
	return f.findReviewFunc(ctx, bookID, email)
}

func (f *fakeReviewStore) UpdateReviewText(ctx context.Context, id, text string) (model.UpdateResult, error) {
	return f.updateReviewTextFunc(ctx, id, text)
}

func (f *fakeReviewStore) ListReviewsByBook(ctx context.Context, bookID string) ([]model.Review, error) {
	return f.listReviewsByBookFunc(ctx, bookID)
}

func (f *fakeReviewStore) DeleteReview(ctx context.Context, id string) (model.DeleteResult, error) {
	return f.deleteReviewFunc(ctx, id)
}

// Interface conformance for the fakes.
var (
	_ store.UserStore   = (*fakeUserStore)(nil)
	_ store.BookStore   = (*fakeBookStore)(nil)
	_ store.ReviewStore = (*fakeReviewStore)(nil)
)
