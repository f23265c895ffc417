//go:build integration

package repository

import (
	"errors"
	"testing"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
	"github.com/bookshelf/bookshelf/internal/testutil"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	uri := testutil.RequireEnv(t, "MONGO_URI")
	ctx := testutil.WithTimeout(t)

	repo, err := New(ctx, uri, "bookshelf_test")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() {
		ctx := testutil.WithTimeout(t)
		_ = repo.db.Drop(ctx)
		_ = repo.Close(ctx)
	})
	return repo
}

func TestIntegrationBookRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	email := testutil.UniqueEmail("create")
	book := testutil.NewTestBook(t, email)

	result, err := repo.CreateBook(ctx, *book)
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}
	if !result.Acknowledged || result.InsertedID == "" {
		t.Fatalf("unexpected insert result: %+v", result)
	}

	retrieved, err := repo.GetBook(ctx, result.InsertedID)
	if err != nil {
		t.Fatalf("GetBook failed: %v", err)
	}
	if retrieved.BookTitle != book.BookTitle {
		t.Errorf("BookTitle mismatch: got %q, want %q", retrieved.BookTitle, book.BookTitle)
	}
	if retrieved.UserEmail != email {
		t.Errorf("UserEmail mismatch: got %q, want %q", retrieved.UserEmail, email)
	}
	if retrieved.Upvote != 0 {
		t.Errorf("expected zero upvotes on a new book, got %d", retrieved.Upvote)
	}
}

func TestIntegrationBookRepository_GetBook_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	_, err := repo.GetBook(ctx, "ffffffffffffffffffffffff")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestIntegrationBookRepository_GetBook_InvalidID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	_, err := repo.GetBook(ctx, "not-a-hex-id")
	if !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestIntegrationBookRepository_ListBooks_Filter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	email := testutil.UniqueEmail("filter")

	gopl := testutil.NewTestBook(t, email)
	gopl.BookTitle = "The Go Programming Language"
	gopl.ReadingStatus = "finished"

	sicp := testutil.NewTestBook(t, email)
	sicp.BookTitle = "Structure and Interpretation of Computer Programs"
	sicp.BookAuthor = "Abelson and Sussman"
	sicp.ReadingStatus = "reading"

	for _, b := range []*model.Book{gopl, sicp} {
		if _, err := repo.CreateBook(ctx, *b); err != nil {
			t.Fatalf("CreateBook failed: %v", err)
		}
	}

	// Case-insensitive search matches title or author.
	books, err := repo.ListBooks(ctx, model.BookFilter{Search: "go program"})
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if len(books) != 1 || books[0].BookTitle != gopl.BookTitle {
		t.Errorf("search filter returned wrong books: %+v", books)
	}

	// Status filter is an exact match.
	books, err = repo.ListBooks(ctx, model.BookFilter{Status: "reading"})
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if len(books) != 1 || books[0].BookTitle != sicp.BookTitle {
		t.Errorf("status filter returned wrong books: %+v", books)
	}

	// Combined filters are conjunctive.
	books, err = repo.ListBooks(ctx, model.BookFilter{Search: "sussman", Status: "finished"})
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected no matches for conjunctive filter, got %+v", books)
	}
}

func TestIntegrationBookRepository_IncrementUpvote(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	book := testutil.NewTestBook(t, testutil.UniqueEmail("upvote"))
	result, err := repo.CreateBook(ctx, *book)
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := repo.IncrementUpvote(ctx, result.InsertedID)
		if err != nil {
			t.Fatalf("IncrementUpvote failed: %v", err)
		}
		if got != want {
			t.Errorf("expected upvote count %d, got %d", want, got)
		}
	}
}

func TestIntegrationBookRepository_UpdateBook(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	book := testutil.NewTestBook(t, testutil.UniqueEmail("update"))
	created, err := repo.CreateBook(ctx, *book)
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}

	title := "Go in Practice"
	result, err := repo.UpdateBook(ctx, created.InsertedID, model.BookUpdate{BookTitle: &title})
	if err != nil {
		t.Fatalf("UpdateBook failed: %v", err)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("unexpected update result: %+v", result)
	}

	retrieved, err := repo.GetBook(ctx, created.InsertedID)
	if err != nil {
		t.Fatalf("GetBook failed: %v", err)
	}
	if retrieved.BookTitle != title {
		t.Errorf("expected title %q, got %q", title, retrieved.BookTitle)
	}
	// Untouched fields survive a partial update.
	if retrieved.BookAuthor != book.BookAuthor {
		t.Errorf("expected author %q, got %q", book.BookAuthor, retrieved.BookAuthor)
	}
}

func TestIntegrationBookRepository_DeleteBook(t *testing.T) {
	repo := newTestRepository(t)
	ctx := testutil.WithTimeout(t)

	book := testutil.NewTestBook(t, testutil.UniqueEmail("delete"))
	created, err := repo.CreateBook(ctx, *book)
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}

	result, err := repo.DeleteBook(ctx, created.InsertedID)
	if err != nil {
		t.Fatalf("DeleteBook failed: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("expected one deleted document, got %d", result.DeletedCount)
	}

	if _, err := repo.GetBook(ctx, created.InsertedID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
