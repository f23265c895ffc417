package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bookshelf/bookshelf/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

var seq atomic.Int64

// UniqueEmail returns a test email address unique within the process.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), seq.Add(1))
}

// NewTestBook builds a book owned by email with sensible defaults.
func NewTestBook(t testing.TB, email string) *model.Book {
	t.Helper()
	return &model.Book{
		BookTitle:     "The Go Programming Language",
		BookAuthor:    "Donovan and Kernighan",
		CoverPhoto:    "https://covers.example.com/gopl.jpg",
		UserEmail:     email,
		ReadingStatus: "reading",
		CreatedAt:     time.Now().UTC(),
	}
}

// NewTestReview builds a review for bookID by email.
func NewTestReview(t testing.TB, bookID, email string) *model.Review {
	t.Helper()
	now := time.Now().UTC()
	return &model.Review{
		BookID:     bookID,
		UserEmail:  email,
		ReviewText: "A thorough and readable introduction.",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithTimeout returns a context bounded for a single test operation.
func WithTimeout(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
