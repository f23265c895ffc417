package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookshelf/bookshelf/internal/auth"
	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

const (
	newlyReleasedLimit = 5
	popularLimit       = 6
)

// BookHandler handles HTTP requests for book operations.
type BookHandler struct {
	store  store.BookStore
	logger *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(store store.BookStore, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /books. Optional search and status query parameters
// compose conjunctively.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.BookFilter{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}

	books, err := h.store.ListBooks(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list books", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// NewlyReleased handles GET /newlyReleased. Returns the 5 most recently
// created books.
func (h *BookHandler) NewlyReleased(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListNewlyReleased(r.Context(), newlyReleasedLimit)
	if err != nil {
		h.logger.Error("failed to list newly released books", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// Popular handles GET /popular-books. Returns the 6 books with the
// highest upvote counts.
func (h *BookHandler) Popular(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListPopular(r.Context(), popularLimit)
	if err != nil {
		h.logger.Error("failed to list popular books", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// ListByOwner handles GET /my-books/{email} (guarded). The authenticated
// identity must match the requested email.
func (h *BookHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if auth.EmailFromContext(r.Context()) != email {
		writeMessage(w, http.StatusForbidden, "Forbidden Access!")
		return
	}

	books, err := h.store.ListBooksByOwner(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to list books by owner", "error", err, "email", email)
		writeError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// Get handles GET /my-book/{id}. Unguarded single-book lookup.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.store.GetBook(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// Create handles POST /books. Inserts unconditionally.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book model.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.store.CreateBook(r.Context(), book)
	if err != nil {
		h.logger.Error("failed to create book", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create book")
		return
	}

	h.logger.Info("book_created",
		"inserted_id", result.InsertedID,
		"title", book.BookTitle,
		"owner", book.UserEmail,
	)

	writeJSON(w, http.StatusCreated, result)
}

// Update handles PUT /update-book/{id} (guarded). Only the book's owner
// may update it; the write itself runs with upsert semantics.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.store.GetBook(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, id)
		return
	}

	if book.UserEmail != auth.EmailFromContext(r.Context()) {
		writeMessage(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	var update model.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if update.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	result, err := h.store.UpdateBook(r.Context(), id, update)
	if err != nil {
		h.logger.Error("failed to update book", "error", err, "book_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update book")
		return
	}

	h.logger.Info("book_updated", "book_id", id)

	writeJSON(w, http.StatusOK, result)
}

// Upvote handles PATCH /book/{id}/upvote. Atomically increments the
// upvote counter; any caller may upvote any book.
func (h *BookHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	upvote, err := h.store.IncrementUpvote(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"upvote": upvote})
}

// SetReadingStatus handles PATCH /books/{id}/reading-status. No ownership
// or existence check; a no-match update reports zero matched.
func (h *BookHandler) SetReadingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		ReadingStatus string `json:"reading_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.store.SetReadingStatus(r.Context(), id, body.ReadingStatus)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, "Invalid book id")
			return
		}
		h.logger.Error("failed to set reading status", "error", err, "book_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update book")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /books/{id} (guarded). Only the book's owner may
// delete it.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.store.GetBook(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, id)
		return
	}

	if book.UserEmail != auth.EmailFromContext(r.Context()) {
		writeMessage(w, http.StatusForbidden, "Forbidden: You can only delete your own books")
		return
	}

	result, err := h.store.DeleteBook(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete book", "error", err, "book_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}

	h.logger.Info("book_deleted", "book_id", id)

	writeJSON(w, http.StatusOK, result)
}

// handleLookupError maps store lookup failures to HTTP responses.
func (h *BookHandler) handleLookupError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid book id")
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Book not found")
	default:
		h.logger.Error("book lookup failed", "error", err, "book_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to fetch books")
	}
}
