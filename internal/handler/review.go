package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	store  store.ReviewStore
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(store store.ReviewStore, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		store:  store,
		logger: logger,
	}
}

type createReviewRequest struct {
	BookID     string `json:"book_id"`
	UserEmail  string `json:"user_email"`
	ReviewText string `json:"review_text"`
}

type updateReviewRequest struct {
	ReviewText string `json:"review_text"`
}

// Create handles POST /reviews. Rejects a second review for the same
// (book, reviewer) pair with a conflict.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BookID == "" || req.UserEmail == "" || req.ReviewText == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	_, err := h.store.FindReviewByBookAndUser(r.Context(), req.BookID, req.UserEmail)
	if err == nil {
		writeError(w, http.StatusConflict, "Review already exists. Use PUT to update.")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.logger.Error("failed to check for existing review", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	result, err := h.store.CreateReview(r.Context(), model.Review{
		BookID:     req.BookID,
		UserEmail:  req.UserEmail,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		h.logger.Error("failed to create review", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	h.logger.Info("review_created",
		"inserted_id", result.InsertedID,
		"book_id", req.BookID,
		"reviewer", req.UserEmail,
	)

	writeJSON(w, http.StatusCreated, result)
}

// Update handles PUT /reviews/{id}. Sets the text and bumps the update
// timestamp; no existence or ownership check.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.store.UpdateReviewText(r.Context(), id, req.ReviewText)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, "Invalid review id")
			return
		}
		h.logger.Error("failed to update review", "error", err, "review_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListByBook handles GET /reviews?book_id=. Returns the book's reviews,
// most recently updated first.
func (h *ReviewHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.URL.Query().Get("book_id")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "Missing book_id in query")
		return
	}

	reviews, err := h.store.ListReviewsByBook(r.Context(), bookID)
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err, "book_id", bookID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Delete handles DELETE /reviews/{id}. Unconditional; no ownership check.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.store.DeleteReview(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, "Invalid review id")
			return
		}
		h.logger.Error("failed to delete review", "error", err, "review_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	h.logger.Info("review_deleted", "review_id", id)

	writeJSON(w, http.StatusOK, result)
}
