package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bookshelf/bookshelf/internal/model"
	"github.com/bookshelf/bookshelf/internal/store"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	store  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /users. Returns all users, unfiltered.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /users. Inserts the profile unconditionally; email
// uniqueness is not checked at this layer.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to create user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	h.logger.Info("user_created", "inserted_id", result.InsertedID, "email", user.Email)

	writeJSON(w, http.StatusCreated, result)
}
