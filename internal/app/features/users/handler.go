// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/forumhub/internal/app/store/users"
	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/normalize"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for registration and membership.
type Handler struct {
	DB    *mongo.Database
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler creates a users Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Store: userstore.New(db),
		Log:   logger,
	}
}

type registerResponse struct {
	Message  string       `json:"message,omitempty"`
	Inserted bool         `json:"inserted"`
	User     *models.User `json:"user,omitempty"`
}

// HandleRegister serves POST /users. Registering an email that already
// exists is not an error; the existing account wins.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := httpjson.Decode(r, &user); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if normalize.Email(user.Email) == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stored, inserted, err := h.Store.RegisterIfAbsent(ctx, user)
	if err != nil {
		h.Log.Error("register user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	resp := registerResponse{Inserted: inserted, User: &stored}
	if !inserted {
		resp.Message = "user already exists"
		resp.User = nil
	}
	httpjson.Write(w, http.StatusOK, resp)
}

type membershipRequest struct {
	Email string `json:"email"`
}

// HandleSetMembership serves POST /membership.
func (h *Handler) HandleSetMembership(w http.ResponseWriter, r *http.Request) {
	var req membershipRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if normalize.Email(req.Email) == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.SetMember(ctx, req.Email); err != nil {
		h.Log.Error("set membership failed", zap.String("email", normalize.Email(req.Email)), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update membership")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
