// internal/app/features/posts/posts.go
package posts

import (
	"context"
	"net/http"

	poststore "github.com/dalemusser/forumhub/internal/app/store/posts"
	"github.com/dalemusser/forumhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/normalize"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleList serves GET /posts, optionally filtered by ?email= (exact
// creator match), newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	createdBy := normalize.Email(r.URL.Query().Get("email"))

	posts, err := h.Store.List(ctx, createdBy)
	if err != nil {
		h.Log.Error("list posts failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	httpjson.Write(w, http.StatusOK, posts)
}

// HandleCreate serves POST /posts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := httpjson.Decode(r, &post); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if post.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	post.Content = htmlsanitize.Sanitize(post.Content)
	post.CreatedBy = normalize.Email(post.CreatedBy)
	post.UpVote = 0
	post.DownVote = 0
	post.Voters = nil
	post.Comments = nil

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, post)
	if err != nil {
		h.Log.Error("create post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleGet serves GET /posts/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "post not found")
			return
		}
		h.Log.Error("get post failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	httpjson.Write(w, http.StatusOK, post)
}

// HandleDelete serves DELETE /posts/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "post not found")
			return
		}
		h.Log.Error("delete post failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}
