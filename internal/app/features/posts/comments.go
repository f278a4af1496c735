// internal/app/features/posts/comments.go
package posts

import (
	"context"
	"net/http"
	"strings"

	poststore "github.com/dalemusser/forumhub/internal/app/store/posts"
	"github.com/dalemusser/forumhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type addCommentRequest struct {
	Text     string `json:"text"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// HandleAddComment serves POST /posts/{id}/comments.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}

	var req addCommentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Text = htmlsanitize.Sanitize(req.Text)
	if strings.TrimSpace(req.Text) == "" {
		httpjson.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comment, err := h.Store.AddComment(ctx, postID, req.Text, req.UserID, req.UserName)
	if err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "post not found")
			return
		}
		h.Log.Error("add comment failed", zap.String("post_id", postID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add comment")
		return
	}
	httpjson.Write(w, http.StatusOK, comment)
}

type deleteCommentRequest struct {
	UserID string `json:"userId"`
}

// HandleDeleteComment serves DELETE /posts/{id}/comments/{commentId}.
// Only the comment's author may remove it.
func (h *Handler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}
	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "commentId"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "comment not found")
		return
	}

	var req deleteCommentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		httpjson.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.DeleteComment(ctx, postID, commentID, req.UserID)
	switch err {
	case nil:
		httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
	case poststore.ErrNotFound:
		httpjson.Error(w, http.StatusNotFound, "post not found")
	case poststore.ErrCommentNotFound:
		httpjson.Error(w, http.StatusNotFound, "comment not found")
	case poststore.ErrNotCommentOwner:
		httpjson.Error(w, http.StatusForbidden, "you can only delete your own comments")
	default:
		h.Log.Error("delete comment failed",
			zap.String("post_id", postID.Hex()),
			zap.String("comment_id", commentID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete comment")
	}
}
