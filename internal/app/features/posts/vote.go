// internal/app/features/posts/vote.go
package posts

import (
	"context"
	"net/http"

	poststore "github.com/dalemusser/forumhub/internal/app/store/posts"
	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/normalize"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type voteRequest struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

// HandleVote serves POST /posts/{id}/vote. Each user gets one vote per
// post; a repeat vote in either direction is refused with 409.
func (h *Handler) HandleVote(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "post not found")
		return
	}

	var req voteRequest
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

	counts, err := h.Store.CastVote(ctx, postID, req.UserID, normalize.VoteType(req.Type))
	switch err {
	case nil:
		httpjson.Write(w, http.StatusOK, counts)
	case poststore.ErrInvalidVoteType:
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case poststore.ErrNotFound:
		httpjson.Error(w, http.StatusNotFound, "post not found")
	case poststore.ErrAlreadyVoted:
		httpjson.Error(w, http.StatusConflict, "user has already voted on this post")
	default:
		h.Log.Error("cast vote failed", zap.String("post_id", postID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to record vote")
	}
}
