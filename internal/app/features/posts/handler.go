// internal/app/features/posts/handler.go
package posts

import (
	poststore "github.com/dalemusser/forumhub/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for posts, comments, and votes.
type Handler struct {
	DB    *mongo.Database
	Store *poststore.Store
	Log   *zap.Logger
}

// NewHandler creates a posts Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Store: poststore.New(db),
		Log:   logger,
	}
}
