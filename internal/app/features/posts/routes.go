// internal/app/features/posts/routes.go
package posts

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the post, comment, and vote routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Delete("/{id}", h.HandleDelete)

	r.Post("/{id}/comments", h.HandleAddComment)
	r.Delete("/{id}/comments/{commentId}", h.HandleDeleteComment)

	r.Post("/{id}/vote", h.HandleVote)

	return r
}
