// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the registration and membership routes to r. They
// live at the router root so the served paths stay /users and
// /membership.
func Register(r chi.Router, h *Handler) {
	r.Post("/users", h.HandleRegister)
	r.Post("/membership", h.HandleSetMembership)
}
