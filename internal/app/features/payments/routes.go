// internal/app/features/payments/routes.go
package payments

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the payment record and payment intent routes to r.
// They live at the router root so the served paths stay /payments and
// /create-payment-intent.
func Register(r chi.Router, h *Handler) {
	r.Post("/payments", h.HandleRecord)
	r.Get("/payments", h.HandleList)
	r.Post("/create-payment-intent", h.HandleCreateIntent)
}
