// internal/app/features/payments/handler.go
package payments

import (
	"context"
	"net/http"

	paymentstore "github.com/dalemusser/forumhub/internal/app/store/payments"
	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/paygate"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for payment records and payment intents.
type Handler struct {
	DB      *mongo.Database
	Store   *paymentstore.Store
	Intents paygate.IntentCreator
	Log     *zap.Logger
}

// NewHandler creates a payments Handler.
func NewHandler(db *mongo.Database, intents paygate.IntentCreator, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   paymentstore.New(db),
		Intents: intents,
		Log:     logger,
	}
}

// HandleRecord serves POST /payments. The payment log is append-only;
// repeated submissions become separate records.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := httpjson.Decode(r, &payment); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stored, err := h.Store.Insert(ctx, payment)
	if err != nil {
		h.Log.Error("record payment failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to record payment")
		return
	}
	httpjson.Write(w, http.StatusOK, stored)
}

// HandleList serves GET /payments?email=, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	payments, err := h.Store.ListByEmail(ctx, r.URL.Query().Get("email"))
	if err != nil {
		h.Log.Error("list payments failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load payments")
		return
	}
	httpjson.Write(w, http.StatusOK, payments)
}

type intentRequest struct {
	Amount int64  `json:"amount"`
	Email  string `json:"email"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HandleCreateIntent serves POST /create-payment-intent.
func (h *Handler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	secret, err := h.Intents.CreateIntent(ctx, req.Amount, req.Email)
	if err != nil {
		if err == paygate.ErrInvalidAmount {
			httpjson.Error(w, http.StatusBadRequest, "amount must be greater than zero")
			return
		}
		h.Log.Error("create payment intent failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, intentResponse{ClientSecret: secret})
}
