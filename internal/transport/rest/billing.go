package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/billing"
)

const maxWebhookBody = 512 << 10

type billingService interface {
	StartCheckout(ctx context.Context) (*billing.CheckoutResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// BillingHandler serves the premium upgrade flow.
type BillingHandler struct {
	svc billingService
	log *slog.Logger
}

// NewBillingHandler creates a BillingHandler.
func NewBillingHandler(svc billingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{svc: svc, log: logger.With("handler", "billing")}
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// Checkout handles POST /v1/billing/checkout.
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.StartCheckout(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{URL: res.URL})
}

// Webhook handles POST /v1/billing/webhook. Signature failures answer 400 so
// the gateway does not retry them; storage failures answer 500 so it does.
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	err = h.svc.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, domain.ErrValidation):
		h.log.WarnContext(r.Context(), "webhook rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid webhook")
	default:
		handleError(h.log, w, r, err)
	}
}
