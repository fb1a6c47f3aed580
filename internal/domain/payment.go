package domain

import "github.com/google/uuid"

// Payment event types handled by the billing service.
const (
	PaymentEventCheckoutCompleted     = "checkout.session.completed"
	PaymentEventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	PaymentEventCheckoutExpired       = "checkout.session.expired"
)

// PaymentEvent is a verified notification from the payment gateway. UserID
// is uuid.Nil for events that do not reference a checkout of ours.
type PaymentEvent struct {
	ID     string
	Type   string
	UserID uuid.UUID
	Paid   bool
}
