package models

import "time"

// Checkout attempt states. An attempt is created when the gateway order is
// requested and is terminal at StatusDone or, for that attempt,
// StatusFailedPartial (the background reconciler owns it from there).
const (
	StatusOrderRequested = "order_requested"
	StatusPersisting     = "persisting"
	StatusDone           = "done"
	StatusFailedPartial  = "failed_partial"
)

// CheckoutAttempt snapshots the cart at order-creation time so that the
// booking written on confirmation matches what the user paid for, regardless
// of cart mutations in between.
type CheckoutAttempt struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	UserEmail string     `json:"userEmail"`
	OrderID   string     `json:"orderId"`
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	LineItems []LineItem `json:"lineItems"`
	Status    string     `json:"status"`
	PaymentID string     `json:"paymentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// OrderResponse is handed to the client to open the payment widget.
type OrderResponse struct {
	OrderID  string  `json:"orderId"`
	Amount   int64   `json:"amount"` // minor units (paise)
	Currency string  `json:"currency"`
	KeyID    string  `json:"keyId"` // gateway public key
	Total    float64 `json:"total"`
}
