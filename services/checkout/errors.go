package checkout

import "errors"

var (
	// ErrEmptyCart rejects checkout on an empty Lobby.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAttemptNotFound means no in-flight checkout matches the order.
	ErrAttemptNotFound = errors.New("checkout attempt not found or expired")
	// ErrAlreadyConfirmed means the attempt already produced a booking.
	ErrAlreadyConfirmed = errors.New("checkout already confirmed")
	// ErrBadSignature means the payment callback failed verification; no
	// booking is written for it.
	ErrBadSignature = errors.New("payment signature verification failed")
	// ErrBookingPending is the partial-failure outcome: the payment is
	// captured and verified but the booking write failed. The cart is kept
	// and a reconciliation task takes over.
	ErrBookingPending = errors.New("payment captured, booking persistence pending")
)
