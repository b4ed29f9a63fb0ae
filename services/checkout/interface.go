package checkout

import (
	"context"

	bookingRepo "ziplay/database/repository/booking"
	cartRepo "ziplay/database/repository/cart"
	userRepo "ziplay/database/repository/user"
	"ziplay/models"
	"ziplay/services/cart"

	"go.uber.org/zap"
)

// CheckoutService turns a Lobby into a paid booking. Order creation snapshots
// the cart; confirmation verifies the gateway signature server-side before
// anything is persisted, then writes the booking and clears the cart.
type CheckoutService interface {
	CreateOrder(ctx context.Context, userID string) (*models.OrderResponse, error)
	Confirm(ctx context.Context, userID string, in ConfirmInput) (*models.Booking, error)
}

// ConfirmInput is the widget success callback relayed by the client.
type ConfirmInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// PaymentGateway is the payment-order collaborator.
type PaymentGateway interface {
	// CreateOrder registers an order for the minor-unit amount and returns
	// the gateway order id.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	// VerifySignature checks the gateway's signature over (orderID, paymentID).
	VerifySignature(orderID, paymentID, signature string) error
}

// AttemptStore persists in-flight checkout attempts keyed by order id.
type AttemptStore interface {
	Save(ctx context.Context, attempt *models.CheckoutAttempt) error
	Get(ctx context.Context, orderID string) (*models.CheckoutAttempt, error)
}

// ReconcileEnqueuer schedules a background retry for a stranded booking.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, orderID string) error
}

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Cart       cart.CartService
	CartRepo   cartRepo.CartRepository
	Users      userRepo.UserRepository
	Bookings   bookingRepo.BookingRepository
	Gateway    PaymentGateway
	Attempts   AttemptStore
	Reconciler ReconcileEnqueuer
	Logger     *zap.Logger
	KeyID      string
	Currency   string
}
