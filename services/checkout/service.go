package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "ziplay/database/repository/booking"
	"ziplay/models"
	"ziplay/services/cart"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrder loads and prices the cart, registers a gateway order for the
// total, and snapshots everything into a checkout attempt. A failure here
// leaves the cart untouched and no attempt behind the order id.
func (s *DefaultCheckoutService) CreateOrder(ctx context.Context, userID string) (*models.OrderResponse, error) {
	items, total, err := s.Cart.LoadCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	amountMinor := cart.MinorUnits(total)
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, s.Currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	attempt := &models.CheckoutAttempt{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserEmail: user.Email,
		OrderID:   orderID,
		Amount:    total,
		Currency:  s.Currency,
		LineItems: items,
		Status:    models.StatusOrderRequested,
		CreatedAt: time.Now(),
	}
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to store checkout attempt: %w", err)
	}

	s.Logger.Info("checkout order created",
		zap.String("userID", userID),
		zap.String("orderID", orderID),
		zap.Float64("amount", total))

	return &models.OrderResponse{
		OrderID:  orderID,
		Amount:   amountMinor,
		Currency: s.Currency,
		KeyID:    s.KeyID,
		Total:    total,
	}, nil
}

// Confirm verifies the gateway signature, persists the booking built from the
// attempt snapshot, clears the cart, and marks the attempt done. If the
// booking write fails after a verified payment, the cart is kept and a
// reconciliation task is enqueued.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, userID string, in ConfirmInput) (*models.Booking, error) {
	attempt, err := s.Attempts.Get(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, ErrAttemptNotFound
	}
	if attempt.Status == models.StatusDone {
		return nil, ErrAlreadyConfirmed
	}

	if err := s.Gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature); err != nil {
		s.Logger.Warn("rejected payment confirmation",
			zap.String("orderID", in.OrderID),
			zap.Error(err))
		return nil, ErrBadSignature
	}

	attempt.PaymentID = in.PaymentID
	attempt.Status = models.StatusPersisting
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		s.Logger.Error("failed to record persisting state", zap.Error(err))
	}

	booking := BuildBooking(attempt)
	if err := s.Bookings.Create(ctx, booking); err != nil && !errors.Is(err, bookingRepo.ErrDuplicate) {
		s.Logger.Error("booking persistence failed after verified payment",
			zap.String("orderID", in.OrderID),
			zap.String("paymentID", in.PaymentID),
			zap.Error(err))

		attempt.Status = models.StatusFailedPartial
		if err := s.Attempts.Save(ctx, attempt); err != nil {
			s.Logger.Error("failed to record partial failure", zap.Error(err))
		}
		if err := s.Reconciler.EnqueueReconcile(ctx, in.OrderID); err != nil {
			s.Logger.Error("failed to enqueue booking reconciliation", zap.Error(err))
		}
		return nil, ErrBookingPending
	}

	if err := s.CartRepo.Clear(ctx, userID); err != nil {
		// Booking exists; the attempt stays persisting so the worker re-runs
		// the clear, and the duplicate payment index keeps the booking single.
		s.Logger.Warn("failed to clear cart after booking", zap.Error(err))
		if err := s.Reconciler.EnqueueReconcile(ctx, in.OrderID); err != nil {
			s.Logger.Error("failed to enqueue cart-clear retry", zap.Error(err))
		}
		return booking, nil
	}

	attempt.Status = models.StatusDone
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		s.Logger.Error("failed to record checkout completion", zap.Error(err))
	}

	s.Logger.Info("checkout confirmed",
		zap.String("userID", userID),
		zap.String("orderID", in.OrderID),
		zap.String("bookingID", booking.ID))
	return booking, nil
}

// BuildBooking materializes the immutable booking record from an attempt
// snapshot. Shared with the reconciliation worker.
func BuildBooking(attempt *models.CheckoutAttempt) *models.Booking {
	activities := make([]models.BookedActivity, 0, len(attempt.LineItems))
	for _, item := range attempt.LineItems {
		activities = append(activities, models.BookedActivity{
			ActivityID: item.ActivityID,
			Title:      item.Title,
			Date:       item.Date,
			Time:       item.Time,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	return &models.Booking{
		ID:            uuid.New().String(),
		UserID:        attempt.UserID,
		UserEmail:     attempt.UserEmail,
		Activities:    activities,
		TotalAmount:   attempt.Amount,
		PaymentID:     attempt.PaymentID,
		OrderID:       attempt.OrderID,
		PaymentStatus: models.PaymentStatusSuccess,
		CreatedAt:     time.Now(),
	}
}
