package bookingRepo

import (
	"context"
	"errors"

	"ziplay/models"
)

// ErrDuplicate is returned when a booking for the same payment already
// exists. The reconciliation worker treats it as success.
var ErrDuplicate = errors.New("booking already recorded for this payment")

// BookingRepository defines methods for booking data access. Bookings are
// append-only: there is no update or delete.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// ListByUser retrieves a user's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
