package cart

import (
	"context"

	activityRepo "ziplay/database/repository/activity"
	cartRepo "ziplay/database/repository/cart"

	"go.uber.org/zap"

	"ziplay/models"
)

// CartService maintains the user's Lobby: the set of pending, unpaid activity
// bookings. Entries are merged on the (activity, date, time) triple; quantity
// changes and removal operate per activity, matching the Lobby UI which
// renders one row per activity.
type CartService interface {
	// LoadCart resolves the stored entries against the activity catalog into
	// priced line items plus their total. Entries whose activity no longer
	// exists are omitted.
	LoadCart(ctx context.Context, userID string) ([]models.LineItem, float64, error)
	// AddEntry merges the selection into the cart, summing counts for an
	// existing (activity, date, time) entry, and returns the updated cart.
	AddEntry(ctx context.Context, userID string, in AddEntryInput) ([]models.CartEntry, error)
	// ChangeQuantity applies a +1/-1 headcount change to the activity's
	// entries. A decrement never drives a count below 1.
	ChangeQuantity(ctx context.Context, userID, activityID string, delta int) ([]models.CartEntry, error)
	// RemoveActivity drops every entry of the activity from the cart.
	RemoveActivity(ctx context.Context, userID, activityID string) ([]models.CartEntry, error)
}

// AddEntryInput carries a validated add-to-Lobby selection.
type AddEntryInput struct {
	ActivityID string `json:"activityId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Count      int    `json:"count" binding:"required,min=1"`
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Repo       cartRepo.CartRepository
	Activities activityRepo.ActivityRepository
	Logger     *zap.Logger
}
