package cartRepo

import (
	"context"

	"ziplay/models"
)

// CartRepository provides atomic operations over the cart array embedded in
// the user document. Every mutation targets individual array elements rather
// than replacing the whole list, so concurrent sessions of the same user
// cannot silently overwrite each other's changes.
type CartRepository interface {
	// GetEntries returns the user's stored cart entries.
	GetEntries(ctx context.Context, userID string) ([]models.CartEntry, error)
	// IncrementEntry adds `by` to the count of the entry matching the
	// (activityID, date, time) merge key. Returns false when no entry matched.
	IncrementEntry(ctx context.Context, userID, activityID, date, slot string, by int) (bool, error)
	// AppendEntry pushes a new entry onto the cart unless an entry with the
	// same merge key already exists. Returns false when the guard rejected
	// the push (a concurrent add won the key); the caller falls back to
	// IncrementEntry.
	AppendEntry(ctx context.Context, userID string, entry models.CartEntry) (bool, error)
	// AdjustActivityCount increments every entry of the activity by delta.
	// When floor is true, only entries with count > 1 are touched.
	AdjustActivityCount(ctx context.Context, userID, activityID string, delta int, floor bool) error
	// RemoveActivity removes every entry of the activity, all date/time
	// variants included.
	RemoveActivity(ctx context.Context, userID, activityID string) error
	// Clear empties the cart.
	Clear(ctx context.Context, userID string) error
}
