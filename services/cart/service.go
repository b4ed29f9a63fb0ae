package cart

import (
	"context"
	"errors"
	"fmt"

	activityRepo "ziplay/database/repository/activity"
	"ziplay/models"

	"go.uber.org/zap"
)

// Validation errors surfaced to the handler as 400s.
var (
	ErrMissingDate  = errors.New("a date must be selected")
	ErrMissingTime  = errors.New("a time slot must be selected")
	ErrInvalidTime  = errors.New("time must be one of the offered slots")
	ErrInvalidCount = errors.New("headcount must be at least 1")
	ErrInvalidDelta = errors.New("quantity change must be +1 or -1")
)

func validSlot(slot string) bool {
	for _, s := range models.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// LoadCart resolves the stored entries into priced line items. A dangling
// activity reference drops the entry from the view; any other error aborts
// the whole load so partial carts are never shown.
func (s *DefaultCartService) LoadCart(ctx context.Context, userID string) ([]models.LineItem, float64, error) {
	entries, err := s.Repo.GetEntries(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]models.LineItem, 0, len(entries))
	for _, entry := range entries {
		activity, err := s.Activities.GetByID(ctx, entry.ActivityID)
		if err != nil {
			if errors.Is(err, activityRepo.ErrNotFound) {
				s.Logger.Warn("dropping cart entry with missing activity",
					zap.String("userID", userID),
					zap.String("activityID", entry.ActivityID))
				continue
			}
			return nil, 0, fmt.Errorf("failed to resolve cart entry: %w", err)
		}
		items = append(items, models.LineItem{
			ActivityID: activity.ID,
			Title:      activity.Title,
			ImageURL:   activity.ImageURL,
			Date:       entry.Date,
			Time:       entry.Time,
			Price:      activity.Price,
			Quantity:   entry.Count,
			Subtotal:   Round2(activity.Price * float64(entry.Count)),
		})
	}
	return items, Total(items), nil
}

// AddEntry merges the selection into the cart. The increment targets an
// existing entry with the merge key; the append is guarded against one, so a
// concurrent add of the same new key makes exactly one of the two land and
// the other retry the increment.
func (s *DefaultCartService) AddEntry(ctx context.Context, userID string, in AddEntryInput) ([]models.CartEntry, error) {
	if in.Date == "" {
		return nil, ErrMissingDate
	}
	if in.Time == "" {
		return nil, ErrMissingTime
	}
	if !validSlot(in.Time) {
		return nil, ErrInvalidTime
	}
	if in.Count < 1 {
		return nil, ErrInvalidCount
	}

	var entry *models.CartEntry
	for tries := 0; tries < 3; tries++ {
		matched, err := s.Repo.IncrementEntry(ctx, userID, in.ActivityID, in.Date, in.Time, in.Count)
		if err != nil {
			return nil, fmt.Errorf("failed to merge cart entry: %w", err)
		}
		if matched {
			return s.Repo.GetEntries(ctx, userID)
		}

		if entry == nil {
			activity, err := s.Activities.GetByID(ctx, in.ActivityID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve activity %s: %w", in.ActivityID, err)
			}
			entry = &models.CartEntry{
				ActivityID: in.ActivityID,
				Title:      activity.Title,
				Date:       in.Date,
				Time:       in.Time,
				Count:      in.Count,
			}
		}
		pushed, err := s.Repo.AppendEntry(ctx, userID, *entry)
		if err != nil {
			return nil, fmt.Errorf("failed to add cart entry: %w", err)
		}
		if pushed {
			return s.Repo.GetEntries(ctx, userID)
		}
	}
	// Neither the increment nor the guarded push matched: there is no cart
	// document to write into.
	return nil, fmt.Errorf("no cart found for user %s", userID)
}

// ChangeQuantity applies a +1/-1 change to every entry of the activity. The
// decrement carries a floor: entries at count 1 are left untouched, removal
// is only ever explicit.
func (s *DefaultCartService) ChangeQuantity(ctx context.Context, userID, activityID string, delta int) ([]models.CartEntry, error) {
	if delta != 1 && delta != -1 {
		return nil, ErrInvalidDelta
	}

	floor := delta < 0
	if err := s.Repo.AdjustActivityCount(ctx, userID, activityID, delta, floor); err != nil {
		return nil, fmt.Errorf("failed to change quantity: %w", err)
	}
	return s.Repo.GetEntries(ctx, userID)
}

// RemoveActivity drops all date/time variants of the activity from the cart.
func (s *DefaultCartService) RemoveActivity(ctx context.Context, userID, activityID string) ([]models.CartEntry, error) {
	if err := s.Repo.RemoveActivity(ctx, userID, activityID); err != nil {
		return nil, fmt.Errorf("failed to remove activity: %w", err)
	}
	return s.Repo.GetEntries(ctx, userID)
}
