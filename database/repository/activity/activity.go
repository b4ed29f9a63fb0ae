package activityRepo

import (
	"context"
	"errors"

	"ziplay/models"
)

// ErrNotFound is returned when an activity does not exist. Cart resolution
// relies on this to drop dangling references instead of failing the load.
var ErrNotFound = errors.New("activity not found")

// ActivityRepository defines methods for activity data access.
type ActivityRepository interface {
	// GetByID retrieves an activity by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	// GetAll retrieves all activities with their venue populated.
	GetAll(ctx context.Context) ([]models.Activity, error)
	// GetByVenue retrieves activities hosted at a venue.
	GetByVenue(ctx context.Context, venueID string) ([]models.Activity, error)
	// GetByCategory retrieves activities of a category.
	GetByCategory(ctx context.Context, category string) ([]models.Activity, error)
	// SearchByCity retrieves activities whose city matches the query,
	// case-insensitive substring.
	SearchByCity(ctx context.Context, city string) ([]models.Activity, error)
	// Create inserts a new activity record.
	Create(ctx context.Context, activity *models.Activity) error
}
