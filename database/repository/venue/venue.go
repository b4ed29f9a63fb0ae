package venueRepo

import (
	"context"
	"errors"

	"ziplay/models"
)

// ErrNotFound is returned when a venue does not exist.
var ErrNotFound = errors.New("venue not found")

// VenueRepository defines methods for venue data access.
type VenueRepository interface {
	// GetByID retrieves a venue by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	// GetAll retrieves all venues.
	GetAll(ctx context.Context) ([]models.Venue, error)
	// SearchByAddress retrieves venues whose address matches the query,
	// case-insensitive substring.
	SearchByAddress(ctx context.Context, location string) ([]models.Venue, error)
	// Create inserts a new venue record.
	Create(ctx context.Context, venue *models.Venue) error
}
