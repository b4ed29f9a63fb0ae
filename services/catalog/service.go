package catalog

import (
	"context"
	"errors"
	"fmt"

	venueRepo "ziplay/database/repository/venue"
	"ziplay/models"

	"github.com/google/uuid"
)

// ErrMissingVenue rejects an activity pointing at an unknown venue.
var ErrMissingVenue = errors.New("activity references an unknown venue")

// ListActivities returns all activities, venue populated.
func (s *DefaultCatalogService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return s.Activities.GetAll(ctx)
}

// GetActivity returns one activity; activityRepo.ErrNotFound when absent.
func (s *DefaultCatalogService) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	return s.Activities.GetByID(ctx, id)
}

// ListActivitiesByVenue returns the activities hosted at a venue.
func (s *DefaultCatalogService) ListActivitiesByVenue(ctx context.Context, venueID string) ([]models.Activity, error) {
	return s.Activities.GetByVenue(ctx, venueID)
}

// ListActivitiesByCategory returns the activities of a category.
func (s *DefaultCatalogService) ListActivitiesByCategory(ctx context.Context, category string) ([]models.Activity, error) {
	return s.Activities.GetByCategory(ctx, category)
}

// SearchActivities matches city case-insensitively.
func (s *DefaultCatalogService) SearchActivities(ctx context.Context, city string) ([]models.Activity, error) {
	return s.Activities.SearchByCity(ctx, city)
}

// CreateActivity validates the venue reference and inserts the activity.
func (s *DefaultCatalogService) CreateActivity(ctx context.Context, activity *models.Activity) error {
	if _, err := s.Venues.GetByID(ctx, activity.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			return ErrMissingVenue
		}
		return fmt.Errorf("failed to resolve venue %s: %w", activity.VenueID, err)
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	return s.Activities.Create(ctx, activity)
}

// ListVenues returns all venues.
func (s *DefaultCatalogService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.Venues.GetAll(ctx)
}

// GetVenue returns one venue; venueRepo.ErrNotFound when absent.
func (s *DefaultCatalogService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	return s.Venues.GetByID(ctx, id)
}

// SearchVenues matches address case-insensitively.
func (s *DefaultCatalogService) SearchVenues(ctx context.Context, location string) ([]models.Venue, error) {
	return s.Venues.SearchByAddress(ctx, location)
}

// CreateVenue inserts a venue.
func (s *DefaultCatalogService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}
	return s.Venues.Create(ctx, venue)
}
