package catalog

import (
	"context"

	activityRepo "ziplay/database/repository/activity"
	venueRepo "ziplay/database/repository/venue"
	"ziplay/models"
)

// CatalogService serves the venue/activity reference data users browse
// before booking. Writes are admin-only at the route level.
type CatalogService interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	ListActivitiesByVenue(ctx context.Context, venueID string) ([]models.Activity, error)
	ListActivitiesByCategory(ctx context.Context, category string) ([]models.Activity, error)
	SearchActivities(ctx context.Context, city string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity *models.Activity) error

	ListVenues(ctx context.Context) ([]models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	SearchVenues(ctx context.Context, location string) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Activities activityRepo.ActivityRepository
	Venues     venueRepo.VenueRepository
}
