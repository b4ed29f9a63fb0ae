package handlers

import (
	"errors"
	"net/http"

	activityRepo "ziplay/database/repository/activity"
	venueRepo "ziplay/database/repository/venue"
	"ziplay/models"
	"ziplay/services/catalog"
	"ziplay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the venue/activity browsing and admin CRUD endpoints.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListVenuesHandler handles GET /api/venues (?location= for search).
func (h *CatalogHandler) ListVenuesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		venues []models.Venue
		err    error
	)
	if location := c.Query("location"); location != "" {
		venues, err = h.Catalog.SearchVenues(c.Request.Context(), location)
	} else {
		venues, err = h.Catalog.ListVenues(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list venues", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}
	c.JSON(http.StatusOK, venues)
}

// GetVenueHandler handles GET /api/venues/:id.
func (h *CatalogHandler) GetVenueHandler(c *gin.Context) {
	venue, err := h.Catalog.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, venueRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, venue)
}

// CreateVenueHandler handles POST /api/venues (admin).
func (h *CatalogHandler) CreateVenueHandler(c *gin.Context) {
	var venue models.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.CreateVenue(c.Request.Context(), &venue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, venue)
}

// ListActivitiesHandler handles GET /api/activities
// (?category= or ?location= narrow the listing).
func (h *CatalogHandler) ListActivitiesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	var (
		activities []models.Activity
		err        error
	)
	switch {
	case c.Query("category") != "":
		activities, err = h.Catalog.ListActivitiesByCategory(ctx, c.Query("category"))
	case c.Query("location") != "":
		activities, err = h.Catalog.SearchActivities(ctx, c.Query("location"))
	default:
		activities, err = h.Catalog.ListActivities(ctx)
	}
	if err != nil {
		logger.Error("Failed to list activities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivityHandler handles GET /api/activities/:id.
func (h *CatalogHandler) GetActivityHandler(c *gin.Context) {
	activity, err := h.Catalog.GetActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

// ActivitiesByVenueHandler handles GET /api/activities/venue/:venueId.
func (h *CatalogHandler) ActivitiesByVenueHandler(c *gin.Context) {
	activities, err := h.Catalog.ListActivitiesByVenue(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivityHandler handles POST /api/activities (admin).
func (h *CatalogHandler) CreateActivityHandler(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.CreateActivity(c.Request.Context(), &activity); err != nil {
		if errors.Is(err, catalog.ErrMissingVenue) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}
