package handlers

import (
	"net/http"

	bookingRepo "ziplay/database/repository/booking"
	"ziplay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking history endpoint.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Bookings: repo}
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	bookings, err := h.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
