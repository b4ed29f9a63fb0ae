package handlers

import (
	"errors"
	"net/http"

	activityRepo "ziplay/database/repository/activity"
	"ziplay/services/cart"
	"ziplay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the Lobby endpoints.
type CartHandler struct {
	Cart cart.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Cart: svc}
}

func isCartValidationError(err error) bool {
	return errors.Is(err, cart.ErrMissingDate) ||
		errors.Is(err, cart.ErrMissingTime) ||
		errors.Is(err, cart.ErrInvalidTime) ||
		errors.Is(err, cart.ErrInvalidCount) ||
		errors.Is(err, cart.ErrInvalidDelta)
}

// GetCartHandler handles GET /api/cart: resolved line items plus total.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	items, total, err := h.Cart.LoadCart(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load cart", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// AddCartEntryHandler handles POST /api/cart.
func (h *CartHandler) AddCartEntryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req cart.AddEntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	entries, err := h.Cart.AddEntry(c.Request.Context(), userID, req)
	if err != nil {
		if isCartValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, activityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		logger.Error("Failed to add cart entry", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to Lobby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": entries})
}

// ChangeQuantityHandler handles PATCH /api/cart/:activityId with {"delta": +1|-1}.
func (h *CartHandler) ChangeQuantityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	entries, err := h.Cart.ChangeQuantity(c.Request.Context(), userID, c.Param("activityId"), req.Delta)
	if err != nil {
		if isCartValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to change quantity", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update Lobby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": entries})
}

// RemoveActivityHandler handles DELETE /api/cart/:activityId.
func (h *CartHandler) RemoveActivityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	entries, err := h.Cart.RemoveActivity(c.Request.Context(), userID, c.Param("activityId"))
	if err != nil {
		logger.Error("Failed to remove activity", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update Lobby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": entries})
}
