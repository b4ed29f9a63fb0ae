package handlers

import (
	"errors"
	"net/http"

	"ziplay/services/checkout"
	"ziplay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes order creation and payment confirmation.
type CheckoutHandler struct {
	Checkout checkout.CheckoutService
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

// CreateOrderHandler handles POST /api/checkout/order.
func (h *CheckoutHandler) CreateOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	order, err := h.Checkout.CreateOrder(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Order creation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create payment order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// ConfirmCheckoutHandler handles POST /api/checkout/confirm.
func (h *CheckoutHandler) ConfirmCheckoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req checkout.ConfirmInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	booking, err := h.Checkout.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrAttemptNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrBadSignature):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrBookingPending):
			// Payment captured; the reconciler finishes the booking. The
			// Lobby stays as it was.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Checkout confirmation failed", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout confirmation failed"})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
