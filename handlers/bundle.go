// File: ziplay/handlers/bundle.go
package handlers

import (
	userRepoPkg "ziplay/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetProfileHandler          gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Catalog endpoints
	ListVenuesHandler     gin.HandlerFunc
	GetVenueHandler       gin.HandlerFunc
	CreateVenueHandler    gin.HandlerFunc
	ListActivitiesHandler gin.HandlerFunc
	GetActivityHandler    gin.HandlerFunc
	ActivitiesByVenue     gin.HandlerFunc
	CreateActivityHandler gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddCartEntryHandler   gin.HandlerFunc
	ChangeQuantityHandler gin.HandlerFunc
	RemoveActivityHandler gin.HandlerFunc

	// Checkout endpoints
	CreateOrderHandler     gin.HandlerFunc
	ConfirmCheckoutHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler gin.HandlerFunc
}
