package routes

import (
	"net/http"
	"time"

	"ziplay/handlers"
	"ziplay/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterCatalogRoutes registers venue and activity endpoints. Reads are
// public; writes require an admin.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	venues := r.Group("/api/venues")
	{
		venues.GET("", hb.ListVenuesHandler)
		venues.GET("/:id", hb.GetVenueHandler)
		venues.POST("", middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware(hb.UserRepo), hb.CreateVenueHandler)
	}

	activities := r.Group("/api/activities")
	{
		activities.GET("", hb.ListActivitiesHandler)
		activities.GET("/:id", hb.GetActivityHandler)
		activities.GET("/venue/:venueId", hb.ActivitiesByVenue)
		activities.POST("", middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware(hb.UserRepo), hb.CreateActivityHandler)
	}
}

// RegisterCartRoutes sets up the Lobby endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.Use(middleware.JWTAuthUserMiddleware())
		cartGroup.GET("", hb.GetCartHandler)
		cartGroup.POST("", hb.AddCartEntryHandler)
		cartGroup.PATCH("/:activityId", hb.ChangeQuantityHandler)
		cartGroup.DELETE("/:activityId", hb.RemoveActivityHandler)
	}
}

// RegisterCheckoutRoutes sets up the checkout and booking-history endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.Use(middleware.JWTAuthUserMiddleware())
		checkoutGroup.POST("/order", hb.CreateOrderHandler)
		checkoutGroup.POST("/confirm", hb.ConfirmCheckoutHandler)
	}

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.GET("", hb.ListBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Ziplay"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterHealthRoute(r)
}
