// File: ziplay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ziplay/config"
	"ziplay/cron"
	"ziplay/database"
	activityRepoPkg "ziplay/database/repository/activity"
	bookingRepoPkg "ziplay/database/repository/booking"
	cartRepoPkg "ziplay/database/repository/cart"
	userRepoPkg "ziplay/database/repository/user"
	venueRepoPkg "ziplay/database/repository/venue"
	"ziplay/handlers"
	"ziplay/middleware"
	"ziplay/routes"
	cartSvc "ziplay/services/cart"
	"ziplay/services/catalog"
	"ziplay/services/checkout"
	"ziplay/services/user"
	"ziplay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	catalogService := &catalog.DefaultCatalogService{
		Activities: activityRepo,
		Venues:     venueRepo,
	}

	cartService := &cartSvc.DefaultCartService{
		Repo:       cartRepo,
		Activities: activityRepo,
		Logger:     logger,
	}

	attemptStore := checkout.NewRedisAttemptStore(utils.GetCheckoutCacheClient())
	gateway := checkout.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)
	checkoutService := &checkout.DefaultCheckoutService{
		Cart:       cartService,
		CartRepo:   cartRepo,
		Users:      userRepo,
		Bookings:   bookingRepo,
		Gateway:    gateway,
		Attempts:   attemptStore,
		Reconciler: cron.NewAsynqEnqueuer(),
		Logger:     logger,
		KeyID:      config.AppConfig.RazorpayKeyID,
		Currency:   config.AppConfig.Currency,
	}

	// Background reconciliation of stranded checkouts.
	cron.InitReconcileWorker(attemptStore, bookingRepo, cartRepo)

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	bookingHandler := handlers.NewBookingHandler(bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		GetProfileHandler:          userHandler.GetProfileHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,

		// Catalog endpoints.
		ListVenuesHandler:     catalogHandler.ListVenuesHandler,
		GetVenueHandler:       catalogHandler.GetVenueHandler,
		CreateVenueHandler:    catalogHandler.CreateVenueHandler,
		ListActivitiesHandler: catalogHandler.ListActivitiesHandler,
		GetActivityHandler:    catalogHandler.GetActivityHandler,
		ActivitiesByVenue:     catalogHandler.ActivitiesByVenueHandler,
		CreateActivityHandler: catalogHandler.CreateActivityHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddCartEntryHandler:   cartHandler.AddCartEntryHandler,
		ChangeQuantityHandler: cartHandler.ChangeQuantityHandler,
		RemoveActivityHandler: cartHandler.RemoveActivityHandler,

		// Checkout endpoints.
		CreateOrderHandler:     checkoutHandler.CreateOrderHandler,
		ConfirmCheckoutHandler: checkoutHandler.ConfirmCheckoutHandler,

		// Booking endpoints.
		ListBookingsHandler: bookingHandler.ListBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
