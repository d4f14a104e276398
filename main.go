package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/config"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/database"
	bookingRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/booking"
	chatRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/chat"
	courtRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/court"
	userRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"
	venueRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/venue"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/handlers"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/routes"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/booking"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/chat"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/court"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/notification"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/venue"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/workers"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorage, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	notificationService := &notification.DefaultNotificationService{
		Client: utils.FCMClient,
		Users:  userRepo,
	}
	venueService := &venue.DefaultVenueService{
		Repo:    venueRepo,
		Storage: cloudinaryStorage,
	}
	courtService := &court.DefaultCourtService{
		Courts: courtRepo,
		Venues: venueRepo,
	}

	queueClient := workers.NewQueueClient()
	defer queueClient.Close()

	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Courts:   courtRepo,
		Venues:   venueRepo,
		Users:    userService,
		Payments: booking.StripeProvider{},
		Queue:    queueClient,
		Notifier: notificationService,
	}
	chatService := &chat.DefaultChatService{
		Repo:     chatRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}

	// Background worker for loyalty awards and booking reminders.
	workers.InitWorker(userService, notificationService)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		UserSvc:    userService,
		VenueSvc:   venueService,
		CourtSvc:   courtService,
		BookingSvc: bookingService,
		ChatSvc:    chatService,
		Storage:    cloudinaryStorage,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
