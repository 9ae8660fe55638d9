// File: kaojai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kaojai/config"
	"kaojai/database"
	bookingRepo "kaojai/database/repository/booking"
	tenantRepo "kaojai/database/repository/tenant"
	"kaojai/handlers"
	"kaojai/middleware"
	"kaojai/routes"
	"kaojai/services/availability"
	"kaojai/services/checkslip"
	ai "kaojai/services/intelligence"
	"kaojai/services/line"
	"kaojai/services/operatinghours"
	"kaojai/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitEventCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetEventCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	tenants := tenantRepo.NewMongoTenantRepo()

	// services.
	aiSvc := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey)

	availabilitySvc := &availability.DefaultAvailabilityService{
		BookingRepo: bookings,
		TenantRepo:  tenants,
		Summarizer:  aiSvc,
		Cache:       utils.GetCacheClient(),
		TenantID:    config.AppConfig.BookingTenantID,
	}

	checkslipSvc := &checkslip.DefaultCheckslipService{
		TenantRepo: tenants,
		TenantID:   config.AppConfig.BookingTenantID,
	}

	hoursSvc := &operatinghours.DefaultOperatingHoursService{
		TenantRepo: tenants,
		TenantID:   config.AppConfig.BookingTenantID,
	}

	lineClient := line.NewClient(config.AppConfig.LineChannelAccessToken)
	messageHandler := &line.MessageHandler{
		Client:       lineClient,
		AI:           aiSvc,
		Availability: availabilitySvc,
		Checkslip:    checkslipSvc,
		Hours:        hoursSvc,
	}

	webhookHandler := handlers.NewWebhookHandler(
		messageHandler,
		config.AppConfig.LineChannelSecret,
		utils.GetEventCacheClient(),
	)
	adminHandler := handlers.NewAdminHandler(tenants)

	routes.RegisterRoutes(router, webhookHandler, adminHandler)

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
