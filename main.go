// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	flightRepo "voyago/database/repository/flight"
	sessionRepo "voyago/database/repository/session"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/agent"
	ai "voyago/services/intelligence"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	flights := flightRepo.NewMongoFlightRepo()
	sessions := sessionRepo.NewMongoSessionRepo()

	// completion client and specialist agents.
	completion := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	extractor := ai.NewIntentExtractor(completion)

	bookingAgent := agent.NewBookingAgent(flights, extractor, completion, config.AppConfig.DefaultOrigin)
	complaintAgent := agent.NewComplaintAgent(completion)
	informationAgent := agent.NewInformationAgent(completion, nil)
	turnRouter := agent.NewRouter(completion)

	engine := agent.NewEngine(sessions, turnRouter, bookingAgent, complaintAgent, informationAgent)

	chatHandler := handlers.NewChatHandler(engine)
	conversationHandler := handlers.NewConversationHandler(sessions)
	flightHandler := handlers.NewFlightHandler(flights)

	// Register routes.
	routes.RegisterRoutes(router, chatHandler, conversationHandler, flightHandler)

	// Background session cleanup and dependency health monitoring.
	cron.InitCleanupWorker(sessions)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "9090"
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
