// File: fieldcal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldcal/config"
	"fieldcal/database"
	directoryRepo "fieldcal/database/repository/directory"
	exclusionRepo "fieldcal/database/repository/exclusion"
	scheduleRepo "fieldcal/database/repository/schedule"
	"fieldcal/handlers"
	"fieldcal/middleware"
	"fieldcal/routes"
	"fieldcal/services/calendar"
	"fieldcal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := scheduleRepo.EnsureIndexes(indexCtx, database.DB()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}
	if err := exclusionRepo.EnsureIndexes(indexCtx, database.DB()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure exclusion indexes: %v", err)
	}
	cancelIndex()

	sessionCache := utils.GetSessionCacheClient()

	// Team directory source.
	var directory directoryRepo.TeamDirectory
	switch config.AppConfig.DirectorySource {
	case "yaml":
		yamlDir, err := directoryRepo.NewYAMLDirectory(config.AppConfig.DirectoryFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load directory file: %v", err)
		}
		directory = yamlDir
	default:
		directory = directoryRepo.NewMongoDirectory()
	}
	logger.Info("team directory ready", zap.String("source", config.AppConfig.DirectorySource))

	// services.
	calendarService := &calendar.DefaultCalendarService{
		Schedules:  scheduleRepo.NewMongoScheduleRepo(),
		Exclusions: exclusionRepo.NewMongoExclusionRepo(),
		Directory:  directory,
		Sessions:   calendar.NewRedisSessionStore(sessionCache, config.SessionTTL()),
		Logger:     logger.Named("calendar"),
		Location:   config.Location(),
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService)
	scheduleHandler := handlers.NewScheduleHandler(calendarService)
	healthHandler := &handlers.HealthHandler{Redis: sessionCache, Mongo: database.MongoClient}
	handlerBundle := handlers.NewHandlerBundle(calendarHandler, scheduleHandler, healthHandler)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

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
	if err := sessionCache.Close(); err != nil {
		logger.Warn("main: failed to close redis", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
