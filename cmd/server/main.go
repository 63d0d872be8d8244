package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"realestate/server/config"
	"realestate/server/internal/api"
	"realestate/server/internal/archive"
	"realestate/server/internal/auth"
	"realestate/server/internal/database"
	"realestate/server/internal/metrics"
	"realestate/server/internal/processor"
	"realestate/server/internal/queue"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Invalid LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	db := database.NewDatabase()
	if cfg.Seed.Enabled {
		catalog, err := config.LoadSeed(cfg.Seed.Path)
		if err != nil {
			logger.WithError(err).Fatal("Failed to load seed catalog")
		}
		if err := db.Seed(catalog); err != nil {
			logger.WithError(err).Fatal("Failed to seed catalog")
		}
		counts := db.Counts()
		logger.WithFields(logrus.Fields{
			"users":      counts.Users,
			"cities":     counts.Cities,
			"properties": counts.Properties,
			"agents":     counts.Agents,
		}).Info("Catalog seeded")
	}

	activity, err := archive.Open(cfg.Archive.Path, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open activity archive")
	}
	defer activity.Close()

	eventQueue := queue.NewEventQueue(cfg.BatchProcessing.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(activity.DB(), eventQueue, cfg, logger)
	batchProcessor.Start()

	gin.SetMode(gin.ReleaseMode)
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.TokenExpiry())
	handler := api.NewHandler(db, tokens, logger,
		api.WithEvents(batchProcessor),
		api.WithActivity(activity),
	)
	m := metrics.New(db)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Middleware:     []gin.HandlerFunc{m.Middleware()},
		Metrics:        m.Handler(),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	batchProcessor.Stop()
	logger.Info("Server exited")
}
