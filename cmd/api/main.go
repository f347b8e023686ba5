package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sacofrina/gmao-api/internal/config"
	"github.com/sacofrina/gmao-api/internal/http/handler"
	"github.com/sacofrina/gmao-api/internal/http/middleware"
	"github.com/sacofrina/gmao-api/internal/http/router"
	"github.com/sacofrina/gmao-api/internal/logger"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/service"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
		zap.String("base_directory", cfg.Store.BaseDirectory),
	)

	if err := os.MkdirAll(cfg.Store.BaseDirectory, 0o755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}

	// Initialize repositories and the folder taxonomy
	clientRepo := repository.NewClientRepository(cfg.Store.BaseDirectory)
	interventionRepo := repository.NewInterventionRepository(cfg.Store.BaseDirectory)
	taxonomyManager := taxonomy.NewManager(cfg.Store.BaseDirectory)

	// Initialize services
	clientService := service.NewClientService(clientRepo, taxonomyManager, cfg.Admin.Password, log)
	documentService := service.NewDocumentService(clientRepo, taxonomyManager, log)
	interventionService := service.NewInterventionService(interventionRepo, clientRepo, log)
	reportService := service.NewReportService(clientRepo, taxonomyManager, log)

	// Initialize middleware and handlers
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	documentHandler := handler.NewDocumentHandler(documentService, cfg.Upload.MaxUploadSizeMB, cfg.Upload.AllowedExtensions, log)
	interventionHandler := handler.NewInterventionHandler(interventionService, log)
	reportHandler := handler.NewReportHandler(reportService, log)

	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		clientHandler,
		documentHandler,
		interventionHandler,
		reportHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
