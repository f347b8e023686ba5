package router

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/sacofrina/gmao-api/internal/config"
	"github.com/sacofrina/gmao-api/internal/http/handler"
	"github.com/sacofrina/gmao-api/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	rateLimiter         *middleware.RateLimiter
	clientHandler       *handler.ClientHandler
	documentHandler     *handler.DocumentHandler
	interventionHandler *handler.InterventionHandler
	reportHandler       *handler.ReportHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	clientHandler *handler.ClientHandler,
	documentHandler *handler.DocumentHandler,
	interventionHandler *handler.InterventionHandler,
	reportHandler *handler.ReportHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		rateLimiter:         rateLimiter,
		clientHandler:       clientHandler,
		documentHandler:     documentHandler,
		interventionHandler: interventionHandler,
		reportHandler:       reportHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness probe: the base directory must be present and writable
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK

		if err := checkBaseDirectory(rt.cfg.Store.BaseDirectory); err != nil {
			rt.logger.Error("base directory health check failed", zap.Error(err))
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": map[string]string{"store": status},
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/export", rt.clientHandler.Export)
			r.Get("/{name}", rt.clientHandler.GetByName)
			r.Put("/{name}", rt.clientHandler.Update)
			r.Delete("/{name}", rt.clientHandler.Delete)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", rt.documentHandler.Upload)
			r.Get("/offers", rt.documentHandler.ListOffers)
		})

		r.Route("/interventions", func(r chi.Router) {
			r.Get("/", rt.interventionHandler.List)
			r.Post("/", rt.interventionHandler.Plan)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/search", rt.reportHandler.QuickSearch)
			r.Post("/summary", rt.reportHandler.Summary)
			r.Get("/summary/export", rt.reportHandler.ExportSummary)
		})
	})

	return r
}

// checkBaseDirectory verifies the store's base directory exists and is
// writable by creating and removing a probe file.
func checkBaseDirectory(baseDir string) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(baseDir, ".ready-probe")
	f, err := os.Create(probe)
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(probe)
}
