package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/socialmedia-api/internal/api"
	apiMiddleware "github.com/phrazzld/socialmedia-api/internal/api/middleware"
)

// healthCheckTimeout bounds the database ping behind /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	userHandler.RegisterRoutes(r)
	api.RegisterDocsRoutes(r)

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports OK when the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Error("Health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
