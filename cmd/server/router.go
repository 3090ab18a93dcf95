package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ConservationInternational/trends.earth-schemas/internal/api"
	apiMiddleware "github.com/ConservationInternational/trends.earth-schemas/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers
	reportHandler := api.NewReportHandler(app.logger)
	legendHandler := api.NewLegendHandler(app.logger)

	// Register routes
	r.Route("/v1", func(r chi.Router) {
		r.Post("/reports/validate", reportHandler.ValidateReport)
		r.Post("/reports/convert", reportHandler.ConvertReport)
		r.Post("/reports/drought/validate", reportHandler.ValidateDroughtReport)

		r.Get("/legends", legendHandler.ListLegends)
		r.Get("/legends/{dimension}", legendHandler.GetLegend)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
