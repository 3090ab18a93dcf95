package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ConservationInternational/trends.earth-schemas/internal/api/shared"
	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

// LegendResponse represents one registered legend.
type LegendResponse struct {
	Dimension classification.Dimension `json:"dimension"`
	Legend    classification.Legend    `json:"legend"`
	Codes     []int                    `json:"codes"`
}

// LegendHandler serves the contents of the classification registry.
type LegendHandler struct {
	logger *slog.Logger
}

// NewLegendHandler creates a new LegendHandler.
func NewLegendHandler(logger *slog.Logger) *LegendHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LegendHandler")
	}

	return &LegendHandler{
		logger: logger.With(slog.String("component", "legend_handler")),
	}
}

// ListLegends handles GET /v1/legends requests.
func (h *LegendHandler) ListLegends(w http.ResponseWriter, r *http.Request) {
	dimensions := classification.RegisteredDimensions()

	out := make([]LegendResponse, 0, len(dimensions))
	for _, dim := range dimensions {
		legend, err := classification.Scheme(dim)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to read classification registry", err)
			return
		}
		out = append(out, legendToResponse(dim, legend))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetLegend handles GET /v1/legends/{dimension} requests.
func (h *LegendHandler) GetLegend(w http.ResponseWriter, r *http.Request) {
	dimension := classification.Dimension(chi.URLParam(r, "dimension"))

	legend, err := classification.Scheme(dimension)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, legendToResponse(dimension, legend))
}

func legendToResponse(dimension classification.Dimension, legend classification.Legend) LegendResponse {
	codes := make([]int, 0, len(legend.Key))
	for _, c := range legend.Key {
		codes = append(codes, c.Code)
	}
	return LegendResponse{
		Dimension: dimension,
		Legend:    legend,
		Codes:     codes,
	}
}
