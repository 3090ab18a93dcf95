package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ConservationInternational/trends.earth-schemas/internal/api/shared"
	"github.com/ConservationInternational/trends.earth-schemas/internal/codec"
	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
)

// convertRequest carries the parameters of a conversion request. The zero
// Target selects the current format.
type convertRequest struct {
	Target codec.ConvertTarget
}

func (req *convertRequest) Validate() error {
	if !req.Target.IsValid() {
		return fmt.Errorf("target %q: %w", req.Target, codec.ErrUnknownTarget)
	}
	return nil
}

// ValidateResponse represents the result of validating a report document.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Periods int    `json:"periods"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// ReportHandler handles report document validation and conversion requests.
type ReportHandler struct {
	logger *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(logger *slog.Logger) *ReportHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReportHandler")
	}

	return &ReportHandler{
		logger: logger.With(slog.String("component", "report_handler")),
	}
}

// ValidateReport handles POST /v1/reports/validate requests.
// It decodes the submitted document with the version-appropriate decoder and
// reports whether it satisfies the contract.
func (h *ReportHandler) ValidateReport(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := codec.DecodeLandCondition(doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("report document validated",
		slog.String("title", summary.Metadata.Title),
		slog.Int("periods", summary.LandCondition.Len()))

	shared.RespondWithJSON(w, r, http.StatusOK, ValidateResponse{
		Valid:   true,
		Periods: summary.LandCondition.Len(),
		Title:   summary.Metadata.Title,
		Version: summary.Metadata.Version.Version,
	})
}

// ValidateDroughtReport handles POST /v1/reports/drought/validate requests.
func (h *ReportHandler) ValidateDroughtReport(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := codec.DecodeDrought(doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ValidateResponse{
		Valid:   true,
		Title:   summary.Metadata.Title,
		Version: summary.Metadata.Version.Version,
	})
}

// ConvertReport handles POST /v1/reports/convert requests.
// It decodes any supported document version and re-encodes it in the current
// format. With ?target=legacy the response is the fixed two-period view
// instead, which fails for summaries with more than two periods.
func (h *ReportHandler) ConvertReport(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req := convertRequest{Target: codec.ConvertTarget(r.URL.Query().Get("target"))}
	if req.Target == "" {
		req.Target = codec.TargetCurrent
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown conversion target")
		return
	}

	summary, err := codec.DecodeLandCondition(doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if req.Target == codec.TargetLegacy {
		view, err := reporting.LegacyView(summary)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, view)
		return
	}

	out, err := codec.EncodeLandCondition(summary)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("report document converted",
		slog.String("title", summary.Metadata.Title),
		slog.String("source_version", summary.Metadata.Version.Version))

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
