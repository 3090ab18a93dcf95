package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConservationInternational/trends.earth-schemas/internal/api"
	"github.com/ConservationInternational/trends.earth-schemas/internal/codec"
	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// testRouter builds a router with the report and legend routes mounted the
// way the server does.
func testRouter(t *testing.T) http.Handler {
	t.Helper()
	reportHandler := api.NewReportHandler(testLogger())
	legendHandler := api.NewLegendHandler(testLogger())

	r := chi.NewRouter()
	r.Post("/v1/reports/validate", reportHandler.ValidateReport)
	r.Post("/v1/reports/convert", reportHandler.ConvertReport)
	r.Post("/v1/reports/drought/validate", reportHandler.ValidateDroughtReport)
	r.Get("/v1/legends", legendHandler.ListLegends)
	r.Get("/v1/legends/{dimension}", legendHandler.GetLegend)
	return r
}

// sampleDocument builds an encoded land condition document with the given
// number of periods.
func sampleDocument(t *testing.T, periods int) map[string]any {
	t.Helper()
	s := &reporting.LandConditionSummary{
		Metadata: reporting.ReportMetadata{
			Title: "API test summary",
			Date:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Version: reporting.Version{
				Version:     "2.1.16",
				ReleaseDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	for n := 1; n <= periods; n++ {
		lc := reporting.LandConditionReport{
			SDG: reporting.SDG15Report{
				Summary: reporting.AreaList{
					Name:  "SDG summary",
					Unit:  reporting.UnitSquareKm,
					Areas: []reporting.Area{{Name: "Degraded", Area: 10}},
				},
			},
		}
		ap := reporting.AffectedPopulationReport{}
		require.NoError(t, s.LandCondition.AddPeriod(n, lc, nil))
		require.NoError(t, s.AffectedPopulation.AddPeriod(n, ap, nil))
	}
	s.Seal()

	doc, err := codec.EncodeLandCondition(s)
	require.NoError(t, err)
	return doc
}

// postJSON posts v as a JSON body and returns the recorded response.
func postJSON(t *testing.T, router http.Handler, path string, v any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateReport(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/v1/reports/validate", sampleDocument(t, 3))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 3, resp.Periods)
	assert.Equal(t, "API test summary", resp.Title)
	assert.Equal(t, "2.1.16", resp.Version)
}

func TestValidateReportMissingField(t *testing.T) {
	router := testRouter(t)

	doc := sampleDocument(t, 2)
	delete(doc["land_condition"].(map[string]any), "Report_1")

	w := postJSON(t, router, "/v1/reports/validate", doc)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The located path is safe to surface to clients.
	assert.Contains(t, resp["error"], "land_condition.Report_1")
}

func TestValidateReportUnsupportedVersion(t *testing.T) {
	router := testRouter(t)

	doc := sampleDocument(t, 1)
	meta := doc["metadata"].(map[string]any)
	meta["trends_earth_version"].(map[string]any)["version"] = "3.0.0"

	w := postJSON(t, router, "/v1/reports/validate", doc)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateReportMalformedBody(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/validate",
		bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertReportRoundTrip(t *testing.T) {
	router := testRouter(t)

	doc := sampleDocument(t, 2)
	w := postJSON(t, router, "/v1/reports/convert", doc)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Contains(t, out, "metadata")
	assert.Contains(t, out["land_condition"], "Report_2")
}

func TestConvertReportLegacyTarget(t *testing.T) {
	router := testRouter(t)

	doc := sampleDocument(t, 2)
	w := postJSON(t, router, "/v1/reports/convert?target=legacy", doc)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "reporting")
}

func TestConvertReportLegacyTargetTooManyPeriods(t *testing.T) {
	router := testRouter(t)

	doc := sampleDocument(t, 3)
	w := postJSON(t, router, "/v1/reports/convert?target=legacy", doc)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConvertReportUnknownTarget(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/v1/reports/convert?target=xml", sampleDocument(t, 1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateDroughtReport(t *testing.T) {
	router := testRouter(t)

	s := &reporting.DroughtSummary{
		Metadata: reporting.ReportMetadata{
			Title: "Drought summary",
			Date:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Version: reporting.Version{
				Version:     "2.1.16",
				ReleaseDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Drought: reporting.DroughtReport{
			TierOne: map[int]reporting.AreaList{
				2019: {
					Name:  "Drought hazard",
					Unit:  reporting.UnitSquareKm,
					Areas: []reporting.Area{{Name: "Mild drought", Area: 120}},
				},
			},
		},
	}
	doc, err := codec.EncodeDrought(s)
	require.NoError(t, err)

	w := postJSON(t, router, "/v1/reports/drought/validate", doc)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "Drought summary", resp.Title)
}
