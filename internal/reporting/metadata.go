package reporting

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata validation errors
var (
	// ErrEmptyTitle is returned when report metadata has no title.
	ErrEmptyTitle = errors.New("report title cannot be empty")

	// ErrEmptyVersion is returned when report metadata has no version string.
	ErrEmptyVersion = errors.New("report version cannot be empty")

	// ErrZeroDate is returned when report metadata has no generation date.
	ErrZeroDate = errors.New("report date cannot be zero")
)

// MetadataTimeFormat is the wire format for report timestamps, fixed for
// compatibility with existing Trends.Earth documents.
const MetadataTimeFormat = "2006-01-02T15:04:05+00:00"

// Version identifies the Trends.Earth release that produced a report. The
// version string doubles as the document schema version the codec branches on.
type Version struct {
	Version     string    `json:"version"`
	ReleaseDate time.Time `json:"release_date"`
	Revision    string    `json:"revision,omitempty"`
}

// AreaOfInterest is the analysis boundary. The geometry is opaque to this
// package; it is produced and consumed by the geospatial layer.
type AreaOfInterest struct {
	Name    string          `json:"name"`
	GeoJSON json.RawMessage `json:"geojson"`
	CRSWKT  string          `json:"crs_wkt"`
}

// ReportMetadata describes one generated summary: title, generation time,
// producing version, and the analysis boundary. Immutable once the owning
// summary is sealed.
type ReportMetadata struct {
	Title             string         `json:"title"`
	Date              time.Time      `json:"date"`
	Version           Version        `json:"trends_earth_version"`
	JobID             uuid.UUID      `json:"job_id"`
	AreaOfInterest    AreaOfInterest `json:"area_of_interest"`
	AffectedAreasOnly bool           `json:"affected_areas_only"`
}

// NewReportMetadata builds metadata with a fresh job ID and a UTC timestamp.
// Returns an error if validation fails.
func NewReportMetadata(title string, version Version, aoi AreaOfInterest) (ReportMetadata, error) {
	md := ReportMetadata{
		Title:          title,
		Date:           time.Now().UTC(),
		Version:        version,
		JobID:          uuid.New(),
		AreaOfInterest: aoi,
	}
	if err := md.Validate(); err != nil {
		return ReportMetadata{}, err
	}
	return md, nil
}

// Validate checks the metadata required fields.
func (m ReportMetadata) Validate() error {
	if m.Title == "" {
		return ErrEmptyTitle
	}
	if m.Version.Version == "" {
		return fmt.Errorf("metadata %q: %w", m.Title, ErrEmptyVersion)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("metadata %q: %w", m.Title, ErrZeroDate)
	}
	return nil
}
