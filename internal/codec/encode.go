package codec

import (
	"encoding/json"

	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
	"github.com/google/uuid"
)

// EncodeLandCondition converts a land condition summary into its portable
// document form, generating period keys for both report sets. The summary
// must validate; required metadata fields are reported by path.
func EncodeLandCondition(s *reporting.LandConditionSummary) (map[string]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	metadata, err := encodeMetadata(s.Metadata)
	if err != nil {
		return nil, err
	}
	landCondition, err := encodePeriods(s.LandCondition.Records())
	if err != nil {
		return nil, err
	}
	affected, err := encodePeriods(s.AffectedPopulation.Records())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"metadata":            metadata,
		"land_condition":      landCondition,
		"affected_population": affected,
	}, nil
}

// EncodeDrought converts a drought summary into its portable document form.
func EncodeDrought(s *reporting.DroughtSummary) (map[string]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	metadata, err := encodeMetadata(s.Metadata)
	if err != nil {
		return nil, err
	}
	drought, err := toTree(s.Drought)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"metadata": metadata,
		"drought":  drought,
	}, nil
}

// encodePeriods emits one period report set as a map keyed by the generated
// period naming convention.
func encodePeriods[T any](records []reporting.PeriodRecord[T]) (map[string]any, error) {
	out := make(map[string]any, len(records)*2)
	for _, rec := range records {
		key, err := PeriodKey(rec.Index, false)
		if err != nil {
			return nil, err
		}
		tree, err := toTree(rec.Assessment)
		if err != nil {
			return nil, err
		}
		out[key] = tree

		if rec.Status != nil {
			statusKey, err := PeriodKey(rec.Index, true)
			if err != nil {
				return nil, err
			}
			statusTree, err := toTree(*rec.Status)
			if err != nil {
				return nil, err
			}
			out[statusKey] = statusTree
		}
	}
	return out, nil
}

// encodeMetadata emits report metadata with the fixed wire timestamp format.
func encodeMetadata(md reporting.ReportMetadata) (map[string]any, error) {
	if md.Title == "" {
		return nil, &MissingFieldError{Path: "metadata.title"}
	}
	if md.Date.IsZero() {
		return nil, &MissingFieldError{Path: "metadata.date"}
	}
	if md.Version.Version == "" {
		return nil, &MissingFieldError{Path: "metadata.trends_earth_version.version"}
	}

	version := map[string]any{
		"version":      md.Version.Version,
		"release_date": md.Version.ReleaseDate.UTC().Format(reporting.MetadataTimeFormat),
	}
	if md.Version.Revision != "" {
		version["revision"] = md.Version.Revision
	}

	var geojson any
	if len(md.AreaOfInterest.GeoJSON) > 0 {
		if err := json.Unmarshal(md.AreaOfInterest.GeoJSON, &geojson); err != nil {
			return nil, &TypeMismatchError{
				Path: "metadata.area_of_interest.geojson",
				Want: "object",
				Got:  "malformed JSON",
			}
		}
	}

	out := map[string]any{
		"title":                md.Title,
		"date":                 md.Date.UTC().Format(reporting.MetadataTimeFormat),
		"trends_earth_version": version,
		"area_of_interest": map[string]any{
			"name":    md.AreaOfInterest.Name,
			"geojson": geojson,
			"crs_wkt": md.AreaOfInterest.CRSWKT,
		},
		"affected_areas_only": md.AffectedAreasOnly,
	}
	if md.JobID != uuid.Nil {
		out["job_id"] = md.JobID.String()
	}
	return out, nil
}
