package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
	"github.com/google/uuid"
)

// landConditionDecoders is the migration table mapping each supported format
// onto its land condition decoding path.
var landConditionDecoders = map[FormatVersion]func(map[string]any, reporting.ReportMetadata) (*reporting.LandConditionSummary, error){
	FormatV1:      decodeLandConditionV1,
	FormatV2:      decodeLandConditionV2,
	FormatCurrent: decodeLandConditionCurrent,
}

// droughtDecoders is the migration table for drought summaries. Drought
// reporting was introduced with the 2.0 format, so FormatV1 has no entry.
var droughtDecoders = map[FormatVersion]func(map[string]any, reporting.ReportMetadata) (*reporting.DroughtSummary, error){
	FormatV2:      decodeDroughtV2,
	FormatCurrent: decodeDroughtCurrent,
}

// DecodeLandCondition rebuilds a land condition summary from its document
// form, selecting the decoding path by the version recorded in the metadata.
// The returned summary is sealed and validated.
func DecodeLandCondition(doc map[string]any) (*reporting.LandConditionSummary, error) {
	md, format, err := decodeVersionedMetadata(doc)
	if err != nil {
		return nil, err
	}
	decode, ok := landConditionDecoders[format]
	if !ok {
		return nil, &UnsupportedVersionError{Version: md.Version.Version}
	}
	s, err := decode(doc, md)
	if err != nil {
		return nil, err
	}
	s.Seal()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeDrought rebuilds a drought summary from its document form.
func DecodeDrought(doc map[string]any) (*reporting.DroughtSummary, error) {
	md, format, err := decodeVersionedMetadata(doc)
	if err != nil {
		return nil, err
	}
	decode, ok := droughtDecoders[format]
	if !ok {
		return nil, &UnsupportedVersionError{Version: md.Version.Version}
	}
	s, err := decode(doc, md)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeVersionedMetadata(doc map[string]any) (reporting.ReportMetadata, FormatVersion, error) {
	metaDoc, err := requireMap(doc, "", "metadata")
	if err != nil {
		return reporting.ReportMetadata{}, 0, err
	}
	md, err := decodeMetadata(metaDoc)
	if err != nil {
		return reporting.ReportMetadata{}, 0, err
	}
	format, err := DetectVersion(md.Version.Version)
	if err != nil {
		return reporting.ReportMetadata{}, 0, err
	}
	return md, format, nil
}

// decodeLandConditionCurrent handles the dynamic period-keyed shape.
func decodeLandConditionCurrent(doc map[string]any, md reporting.ReportMetadata) (*reporting.LandConditionSummary, error) {
	s := &reporting.LandConditionSummary{Metadata: md}

	lcDoc, err := requireMap(doc, "", "land_condition")
	if err != nil {
		return nil, err
	}
	if err := decodePeriods(lcDoc, "land_condition", &s.LandCondition); err != nil {
		return nil, err
	}

	apDoc, err := requireMap(doc, "", "affected_population")
	if err != nil {
		return nil, err
	}
	if err := decodePeriods(apDoc, "affected_population", &s.AffectedPopulation); err != nil {
		return nil, err
	}
	return s, nil
}

// decodePeriods rebuilds one period report set from its keyed document form,
// enforcing the naming convention and the dense 1-based period sequence.
func decodePeriods[T any](doc map[string]any, path string, set *reporting.PeriodReportSet[T]) error {
	type periodDocs struct {
		assessment any
		hasBase    bool
		status     any
		hasStatus  bool
	}
	byIndex := map[int]*periodDocs{}
	maxIndex := 0

	for key, raw := range doc {
		n, status, err := ParsePeriodKey(key)
		if err != nil {
			return fmt.Errorf("field %q: %w", joinPath(path, key), err)
		}
		p := byIndex[n]
		if p == nil {
			p = &periodDocs{}
			byIndex[n] = p
		}
		if status {
			p.status, p.hasStatus = raw, true
		} else {
			p.assessment, p.hasBase = raw, true
		}
		if n > maxIndex {
			maxIndex = n
		}
	}

	for n := 1; n <= maxIndex; n++ {
		key, _ := PeriodKey(n, false)
		p := byIndex[n]
		if p == nil || !p.hasBase {
			// Either a gap in the sequence or a status report without its
			// period assessment.
			return &MissingFieldError{Path: joinPath(path, key)}
		}
		var assessment T
		if err := fromTree(joinPath(path, key), p.assessment, &assessment); err != nil {
			return err
		}
		var statusReport *T
		if p.hasStatus {
			statusKey, _ := PeriodKey(n, true)
			var decoded T
			if err := fromTree(joinPath(path, statusKey), p.status, &decoded); err != nil {
				return err
			}
			statusReport = &decoded
		}
		if err := set.AddPeriod(n, assessment, statusReport); err != nil {
			return err
		}
	}
	return nil
}

// decodeLandConditionV2 handles the fixed "baseline"/"reporting" two-period
// legacy shape. Status reports did not exist in this format.
func decodeLandConditionV2(doc map[string]any, md reporting.ReportMetadata) (*reporting.LandConditionSummary, error) {
	s := &reporting.LandConditionSummary{Metadata: md}

	lcDoc, err := requireMap(doc, "", "land_condition")
	if err != nil {
		return nil, err
	}
	apDoc, err := requireMap(doc, "", "affected_population")
	if err != nil {
		return nil, err
	}

	for i, key := range []string{"baseline", "reporting"} {
		lcTree, ok := lcDoc[key]
		if !ok {
			if key == "baseline" {
				return nil, &MissingFieldError{Path: "land_condition.baseline"}
			}
			break
		}
		var lc reporting.LandConditionReport
		if err := fromTree(joinPath("land_condition", key), lcTree, &lc); err != nil {
			return nil, err
		}
		apTree, ok := apDoc[key]
		if !ok {
			return nil, &MissingFieldError{Path: joinPath("affected_population", key)}
		}
		var ap reporting.AffectedPopulationReport
		if err := fromTree(joinPath("affected_population", key), apTree, &ap); err != nil {
			return nil, err
		}
		if err := s.LandCondition.AddPeriod(i+1, lc, nil); err != nil {
			return nil, err
		}
		if err := s.AffectedPopulation.AddPeriod(i+1, ap, nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// decodeLandConditionV1 handles the original flat single-period shape.
func decodeLandConditionV1(doc map[string]any, md reporting.ReportMetadata) (*reporting.LandConditionSummary, error) {
	s := &reporting.LandConditionSummary{Metadata: md}

	lcTree, ok := doc["land_condition"]
	if !ok || lcTree == nil {
		return nil, &MissingFieldError{Path: "land_condition"}
	}
	var lc reporting.LandConditionReport
	if err := fromTree("land_condition", lcTree, &lc); err != nil {
		return nil, err
	}

	var ap reporting.AffectedPopulationReport
	if apTree, ok := doc["affected_population"]; ok && apTree != nil {
		if err := fromTree("affected_population", apTree, &ap); err != nil {
			return nil, err
		}
	}

	if err := s.LandCondition.AddPeriod(1, lc, nil); err != nil {
		return nil, err
	}
	if err := s.AffectedPopulation.AddPeriod(1, ap, nil); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeDroughtCurrent handles the current tiered drought shape.
func decodeDroughtCurrent(doc map[string]any, md reporting.ReportMetadata) (*reporting.DroughtSummary, error) {
	droughtTree, err := requireMap(doc, "", "drought")
	if err != nil {
		return nil, err
	}
	var report reporting.DroughtReport
	if err := fromTree("drought", droughtTree, &report); err != nil {
		return nil, err
	}
	return &reporting.DroughtSummary{Metadata: md, Drought: report}, nil
}

// decodeDroughtV2 handles the 2.0 drought shape, which used bare "tier1",
// "tier2", "tier3" keys.
func decodeDroughtV2(doc map[string]any, md reporting.ReportMetadata) (*reporting.DroughtSummary, error) {
	droughtTree, err := requireMap(doc, "", "drought")
	if err != nil {
		return nil, err
	}
	remapped := map[string]any{}
	for legacy, current := range map[string]string{
		"tier1": "tier_one",
		"tier2": "tier_two",
		"tier3": "tier_three",
	} {
		if v, ok := droughtTree[legacy]; ok {
			remapped[current] = v
		}
	}
	var report reporting.DroughtReport
	if err := fromTree("drought", remapped, &report); err != nil {
		return nil, err
	}
	return &reporting.DroughtSummary{Metadata: md, Drought: report}, nil
}

// decodeMetadata rebuilds report metadata, parsing the fixed wire timestamp
// format.
func decodeMetadata(doc map[string]any) (reporting.ReportMetadata, error) {
	var md reporting.ReportMetadata
	var err error

	if md.Title, err = requireString(doc, "metadata", "title"); err != nil {
		return md, err
	}
	if md.Date, err = requireTime(doc, "metadata", "date"); err != nil {
		return md, err
	}

	versionDoc, err := requireMap(doc, "metadata", "trends_earth_version")
	if err != nil {
		return md, err
	}
	if md.Version.Version, err = requireString(versionDoc, "metadata.trends_earth_version", "version"); err != nil {
		return md, err
	}
	if md.Version.ReleaseDate, err = requireTime(versionDoc, "metadata.trends_earth_version", "release_date"); err != nil {
		return md, err
	}
	if md.Version.Revision, err = optionalString(versionDoc, "metadata.trends_earth_version", "revision"); err != nil {
		return md, err
	}

	jobID, err := optionalString(doc, "metadata", "job_id")
	if err != nil {
		return md, err
	}
	if jobID != "" {
		if md.JobID, err = uuid.Parse(jobID); err != nil {
			return md, &TypeMismatchError{Path: "metadata.job_id", Want: "uuid", Got: strconv.Quote(jobID)}
		}
	}

	aoiDoc, err := optionalMap(doc, "metadata", "area_of_interest")
	if err != nil {
		return md, err
	}
	if aoiDoc != nil {
		if err := fromTree("metadata.area_of_interest", aoiDoc, &md.AreaOfInterest); err != nil {
			return md, err
		}
	}

	if md.AffectedAreasOnly, err = optionalBool(doc, "metadata", "affected_areas_only"); err != nil {
		return md, err
	}
	return md, nil
}

// requireTime fetches a required timestamp field in the wire format.
func requireTime(doc map[string]any, path, key string) (time.Time, error) {
	s, err := requireString(doc, path, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(reporting.MetadataTimeFormat, s)
	if err != nil {
		return time.Time{}, &TypeMismatchError{
			Path: joinPath(path, key),
			Want: "timestamp " + reporting.MetadataTimeFormat,
			Got:  strconv.Quote(s),
		}
	}
	return t.UTC(), nil
}
