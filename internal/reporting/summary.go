package reporting

import (
	"errors"
	"fmt"
)

// ErrPeriodSetMismatch is returned when the land condition and affected
// population period sets of a summary do not line up.
var ErrPeriodSetMismatch = errors.New("land condition and affected population periods do not match")

// LandConditionSummary is the top-level land condition document: metadata
// plus parallel period sets for land condition and affected population
// reports. The two sets must cover identical periods, status reports
// included.
type LandConditionSummary struct {
	Metadata           ReportMetadata
	LandCondition      PeriodReportSet[LandConditionReport]
	AffectedPopulation PeriodReportSet[AffectedPopulationReport]
}

// Validate checks the metadata and the period alignment invariant.
func (s *LandConditionSummary) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return err
	}
	if s.LandCondition.Len() != s.AffectedPopulation.Len() {
		return fmt.Errorf("%d land condition vs %d affected population periods: %w",
			s.LandCondition.Len(), s.AffectedPopulation.Len(), ErrPeriodSetMismatch)
	}
	for n := 1; n <= s.LandCondition.Len(); n++ {
		if s.LandCondition.HasStatus(n) != s.AffectedPopulation.HasStatus(n) {
			return fmt.Errorf("period %d status reports: %w", n, ErrPeriodSetMismatch)
		}
	}
	return nil
}

// Seal seals both period sets, freezing the summary.
func (s *LandConditionSummary) Seal() {
	s.LandCondition.Seal()
	s.AffectedPopulation.Seal()
}

// DroughtSummary is the top-level drought document: metadata plus one tiered
// drought report. Drought summaries are not period-indexed.
type DroughtSummary struct {
	Metadata ReportMetadata
	Drought  DroughtReport
}

// Validate checks the metadata and the drought report tables.
func (s *DroughtSummary) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return err
	}
	return s.Drought.Validate()
}

// LegacyLandConditionView is the fixed two-period shape consumed by pre-2.1
// tooling: a baseline period and an optional reporting period.
type LegacyLandConditionView struct {
	Metadata            ReportMetadata            `json:"metadata"`
	Baseline            LandConditionReport       `json:"baseline"`
	BaselineStatus      *LandConditionReport      `json:"baseline_status,omitempty"`
	BaselinePopulation  AffectedPopulationReport  `json:"baseline_population"`
	Reporting           *LandConditionReport      `json:"reporting,omitempty"`
	ReportingStatus     *LandConditionReport      `json:"reporting_status,omitempty"`
	ReportingPopulation *AffectedPopulationReport `json:"reporting_population,omitempty"`
}

// LegacyView projects a summary onto the fixed two-period legacy structure.
// Fails with ErrUnsupportedPeriodCount when the summary has more than two
// periods, since legacy consumers cannot represent them.
func LegacyView(s *LandConditionSummary) (*LegacyLandConditionView, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.LandCondition.Len() > 2 {
		return nil, fmt.Errorf("%d periods: %w", s.LandCondition.Len(), ErrUnsupportedPeriodCount)
	}
	if s.LandCondition.Len() == 0 {
		return nil, fmt.Errorf("period 1: %w", ErrInvalidPeriodIndex)
	}

	baseline, _ := s.LandCondition.Record(1)
	basePop, _ := s.AffectedPopulation.Record(1)
	view := &LegacyLandConditionView{
		Metadata:           s.Metadata,
		Baseline:           baseline.Assessment,
		BaselineStatus:     baseline.Status,
		BaselinePopulation: basePop.Assessment,
	}

	if rec, ok := s.LandCondition.Record(2); ok {
		view.Reporting = &rec.Assessment
		view.ReportingStatus = rec.Status
		pop, _ := s.AffectedPopulation.Record(2)
		view.ReportingPopulation = &pop.Assessment
	}
	return view, nil
}
