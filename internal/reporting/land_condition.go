package reporting

import (
	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
	"github.com/ConservationInternational/trends.earth-schemas/internal/transition"
)

// SDG15Report is the summary table for SDG Indicator 15.3.1 within one
// period.
type SDG15Report struct {
	Summary AreaList `json:"summary"`
}

// ProductivityReport covers land productivity within one period: summary
// tables keyed by summary type, and cross tabulations by productivity class.
type ProductivityReport struct {
	Summaries map[string]AreaList `json:"summaries"`
	CrossTabs []CrossTab          `json:"crosstabs_by_productivity_class"`
}

// LandCoverReport covers land cover within one period. It carries the legend
// nesting and validated transition matrix the degradation figures were
// derived under, so a report is self-describing.
type LandCoverReport struct {
	Summary       AreaList                `json:"summary"`
	LegendNesting *classification.Nesting `json:"legend_nesting,omitempty"`
	Matrix        *transition.Matrix      `json:"transition_matrix,omitempty"`
	CrossTabs     []CrossTab              `json:"crosstabs_by_land_cover_class"`
	AreasByYear   ValuesByYear            `json:"land_cover_areas_by_year"`
}

// SoilOrganicCarbonReport covers soil organic carbon within one period.
// Summary keys indicate the cover types summarized over ("all_cover_types",
// "non_water").
type SoilOrganicCarbonReport struct {
	Summaries   map[string]AreaList  `json:"summaries"`
	CrossTab    CrossTabInitialFinal `json:"crosstab_by_land_cover_class"`
	StockByYear ValuesByYear         `json:"soc_stock_by_year"`
}

// LandConditionChange cross-tabulates the change in each indicator between
// two reporting periods.
type LandConditionChange struct {
	SDG               CrossTab `json:"sdg"`
	Productivity      CrossTab `json:"productivity"`
	LandCover         CrossTab `json:"land_cover"`
	SoilOrganicCarbon CrossTab `json:"soil_organic_carbon"`
}

// LandConditionReport is the land condition payload for one reporting period.
// The same type backs both the period assessment and the status report of a
// period; status reports populate the summary tables only. ErrorRecode and
// Change are optional.
type LandConditionReport struct {
	SDG               SDG15Report             `json:"sdg"`
	Productivity      ProductivityReport      `json:"productivity"`
	LandCover         LandCoverReport         `json:"land_cover"`
	SoilOrganicCarbon SoilOrganicCarbonReport `json:"soil_organic_carbon"`
	ErrorRecode       *AreaList               `json:"sdg_error_recode,omitempty"`
	Change            *LandConditionChange    `json:"change,omitempty"`
}

// AffectedPopulationReport is the affected population payload for one
// reporting period, keyed by summary type.
type AffectedPopulationReport struct {
	Summary map[string]PopulationList `json:"summary"`
}
