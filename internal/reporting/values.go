package reporting

import (
	"errors"
	"fmt"
)

// Value table validation errors
var (
	// ErrNegativeArea is returned when an area value is below zero.
	ErrNegativeArea = errors.New("area cannot be negative")

	// ErrInvalidAreaUnit is returned when an area list uses an unknown unit.
	ErrInvalidAreaUnit = errors.New("invalid area unit")

	// ErrNegativePopulation is returned when a population count is below zero.
	ErrNegativePopulation = errors.New("population cannot be negative")

	// ErrInvalidPopulationType is returned when a population entry uses an
	// unknown population type.
	ErrInvalidPopulationType = errors.New("invalid population type")
)

// AreaUnit is the closed set of units accepted in area tables.
type AreaUnit string

// Area unit constants.
const (
	UnitMeters   AreaUnit = "m"
	UnitHectares AreaUnit = "ha"
	UnitSquareKm AreaUnit = "sq km"
)

// IsValid reports whether u is an accepted area unit.
func (u AreaUnit) IsValid() bool {
	switch u {
	case UnitMeters, UnitHectares, UnitSquareKm:
		return true
	}
	return false
}

// PopulationType is the closed set of population breakdowns.
type PopulationType string

// Population type constants.
const (
	PopulationTotal  PopulationType = "Total population"
	PopulationFemale PopulationType = "Female population"
	PopulationMale   PopulationType = "Male population"
)

// IsValid reports whether p is an accepted population type.
func (p PopulationType) IsValid() bool {
	switch p {
	case PopulationTotal, PopulationFemale, PopulationMale:
		return true
	}
	return false
}

// Value is a single named numeric result.
type Value struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Area is a named area figure within an AreaList.
type Area struct {
	Name string  `json:"name"`
	Area float64 `json:"area"`
}

// Validate checks the area is non-negative.
func (a Area) Validate() error {
	if a.Area < 0 {
		return fmt.Errorf("area %q: %w", a.Name, ErrNegativeArea)
	}
	return nil
}

// AreaList is a named table of areas sharing one unit.
type AreaList struct {
	Name  string   `json:"name"`
	Unit  AreaUnit `json:"unit"`
	Areas []Area   `json:"areas"`
}

// Validate checks the unit and each area entry.
func (l AreaList) Validate() error {
	if !l.Unit.IsValid() {
		return fmt.Errorf("area list %q: unit %q: %w", l.Name, l.Unit, ErrInvalidAreaUnit)
	}
	for _, a := range l.Areas {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("area list %q: %w", l.Name, err)
		}
	}
	return nil
}

// Population is a named population figure for one breakdown type.
type Population struct {
	Name       string         `json:"name"`
	Population int64          `json:"population"`
	Type       PopulationType `json:"type"`
}

// Validate checks the breakdown type and that the count is non-negative.
func (p Population) Validate() error {
	if p.Population < 0 {
		return fmt.Errorf("population %q: %w", p.Name, ErrNegativePopulation)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("population %q: type %q: %w", p.Name, p.Type, ErrInvalidPopulationType)
	}
	return nil
}

// PopulationList is a named table of population figures.
type PopulationList struct {
	Name   string       `json:"name"`
	Values []Population `json:"values"`
}

// Validate checks each population entry.
func (l PopulationList) Validate() error {
	for _, p := range l.Values {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("population list %q: %w", l.Name, err)
		}
	}
	return nil
}

// ValuesByYear is a named, unit-tagged table of values keyed by year and
// series name.
type ValuesByYear struct {
	Name   string                     `json:"name"`
	Unit   string                     `json:"unit"`
	Values map[int]map[string]float64 `json:"values"`
}

// CrossTabEntry is one cell of a cross tabulation between an initial and a
// final category.
type CrossTabEntry struct {
	InitialLabel string  `json:"initial_label"`
	FinalLabel   string  `json:"final_label"`
	Value        float64 `json:"value"`
}

// CrossTab is a cross tabulation of category transitions between two years.
type CrossTab struct {
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	InitialYear int             `json:"initial_year"`
	FinalYear   int             `json:"final_year"`
	Values      []CrossTabEntry `json:"values"`
}

// CrossTabEntryInitialFinal is one cell of a cross tabulation carrying both
// the initial and final values for a category pair.
type CrossTabEntryInitialFinal struct {
	InitialLabel string  `json:"initial_label"`
	FinalLabel   string  `json:"final_label"`
	InitialValue float64 `json:"initial_value"`
	FinalValue   float64 `json:"final_value"`
}

// CrossTabInitialFinal is a cross tabulation with initial and final values
// per cell.
type CrossTabInitialFinal struct {
	Name        string                      `json:"name"`
	Unit        string                      `json:"unit"`
	InitialYear int                         `json:"initial_year"`
	FinalYear   int                         `json:"final_year"`
	Values      []CrossTabEntryInitialFinal `json:"values"`
}
