package reporting

import (
	"errors"
	"fmt"
)

// ErrInvalidDroughtClass is returned when a drought class string is outside
// the closed enumeration.
var ErrInvalidDroughtClass = errors.New("invalid drought class")

// DroughtClass is the closed set of drought intensity categories.
type DroughtClass string

// Drought class constants.
const (
	DroughtNone     DroughtClass = "Non-drought"
	DroughtMild     DroughtClass = "Mild drought"
	DroughtModerate DroughtClass = "Moderate drought"
	DroughtSevere   DroughtClass = "Severe drought"
	DroughtExtreme  DroughtClass = "Extreme drought"
)

// IsValid reports whether c is an accepted drought class.
func (c DroughtClass) IsValid() bool {
	switch c {
	case DroughtNone, DroughtMild, DroughtModerate, DroughtSevere, DroughtExtreme:
		return true
	}
	return false
}

// DroughtExposedPopulation is the population exposed to one drought class in
// one year.
type DroughtExposedPopulation struct {
	DroughtClass DroughtClass `json:"drought_class"`
	Year         int          `json:"year"`
	Exposed      []Population `json:"exposed_population"`
}

// Validate checks the drought class and population entries.
func (d DroughtExposedPopulation) Validate() error {
	if !d.DroughtClass.IsValid() {
		return fmt.Errorf("year %d: class %q: %w", d.Year, d.DroughtClass, ErrInvalidDroughtClass)
	}
	for _, p := range d.Exposed {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("year %d: %w", d.Year, err)
		}
	}
	return nil
}

// DroughtReport holds the three UNCCD strategic objective 3 tiers, each keyed
// by year: tier one summarizes drought hazard areas, tier two the exposed
// population by summary type, tier three the drought vulnerability index.
type DroughtReport struct {
	TierOne   map[int]AreaList                  `json:"tier_one"`
	TierTwo   map[int]map[string]PopulationList `json:"tier_two"`
	TierThree map[int]Value                     `json:"tier_three"`
}

// Validate checks every tier table.
func (d DroughtReport) Validate() error {
	for year, list := range d.TierOne {
		if err := list.Validate(); err != nil {
			return fmt.Errorf("tier one, year %d: %w", year, err)
		}
	}
	for year, lists := range d.TierTwo {
		for key, list := range lists {
			if err := list.Validate(); err != nil {
				return fmt.Errorf("tier two, year %d, %q: %w", year, key, err)
			}
		}
	}
	return nil
}
