package reporting

import (
	"errors"
	"testing"
)

func TestAreaListValidate(t *testing.T) {
	list := AreaList{
		Name: "SDG Indicator 15.3.1",
		Unit: UnitSquareKm,
		Areas: []Area{
			{Name: "Degraded", Area: 120.5},
			{Name: "Stable", Area: 0},
		},
	}
	if err := list.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	list.Unit = "acres"
	if err := list.Validate(); !errors.Is(err, ErrInvalidAreaUnit) {
		t.Errorf("Expected ErrInvalidAreaUnit, got %v", err)
	}

	list.Unit = UnitHectares
	list.Areas = append(list.Areas, Area{Name: "Improved", Area: -1})
	if err := list.Validate(); !errors.Is(err, ErrNegativeArea) {
		t.Errorf("Expected ErrNegativeArea, got %v", err)
	}
}

func TestPopulationListValidate(t *testing.T) {
	list := PopulationList{
		Name: "Population exposed",
		Values: []Population{
			{Name: "Degraded", Population: 1000, Type: PopulationTotal},
			{Name: "Degraded", Population: 480, Type: PopulationFemale},
			{Name: "Degraded", Population: 520, Type: PopulationMale},
		},
	}
	if err := list.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	list.Values[0].Population = -1
	if err := list.Validate(); !errors.Is(err, ErrNegativePopulation) {
		t.Errorf("Expected ErrNegativePopulation, got %v", err)
	}

	list.Values[0].Population = 1000
	list.Values[0].Type = "Household population"
	if err := list.Validate(); !errors.Is(err, ErrInvalidPopulationType) {
		t.Errorf("Expected ErrInvalidPopulationType, got %v", err)
	}
}

func TestDroughtReportValidate(t *testing.T) {
	report := DroughtReport{
		TierOne: map[int]AreaList{
			2018: {Name: "Drought hazard", Unit: UnitSquareKm, Areas: []Area{{Name: "Mild drought", Area: 10}}},
		},
		TierTwo: map[int]map[string]PopulationList{
			2018: {"total": {Name: "Exposed", Values: []Population{{Name: "Mild drought", Population: 5, Type: PopulationTotal}}}},
		},
		TierThree: map[int]Value{
			2018: {Name: "Vulnerability index", Value: 0.61},
		},
	}
	if err := report.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	report.TierOne[2018] = AreaList{Name: "bad", Unit: "furlongs"}
	if err := report.Validate(); !errors.Is(err, ErrInvalidAreaUnit) {
		t.Errorf("Expected ErrInvalidAreaUnit, got %v", err)
	}
}

func TestDroughtClassValidate(t *testing.T) {
	exposed := DroughtExposedPopulation{
		DroughtClass: DroughtSevere,
		Year:         2019,
		Exposed:      []Population{{Name: "Severe drought", Population: 12, Type: PopulationTotal}},
	}
	if err := exposed.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	exposed.DroughtClass = "Apocalyptic drought"
	if err := exposed.Validate(); !errors.Is(err, ErrInvalidDroughtClass) {
		t.Errorf("Expected ErrInvalidDroughtClass, got %v", err)
	}
}
