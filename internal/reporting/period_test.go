package reporting

import (
	"errors"
	"testing"
)

func TestAddPeriodSequence(t *testing.T) {
	var set PeriodReportSet[LandConditionReport]

	for n := 1; n <= 3; n++ {
		if err := set.AddPeriod(n, LandConditionReport{}, nil); err != nil {
			t.Fatalf("Expected period %d to append, got %v", n, err)
		}
	}
	if set.Len() != 3 {
		t.Errorf("Expected 3 periods, got %d", set.Len())
	}

	records := set.Records()
	for i, rec := range records {
		if rec.Index != i+1 {
			t.Errorf("Expected index %d at position %d, got %d", i+1, i, rec.Index)
		}
	}
}

func TestAddPeriodErrors(t *testing.T) {
	var set PeriodReportSet[LandConditionReport]

	if err := set.AddPeriod(0, LandConditionReport{}, nil); !errors.Is(err, ErrInvalidPeriodIndex) {
		t.Errorf("Expected ErrInvalidPeriodIndex, got %v", err)
	}
	if err := set.AddPeriod(-2, LandConditionReport{}, nil); !errors.Is(err, ErrInvalidPeriodIndex) {
		t.Errorf("Expected ErrInvalidPeriodIndex, got %v", err)
	}

	// Periods must be appended in order: 3 before 2 fails
	if err := set.AddPeriod(1, LandConditionReport{}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := set.AddPeriod(3, LandConditionReport{}, nil); !errors.Is(err, ErrNonSequentialPeriod) {
		t.Errorf("Expected ErrNonSequentialPeriod, got %v", err)
	}

	// Adding period 1 twice fails
	if err := set.AddPeriod(1, LandConditionReport{}, nil); !errors.Is(err, ErrDuplicatePeriod) {
		t.Errorf("Expected ErrDuplicatePeriod, got %v", err)
	}
}

func TestSeal(t *testing.T) {
	var set PeriodReportSet[AffectedPopulationReport]

	if err := set.AddPeriod(1, AffectedPopulationReport{}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if set.Sealed() {
		t.Error("Expected set to start unsealed")
	}
	set.Seal()
	if !set.Sealed() {
		t.Error("Expected set to be sealed")
	}

	if err := set.AddPeriod(2, AffectedPopulationReport{}, nil); !errors.Is(err, ErrReportSealed) {
		t.Errorf("Expected ErrReportSealed, got %v", err)
	}

	// Sealing twice is a no-op
	set.Seal()
	if set.Len() != 1 {
		t.Errorf("Expected 1 period, got %d", set.Len())
	}
}

func TestRecordAndStatus(t *testing.T) {
	var set PeriodReportSet[LandConditionReport]

	status := LandConditionReport{}
	if err := set.AddPeriod(1, LandConditionReport{}, &status); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := set.AddPeriod(2, LandConditionReport{}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rec, ok := set.Record(1)
	if !ok || rec.Status == nil {
		t.Error("Expected period 1 with status report")
	}
	if !set.HasStatus(1) || set.HasStatus(2) {
		t.Error("HasStatus gave wrong answers")
	}

	if _, ok := set.Record(0); ok {
		t.Error("Expected no record for index 0")
	}
	if _, ok := set.Record(3); ok {
		t.Error("Expected no record for index 3")
	}
}

func TestRecordsIsACopy(t *testing.T) {
	var set PeriodReportSet[LandConditionReport]
	if err := set.AddPeriod(1, LandConditionReport{}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	records := set.Records()
	records[0].Index = 99

	rec, _ := set.Record(1)
	if rec.Index != 1 {
		t.Error("Expected internal records to be unaffected by mutation of the copy")
	}
}
