package transition

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMeaningStringCode(t *testing.T) {
	cases := []struct {
		meaning Meaning
		str     string
		code    int
	}{
		{MeaningDegraded, "degradation", -1},
		{MeaningStable, "stable", 0},
		{MeaningImproved, "improvement", 1},
		{MeaningNoData, "no data", -32768},
	}
	for _, tc := range cases {
		if tc.meaning.String() != tc.str {
			t.Errorf("Expected %q, got %q", tc.str, tc.meaning.String())
		}
		if tc.meaning.Code() != tc.code {
			t.Errorf("Expected code %d, got %d", tc.code, tc.meaning.Code())
		}
		if !tc.meaning.IsValid() {
			t.Errorf("Expected %s to be valid", tc.str)
		}
	}

	if Meaning(5).IsValid() {
		t.Error("Expected 5 to be invalid")
	}
}

func TestParseMeaning(t *testing.T) {
	m, err := ParseMeaning("degradation")
	if err != nil || m != MeaningDegraded {
		t.Errorf("Expected degradation, got %s (err %v)", m, err)
	}

	_, err = ParseMeaning("better")
	if !errors.Is(err, ErrUnknownMeaning) {
		t.Errorf("Expected ErrUnknownMeaning, got %v", err)
	}
}

func TestMeaningJSONRoundTrip(t *testing.T) {
	for _, m := range []Meaning{MeaningDegraded, MeaningStable, MeaningImproved, MeaningNoData} {
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		var back Meaning
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if back != m {
			t.Errorf("Expected %s after round trip, got %s", m, back)
		}
	}

	var m Meaning
	if err := json.Unmarshal([]byte(`"nonsense"`), &m); !errors.Is(err, ErrUnknownMeaning) {
		t.Errorf("Expected ErrUnknownMeaning, got %v", err)
	}

	if _, err := json.Marshal(Meaning(3)); err == nil {
		t.Error("Expected marshal of invalid meaning to fail")
	}
}
