package transition

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownMeaning is returned when parsing a string that is not a member of
// the recode meaning enumeration.
var ErrUnknownMeaning = errors.New("unknown transition meaning")

// Meaning is the closed output alphabet a transition is recoded onto. The
// integer values of the degraded/stable/improved members are the codes used
// in Trends.Earth degradation rasters; no-data uses the shared raster
// no-data sentinel.
type Meaning int

// Recode meaning constants.
const (
	MeaningDegraded Meaning = -1
	MeaningStable   Meaning = 0
	MeaningImproved Meaning = 1
	MeaningNoData   Meaning = -32768
)

// meaningNames maps each meaning to its wire form. The strings match the
// values accepted by the original marshmallow schemas.
var meaningNames = map[Meaning]string{
	MeaningDegraded: "degradation",
	MeaningStable:   "stable",
	MeaningImproved: "improvement",
	MeaningNoData:   "no data",
}

// IsValid reports whether m is a member of the closed enumeration.
func (m Meaning) IsValid() bool {
	_, ok := meaningNames[m]
	return ok
}

// String returns the wire form of the meaning.
func (m Meaning) String() string {
	if s, ok := meaningNames[m]; ok {
		return s
	}
	return fmt.Sprintf("meaning(%d)", int(m))
}

// Code returns the integer raster code for the meaning.
func (m Meaning) Code() int {
	return int(m)
}

// ParseMeaning converts a wire string into a Meaning.
// Fails with ErrUnknownMeaning for strings outside the enumeration.
func ParseMeaning(s string) (Meaning, error) {
	for m, name := range meaningNames {
		if name == s {
			return m, nil
		}
	}
	return MeaningNoData, fmt.Errorf("%q: %w", s, ErrUnknownMeaning)
}

// MarshalJSON encodes the meaning in its wire form.
func (m Meaning) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMeaning)
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a meaning from its wire form.
func (m *Meaning) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMeaning(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
