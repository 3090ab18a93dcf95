package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownTarget is returned when a conversion target name is not one of
// the supported output forms.
var ErrUnknownTarget = errors.New("unknown conversion target")

// ConvertTarget selects the output form of a document conversion.
type ConvertTarget string

const (
	// TargetCurrent re-encodes the document in the current period-keyed
	// format.
	TargetCurrent ConvertTarget = "current"

	// TargetLegacy renders the fixed two-period baseline/reporting view.
	TargetLegacy ConvertTarget = "legacy"
)

// IsValid reports whether t is a supported conversion target.
func (t ConvertTarget) IsValid() bool {
	return t == TargetCurrent || t == TargetLegacy
}

// ParseTarget maps a user-supplied target name to a ConvertTarget. The
// empty string selects the current format.
func ParseTarget(s string) (ConvertTarget, error) {
	if s == "" {
		return TargetCurrent, nil
	}
	t := ConvertTarget(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownTarget)
	}
	return t, nil
}
