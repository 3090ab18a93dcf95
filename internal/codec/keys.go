package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
)

const (
	periodKeyPrefix = "Report_"
	statusKeySuffix = "_status"
)

// PeriodKey generates the wire key for period n: "Report_<n>" for the period
// assessment, "Report_<n>_status" for its status report. n must be positive.
func PeriodKey(n int, status bool) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("period %d: %w", n, reporting.ErrInvalidPeriodIndex)
	}
	key := periodKeyPrefix + strconv.Itoa(n)
	if status {
		key += statusKeySuffix
	}
	return key, nil
}

// ParsePeriodKey inverts PeriodKey, returning the period index and whether
// the key names a status report. Fails with ErrInvalidPeriodKey for anything
// outside the convention.
func ParsePeriodKey(key string) (n int, status bool, err error) {
	rest, ok := strings.CutPrefix(key, periodKeyPrefix)
	if !ok {
		return 0, false, fmt.Errorf("%q: %w", key, ErrInvalidPeriodKey)
	}
	if trimmed, found := strings.CutSuffix(rest, statusKeySuffix); found {
		status = true
		rest = trimmed
	}
	n, convErr := strconv.Atoi(rest)
	if convErr != nil || n < 1 || strconv.Itoa(n) != rest {
		return 0, false, fmt.Errorf("%q: %w", key, ErrInvalidPeriodKey)
	}
	return n, status, nil
}
