package reporting

import (
	"errors"
	"fmt"
)

// Period set errors
var (
	// ErrInvalidPeriodIndex is returned when a period index is not positive.
	ErrInvalidPeriodIndex = errors.New("period index must be a positive integer")

	// ErrDuplicatePeriod is returned when adding a period index that already
	// exists.
	ErrDuplicatePeriod = errors.New("period already present")

	// ErrNonSequentialPeriod is returned when a period is added out of order;
	// periods form a dense sequence appended one at a time.
	ErrNonSequentialPeriod = errors.New("period index must extend the sequence by one")

	// ErrReportSealed is returned when adding a period to a sealed set.
	ErrReportSealed = errors.New("period report set is sealed")

	// ErrUnsupportedPeriodCount is returned when projecting a summary with
	// more than two periods onto the legacy fixed structure.
	ErrUnsupportedPeriodCount = errors.New("legacy format supports at most two periods")
)

// PeriodRecord is one reporting period: a 1-based index, the period
// assessment, and an optional status report.
type PeriodRecord[T any] struct {
	Index      int
	Assessment T
	Status     *T
}

// PeriodReportSet is an ordered, dense sequence of reporting periods. It is
// append-only while building and immutable after Seal. The zero value is an
// empty set ready to build.
//
// Concurrent writers while building are a caller error; sealed sets are safe
// for concurrent reads.
type PeriodReportSet[T any] struct {
	records []PeriodRecord[T]
	sealed  bool
}

// AddPeriod appends period n with its assessment and optional status report.
// n must be exactly one past the current maximum index.
func (s *PeriodReportSet[T]) AddPeriod(n int, assessment T, status *T) error {
	if s.sealed {
		return fmt.Errorf("period %d: %w", n, ErrReportSealed)
	}
	if n < 1 {
		return fmt.Errorf("period %d: %w", n, ErrInvalidPeriodIndex)
	}
	if n <= len(s.records) {
		return fmt.Errorf("period %d: %w", n, ErrDuplicatePeriod)
	}
	if n != len(s.records)+1 {
		return fmt.Errorf("period %d after %d: %w", n, len(s.records), ErrNonSequentialPeriod)
	}
	s.records = append(s.records, PeriodRecord[T]{Index: n, Assessment: assessment, Status: status})
	return nil
}

// Seal transitions the set to its immutable terminal state. Sealing twice is
// a no-op.
func (s *PeriodReportSet[T]) Seal() {
	s.sealed = true
}

// Sealed reports whether the set has been sealed.
func (s *PeriodReportSet[T]) Sealed() bool {
	return s.sealed
}

// Len returns the number of periods.
func (s *PeriodReportSet[T]) Len() int {
	return len(s.records)
}

// Records returns the periods in insertion order. The returned slice is a
// copy; record payloads are shared.
func (s *PeriodReportSet[T]) Records() []PeriodRecord[T] {
	out := make([]PeriodRecord[T], len(s.records))
	copy(out, s.records)
	return out
}

// Record returns period n, reporting whether it exists.
func (s *PeriodReportSet[T]) Record(n int) (PeriodRecord[T], bool) {
	if n < 1 || n > len(s.records) {
		return PeriodRecord[T]{}, false
	}
	return s.records[n-1], true
}

// HasStatus reports whether period n exists and carries a status report.
func (s *PeriodReportSet[T]) HasStatus(n int) bool {
	rec, ok := s.Record(n)
	return ok && rec.Status != nil
}
