package transition

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

// Matrix validation errors
var (
	// ErrUnknownCode is returned when a matrix entry references a code that
	// is not in the legend.
	ErrUnknownCode = errors.New("matrix entry references code not in legend")

	// ErrNoDataTransition is returned when a matrix entry defines a meaning
	// for a transition from or to the no-data class.
	ErrNoDataTransition = errors.New("transition meanings are not allowed for the no-data class")

	// ErrDuplicateTransition is returned when a transition is defined more
	// than once.
	ErrDuplicateTransition = errors.New("transition defined more than once")
)

// Transition is a single (initial, final) class code pair for one dimension
// at one spatial or temporal unit.
type Transition struct {
	Initial int `json:"initial"`
	Final   int `json:"final"`
}

// Entry assigns a meaning to one transition. The raw form a matrix is built
// from; validated entries live inside a Matrix.
type Entry struct {
	Initial int     `json:"initial"`
	Final   int     `json:"final"`
	Meaning Meaning `json:"meaning"`
}

// IncompleteMatrixError reports the transitions a matrix fails to define. A
// matrix must be total over the non-no-data classes of its legend.
type IncompleteMatrixError struct {
	Legend  string
	Missing []Transition
}

// Error implements the error interface for IncompleteMatrixError.
func (e *IncompleteMatrixError) Error() string {
	pairs := make([]string, 0, len(e.Missing))
	for _, tr := range e.Missing {
		pairs = append(pairs, fmt.Sprintf("%d→%d", tr.Initial, tr.Final))
	}
	return fmt.Sprintf("matrix for legend %q is missing %d transition(s): %s",
		e.Legend, len(e.Missing), strings.Join(pairs, ", "))
}

// InvalidRecodeValueError reports a matrix entry whose meaning is outside the
// closed recode enumeration.
type InvalidRecodeValueError struct {
	Transition Transition
	Value      Meaning
}

// Error implements the error interface for InvalidRecodeValueError.
func (e *InvalidRecodeValueError) Error() string {
	return fmt.Sprintf("transition %d→%d: recode value %d is not a valid meaning",
		e.Transition.Initial, e.Transition.Final, int(e.Value))
}

// UnmappedTransitionError reports a recode lookup for a transition the matrix
// does not define. Unreachable for matrices produced by Validate; it exists
// to catch hand-built matrices.
type UnmappedTransitionError struct {
	Legend     string
	Transition Transition
}

// Error implements the error interface for UnmappedTransitionError.
func (e *UnmappedTransitionError) Error() string {
	return fmt.Sprintf("matrix for legend %q does not map transition %d→%d",
		e.Legend, e.Transition.Initial, e.Transition.Final)
}

// Matrix maps every (initial, final) class pair of one legend onto a recode
// meaning. Immutable once returned by Validate.
type Matrix struct {
	name     string
	legend   classification.Legend
	meanings map[Transition]Meaning
	nodata   Meaning
}

// Validate builds a Matrix from raw entries, checking in order that every
// referenced code is a member of the legend, that no transition involves the
// no-data class, that no transition is defined twice, that every meaning is a
// member of the closed enumeration, and finally that the entries are total
// over the legend's non-no-data classes.
//
// nodata is the meaning returned for observations that touch the no-data
// class; it must itself be a valid meaning.
func Validate(
	legend classification.Legend,
	name string,
	entries []Entry,
	nodata Meaning,
) (*Matrix, error) {
	if !nodata.IsValid() {
		return nil, &InvalidRecodeValueError{Value: nodata}
	}

	meanings := make(map[Transition]Meaning, len(entries))
	for _, e := range entries {
		tr := Transition{Initial: e.Initial, Final: e.Final}
		for _, code := range []int{e.Initial, e.Final} {
			if !legend.Contains(code) {
				return nil, fmt.Errorf("legend %q: transition %d→%d: code %d: %w",
					legend.Name, e.Initial, e.Final, code, ErrUnknownCode)
			}
			if legend.IsNoData(code) {
				return nil, fmt.Errorf("legend %q: transition %d→%d: %w",
					legend.Name, e.Initial, e.Final, ErrNoDataTransition)
			}
		}
		if _, ok := meanings[tr]; ok {
			return nil, fmt.Errorf("legend %q: transition %d→%d: %w",
				legend.Name, e.Initial, e.Final, ErrDuplicateTransition)
		}
		if !e.Meaning.IsValid() {
			return nil, &InvalidRecodeValueError{Transition: tr, Value: e.Meaning}
		}
		meanings[tr] = e.Meaning
	}

	var missing []Transition
	for _, initial := range legend.Key {
		for _, final := range legend.Key {
			tr := Transition{Initial: initial.Code, Final: final.Code}
			if _, ok := meanings[tr]; !ok {
				missing = append(missing, tr)
			}
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteMatrixError{Legend: legend.Name, Missing: missing}
	}

	return &Matrix{name: name, legend: legend, meanings: meanings, nodata: nodata}, nil
}

// Name returns the matrix name.
func (m *Matrix) Name() string { return m.name }

// Legend returns the legend the matrix is defined over.
func (m *Matrix) Legend() classification.Legend { return m.legend }

// NoDataMeaning returns the meaning assigned to no-data observations.
func (m *Matrix) NoDataMeaning() Meaning { return m.nodata }

// Recode returns the meaning of one observed transition. Transitions from or
// to the no-data class recode to the matrix's no-data meaning; that is a
// normal outcome, not an error. Fails with UnmappedTransitionError only for
// matrices that did not come out of Validate.
func (m *Matrix) Recode(obs Transition) (Meaning, error) {
	if m.legend.IsNoData(obs.Initial) || m.legend.IsNoData(obs.Final) {
		return m.nodata, nil
	}
	meaning, ok := m.meanings[obs]
	if !ok {
		return MeaningNoData, &UnmappedTransitionError{Legend: m.legend.Name, Transition: obs}
	}
	return meaning, nil
}

// RecodeAll recodes a batch of observations. It stops at the first lookup
// failure; callers wanting cancellation should chunk their batches.
func (m *Matrix) RecodeAll(observations []Transition) ([]Meaning, error) {
	out := make([]Meaning, len(observations))
	for i, obs := range observations {
		meaning, err := m.Recode(obs)
		if err != nil {
			return nil, err
		}
		out[i] = meaning
	}
	return out, nil
}

// Entries returns the matrix contents as raw entries ordered by initial then
// final code. Validate(legend, name, m.Entries(), nodata) always succeeds for
// a matrix produced by Validate.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.meanings))
	for tr, meaning := range m.meanings {
		out = append(out, Entry{Initial: tr.Initial, Final: tr.Final, Meaning: meaning})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Initial != out[j].Initial {
			return out[i].Initial < out[j].Initial
		}
		return out[i].Final < out[j].Final
	})
	return out
}
