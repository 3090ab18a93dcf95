package transition

import (
	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

// TransitionCode returns the integer code used to represent a transition in a
// single raster band: the 1-based initial class index multiplied by the
// legend multiplier, plus the final class index. With a multiplier of 10 the
// transition from the 3rd to the 5th class codes as 35.
func TransitionCode(legend classification.Legend, initial, final int) (int, error) {
	i, err := legend.ClassIndex(initial)
	if err != nil {
		return 0, err
	}
	f, err := legend.ClassIndex(final)
	if err != nil {
		return 0, err
	}
	return i*legend.Multiplier() + f, nil
}

// RemapPairs returns the matrix as two parallel slices of transition codes
// and meaning codes, the remap-table form consumed by raster calculators.
// Ordered final-major to match the historical table layout.
func (m *Matrix) RemapPairs() (codes, meanings []int) {
	legend := m.legend
	for _, final := range legend.Key {
		for _, initial := range legend.Key {
			code, err := TransitionCode(legend, initial.Code, final.Code)
			if err != nil {
				continue // unreachable: Key members always have an index
			}
			meaning, err := m.Recode(Transition{Initial: initial.Code, Final: final.Code})
			if err != nil {
				continue
			}
			codes = append(codes, code)
			meanings = append(meanings, meaning.Code())
		}
	}
	return codes, meanings
}

// PersistenceRemap returns a remap table that renumbers persistence
// transitions (same class initial and final) to the bare class index, leaving
// all other transition codes unchanged. Sequential persistence codes make
// color ramps easier to assign.
func PersistenceRemap(legend classification.Legend) (from, to []int) {
	for _, initial := range legend.Key {
		for _, final := range legend.Key {
			code, err := TransitionCode(legend, initial.Code, final.Code)
			if err != nil {
				continue
			}
			from = append(from, code)
			if initial.Code == final.Code {
				idx, _ := legend.ClassIndex(initial.Code)
				to = append(to, idx)
			} else {
				to = append(to, code)
			}
		}
	}
	return from, to
}

// TransitionsByCode returns a lookup from transition code to the class code
// pair it encodes, over all non-no-data transitions of the legend.
func TransitionsByCode(legend classification.Legend) map[int]Transition {
	out := make(map[int]Transition, len(legend.Key)*len(legend.Key))
	for _, initial := range legend.Key {
		for _, final := range legend.Key {
			code, err := TransitionCode(legend, initial.Code, final.Code)
			if err != nil {
				continue
			}
			out[code] = Transition{Initial: initial.Code, Final: final.Code}
		}
	}
	return out
}
