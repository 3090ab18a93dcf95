package transition

import (
	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

// Precedence is the order in which recode meanings win when per-dimension
// results are combined into one aggregate indicator. Earlier entries beat
// later ones.
type Precedence []Meaning

// DefaultPrecedence implements the SDG 15.3.1 one-out-all-out convention: a
// single degraded dimension forces the aggregate to degraded; otherwise any
// improvement wins over stability, and no-data is the fallback.
//
// The exact order past "degraded first" is not pinned down by the UNCCD
// methodology, which is why Aggregate takes the precedence as an argument.
var DefaultPrecedence = Precedence{
	MeaningDegraded,
	MeaningImproved,
	MeaningStable,
	MeaningNoData,
}

// Aggregate combines per-dimension recode meanings into one aggregate
// indicator. A dimension listed in required but absent from values counts as
// no-data. The first meaning in precedence order that is present among the
// effective values wins; if none matches (or there are no values at all) the
// result is no-data.
//
// The decision scans the full value set for every precedence rank, so the
// result never depends on map iteration order.
func Aggregate(
	values map[classification.Dimension]Meaning,
	required []classification.Dimension,
	precedence Precedence,
) Meaning {
	if len(precedence) == 0 {
		precedence = DefaultPrecedence
	}

	present := make(map[Meaning]bool, len(values)+1)
	for _, m := range values {
		present[m] = true
	}
	for _, dim := range required {
		if _, ok := values[dim]; !ok {
			present[MeaningNoData] = true
		}
	}

	for _, m := range precedence {
		if present[m] {
			return m
		}
	}
	return MeaningNoData
}
