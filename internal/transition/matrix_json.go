package transition

import (
	"encoding/json"

	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

// matrixDoc is the wire shape of a Matrix.
type matrixDoc struct {
	Name        string                `json:"name"`
	Legend      classification.Legend `json:"legend"`
	Transitions []Entry               `json:"transitions"`
	NoData      Meaning               `json:"nodata_meaning"`
}

// MarshalJSON encodes the matrix as its legend plus the ordered transition
// list.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixDoc{
		Name:        m.name,
		Legend:      m.legend,
		Transitions: m.Entries(),
		NoData:      m.nodata,
	})
}

// UnmarshalJSON decodes and re-validates a matrix, so a Matrix obtained from
// the wire carries the same totality guarantee as one built directly.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var doc matrixDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	legend, err := classification.NewLegend(doc.Legend.Name, doc.Legend.Key, doc.Legend.NoData)
	if err != nil {
		return err
	}
	validated, err := Validate(legend, doc.Name, doc.Transitions, doc.NoData)
	if err != nil {
		return err
	}
	*m = *validated
	return nil
}
