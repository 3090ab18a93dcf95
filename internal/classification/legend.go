package classification

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Legend-level validation errors
var (
	// ErrEmptyLegendName is returned when a legend has no name.
	ErrEmptyLegendName = errors.New("legend name cannot be empty")

	// ErrEmptyLegendKey is returned when a legend has no classes.
	ErrEmptyLegendKey = errors.New("legend key cannot be empty")

	// ErrDuplicateClassCode is returned when two classes in a legend share a code.
	ErrDuplicateClassCode = errors.New("duplicate class code in legend")

	// ErrNoDataInKey is returned when the no-data class also appears as a
	// regular class in the legend key.
	ErrNoDataInKey = errors.New("no-data code cannot appear in legend key")

	// ErrClassNotFound is returned when a code has no class in the legend.
	ErrClassNotFound = errors.New("no class found for code")
)

// Legend is an ordered set of classes for one classification dimension. The
// key is kept sorted by class code; the no-data class is held separately so
// it never shows up in "real" category listings.
//
// A Legend is immutable after NewLegend returns.
type Legend struct {
	Name   string  `json:"name"             yaml:"name"`
	Key    []Class `json:"key"              yaml:"key"`
	NoData *Class  `json:"nodata,omitempty" yaml:"nodata,omitempty"`
}

// NewLegend builds a legend from the given classes, validating each class,
// checking code uniqueness, and sorting the key by code. The nodata class may
// be nil for legends that have no reserved no-data code.
func NewLegend(name string, key []Class, nodata *Class) (Legend, error) {
	if name == "" {
		return Legend{}, ErrEmptyLegendName
	}
	if len(key) == 0 {
		return Legend{}, fmt.Errorf("legend %q: %w", name, ErrEmptyLegendKey)
	}

	seen := make(map[int]bool, len(key))
	sorted := make([]Class, len(key))
	copy(sorted, key)
	for _, c := range sorted {
		if err := c.Validate(); err != nil {
			return Legend{}, fmt.Errorf("legend %q: %w", name, err)
		}
		if seen[c.Code] {
			return Legend{}, fmt.Errorf("legend %q: code %d: %w", name, c.Code, ErrDuplicateClassCode)
		}
		seen[c.Code] = true
	}
	if nodata != nil {
		if err := nodata.Validate(); err != nil {
			return Legend{}, fmt.Errorf("legend %q nodata: %w", name, err)
		}
		if seen[nodata.Code] {
			return Legend{}, fmt.Errorf("legend %q: code %d: %w", name, nodata.Code, ErrNoDataInKey)
		}
		nd := *nodata
		nodata = &nd
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	return Legend{Name: name, Key: sorted, NoData: nodata}, nil
}

// KeyWithNoData returns the legend key with the no-data class appended, when
// one is defined.
func (l Legend) KeyWithNoData() []Class {
	if l.NoData == nil {
		return l.Key
	}
	out := make([]Class, 0, len(l.Key)+1)
	out = append(out, l.Key...)
	return append(out, *l.NoData)
}

// Codes returns all class codes, including the no-data code when defined.
func (l Legend) Codes() []int {
	classes := l.KeyWithNoData()
	codes := make([]int, len(classes))
	for i, c := range classes {
		codes[i] = c.Code
	}
	return codes
}

// ClassByCode returns the class with the given code, searching the key and
// the no-data class. Fails with ErrClassNotFound for unknown codes.
func (l Legend) ClassByCode(code int) (Class, error) {
	for _, c := range l.Key {
		if c.Code == code {
			return c, nil
		}
	}
	if l.NoData != nil && l.NoData.Code == code {
		return *l.NoData, nil
	}
	return Class{}, fmt.Errorf("legend %q: code %d: %w", l.Name, code, ErrClassNotFound)
}

// Contains reports whether the given code belongs to the legend key or is the
// no-data code.
func (l Legend) Contains(code int) bool {
	_, err := l.ClassByCode(code)
	return err == nil
}

// IsNoData reports whether code is the legend's reserved no-data code.
func (l Legend) IsNoData(code int) bool {
	return l.NoData != nil && l.NoData.Code == code
}

// ClassIndex returns the 1-based position of the class with the given code in
// the code-ordered key. Fails with ErrClassNotFound if the code is not a
// regular class (the no-data class has no index).
func (l Legend) ClassIndex(code int) (int, error) {
	for i, c := range l.Key {
		if c.Code == code {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("legend %q: code %d: %w", l.Name, code, ErrClassNotFound)
}

// Multiplier returns the power of ten used to combine an initial class index
// with a final class index into a single transition code, such that the
// result reads as the two indexes concatenated. Legends are limited to well
// under 100 classes, so the multiplier never exceeds 100.
func (l Legend) Multiplier() int {
	return int(math.Pow(10, math.Ceil(math.Log10(float64(len(l.Key))))))
}
