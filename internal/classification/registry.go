package classification

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors
var (
	// ErrUnknownScheme is returned when no legend is registered for a dimension.
	ErrUnknownScheme = errors.New("no classification scheme registered for dimension")

	// ErrSchemeExists is returned when registering a dimension that already
	// has a legend.
	ErrSchemeExists = errors.New("classification scheme already registered for dimension")
)

// registry holds the process-wide dimension → legend mapping. It is populated
// from the built-in legends at init and treated as read-only afterwards; the
// lock only exists so tests that register custom schemes stay race-free.
var (
	registryMu sync.RWMutex
	registry   = map[Dimension]Legend{}
)

// Register adds a legend for a dimension. Intended for process start-up;
// fails with ErrSchemeExists rather than silently replacing a legend.
func Register(dim Dimension, legend Legend) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[dim]; ok {
		return fmt.Errorf("dimension %q: %w", dim, ErrSchemeExists)
	}
	registry[dim] = legend
	return nil
}

// Scheme returns the legend registered for the given dimension.
// Fails with ErrUnknownScheme if the dimension has no legend.
func Scheme(dim Dimension) (Legend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	legend, ok := registry[dim]
	if !ok {
		return Legend{}, fmt.Errorf("dimension %q: %w", dim, ErrUnknownScheme)
	}
	return legend, nil
}

// RegisteredDimensions returns the dimensions with a registered legend, in
// lexical order.
func RegisteredDimensions() []Dimension {
	registryMu.RLock()
	defer registryMu.RUnlock()
	dims := make([]Dimension, 0, len(registry))
	for d := range registry {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

func init() {
	for dim, legend := range builtinLegends() {
		if err := Register(dim, legend); err != nil {
			panic(err)
		}
	}
}
