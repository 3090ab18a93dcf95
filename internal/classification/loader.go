package classification

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// legendFile is the on-disk shape of a legend definition. Kept separate from
// Legend so file loading always passes through NewLegend validation.
type legendFile struct {
	Name   string  `yaml:"name"`
	Key    []Class `yaml:"key"`
	NoData *Class  `yaml:"nodata,omitempty"`
}

// LoadLegend reads a legend definition from a YAML file and validates it.
func LoadLegend(path string) (Legend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Legend{}, fmt.Errorf("read %s: %w", path, err)
	}
	var f legendFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Legend{}, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	legend, err := NewLegend(f.Name, f.Key, f.NoData)
	if err != nil {
		return Legend{}, fmt.Errorf("legend file %s: %w", path, err)
	}
	return legend, nil
}

// SaveLegend writes a legend definition to a YAML file.
func SaveLegend(path string, legend Legend) error {
	f := legendFile{Name: legend.Name, Key: legend.Key, NoData: legend.NoData}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal legend %q: %w", legend.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
