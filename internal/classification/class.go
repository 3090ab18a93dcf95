package classification

import (
	"errors"
	"fmt"
	"regexp"
)

// Class-level validation errors
var (
	// ErrNameShortTooLong is returned when a class short name exceeds 20 characters.
	ErrNameShortTooLong = errors.New("class short name cannot exceed 20 characters")

	// ErrNameLongTooLong is returned when a class long name exceeds 120 characters.
	ErrNameLongTooLong = errors.New("class long name cannot exceed 120 characters")

	// ErrInvalidColor is returned when a class color is not a hex color string.
	ErrInvalidColor = errors.New("class color must be a hex color (#rgb or #rrggbb)")
)

const (
	maxNameShortLen = 20
	maxNameLongLen  = 120
)

var colorPattern = regexp.MustCompile(`^#([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`)

// Class is a single category within a classification legend, identified by
// its integer code. Codes are the values that appear in classified rasters;
// names and color exist only for presentation.
type Class struct {
	Code        int    `json:"code"                  yaml:"code"`
	NameShort   string `json:"name_short,omitempty"  yaml:"name_short,omitempty"`
	NameLong    string `json:"name_long,omitempty"   yaml:"name_long,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string `json:"color,omitempty"       yaml:"color,omitempty"`
}

// Validate checks the class field constraints.
// Returns an error if any field fails validation.
func (c Class) Validate() error {
	if len(c.NameShort) > maxNameShortLen {
		return fmt.Errorf("class %d: %w", c.Code, ErrNameShortTooLong)
	}
	if len(c.NameLong) > maxNameLongLen {
		return fmt.Errorf("class %d: %w", c.Code, ErrNameLongTooLong)
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("class %d: %w", c.Code, ErrInvalidColor)
	}
	return nil
}

// Name returns the short name, falling back to the long name when no short
// name is set.
func (c Class) Name() string {
	if c.NameShort != "" {
		return c.NameShort
	}
	return c.NameLong
}

// NameTruncated returns the short name, falling back to the long name
// truncated to the short-name length limit.
func (c Class) NameTruncated() string {
	if c.NameShort != "" {
		return c.NameShort
	}
	if len(c.NameLong) > maxNameShortLen {
		return c.NameLong[:maxNameShortLen]
	}
	return c.NameLong
}

// Label returns the long name, falling back to the short name when no long
// name is set.
func (c Class) Label() string {
	if c.NameLong != "" {
		return c.NameLong
	}
	return c.NameShort
}
