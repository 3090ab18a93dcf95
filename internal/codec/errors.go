package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriodKey is returned when a period map contains a key that does
// not follow the Report_<n>[_status] convention.
var ErrInvalidPeriodKey = errors.New("invalid period report key")

// MissingFieldError reports a required field absent from a document, located
// by its dotted path.
type MissingFieldError struct {
	Path string
}

// Error implements the error interface for MissingFieldError.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path)
}

// TypeMismatchError reports a document field of the wrong type, located by
// its dotted path.
type TypeMismatchError struct {
	Path string
	Want string
	Got  string
}

// Error implements the error interface for TypeMismatchError.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Path, e.Want, e.Got)
}

// UnsupportedVersionError reports a document version with no registered
// decoding path.
type UnsupportedVersionError struct {
	Version string
}

// Error implements the error interface for UnsupportedVersionError.
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("no decoder registered for document version %q", e.Version)
}
