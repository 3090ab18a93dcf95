package api

import (
	"errors"
	"net/http"

	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
	"github.com/ConservationInternational/trends.earth-schemas/internal/codec"
	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
	"github.com/ConservationInternational/trends.earth-schemas/internal/transition"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var (
		missingField  *codec.MissingFieldError
		typeMismatch  *codec.TypeMismatchError
		unsupported   *codec.UnsupportedVersionError
		incomplete    *transition.IncompleteMatrixError
		unmapped      *transition.UnmappedTransitionError
		invalidRecode *transition.InvalidRecodeValueError
	)

	switch {
	// Not found errors
	case errors.Is(err, classification.ErrUnknownScheme),
		errors.Is(err, classification.ErrClassNotFound):
		return http.StatusNotFound

	// Malformed document errors
	case errors.As(err, &missingField),
		errors.As(err, &typeMismatch),
		errors.Is(err, codec.ErrInvalidPeriodKey),
		errors.Is(err, codec.ErrUnknownTarget):
		return http.StatusBadRequest

	// Documents that parse but violate a contract invariant
	case errors.As(err, &unsupported),
		errors.As(err, &incomplete),
		errors.As(err, &unmapped),
		errors.As(err, &invalidRecode),
		errors.Is(err, reporting.ErrPeriodSetMismatch),
		errors.Is(err, reporting.ErrUnsupportedPeriodCount),
		errors.Is(err, reporting.ErrInvalidPeriodIndex):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		missingField *codec.MissingFieldError
		typeMismatch *codec.TypeMismatchError
		unsupported  *codec.UnsupportedVersionError
		incomplete   *transition.IncompleteMatrixError
	)

	switch {
	case errors.Is(err, classification.ErrUnknownScheme):
		return "Unknown classification dimension"

	case errors.As(err, &missingField),
		errors.As(err, &typeMismatch),
		errors.As(err, &unsupported),
		errors.As(err, &incomplete),
		errors.Is(err, codec.ErrInvalidPeriodKey),
		errors.Is(err, codec.ErrUnknownTarget),
		errors.Is(err, reporting.ErrPeriodSetMismatch),
		errors.Is(err, reporting.ErrUnsupportedPeriodCount),
		errors.Is(err, reporting.ErrInvalidPeriodIndex):
		// Document-shape errors carry a located path and no internal
		// details, so the full message is safe to return.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
