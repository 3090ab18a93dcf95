package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance, safe for concurrent use.
var validate = validator.New()

// DecodeJSON decodes the JSON request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request value. Types that implement
// Validate() error check themselves; anything else is run through the
// struct-tag validator.
func ValidateRequest(v interface{}) error {
	if v, ok := v.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return validate.Struct(v)
}
