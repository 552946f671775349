package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeJSON decodes the request body into dest, rejecting unknown fields, trailing data and
// empty bodies.
func DecodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid request body: unexpected data after JSON object")
	}
	return nil
}

// DecodeAndValidate decodes the request body into dest and, if dest implements Validator,
// runs Validate(). On failure it writes a 400 JSON error and returns false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := DecodeJSON(r, dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONErrorDetails(w, http.StatusBadRequest, ErrCodeValidation, "validation failed", errs)
			return false
		}
	}
	return true
}
