package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeValidation    = "ValidationError"
	ErrCodeUnauthorized  = "AuthenticationError"
	ErrCodeForbidden     = "AuthorizationError"
	ErrCodeNotFound      = "NotFoundError"
	ErrCodeRateLimited   = "RateLimitError"
	ErrCodeInternalError = "PersistenceError"
)

// APIResponse is the envelope for every API response. Success responses carry Data and/or
// Message; failures carry Error, Code and optionally Details.
// swagger:model APIResponse
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// WriteJSONSuccess writes statusCode and a success envelope holding data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONMessage writes statusCode and a success envelope with a human-readable message.
// data may be nil.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Message: message, Data: data})
}

// WriteJSONError writes statusCode and a failure envelope with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: message, Code: code})
}

// WriteJSONErrorDetails is WriteJSONError with a list of per-field problems.
func WriteJSONErrorDetails(w http.ResponseWriter, statusCode int, code, message string, details []string) {
	writeJSON(w, statusCode, APIResponse{Error: message, Code: code, Details: details})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
