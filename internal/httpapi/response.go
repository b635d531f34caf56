package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Error codes.
const (
	CodeValidation      = "validation_error"
	CodeSaveFailed      = "save_failed"
	CodeStoreDown       = "store_unavailable"
	CodeInProgress      = "submission_in_progress"
	CodeSessionNotFound = "session_not_found"
	CodeFieldNotFound   = "field_not_found"
	CodeInvalidBody     = "invalid_body"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, detail *ErrorDetail, meta map[string]any) {
	writeJSON(w, status, Envelope{Error: detail, Meta: meta})
}

// decodeJSON reads a single JSON document of at most limit bytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	if dec.More() {
		return ErrInvalidBody
	}
	return nil
}
