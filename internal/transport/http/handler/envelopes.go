package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-otp-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper. Success mirrors the shape
// mobile clients already expect from the flows ({"success": true}).
type MessageEnvelope struct {
	Success   bool   `json:"success,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, ErrorCode: status})
}

func writeSuccess(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: msg})
}

// httpError maps domain sentinels to HTTP status codes.
func httpError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrDeadlineExceeded):
		status = http.StatusGone
	}
	writeError(w, status, err.Error())
}
