package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/openfab/printctl/internal/core/domain"
)

// StatusError is a non-2xx response with whatever human-readable message
// the server supplied: the `error.message` of the structured envelope, or
// the plain-text body the auth endpoints use.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Is lets callers match the common auth failures with errors.Is without
// inspecting status codes.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthenticated:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case domain.ErrRequestNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// errorEnvelope is the server's structured rejection shape.
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// newStatusError extracts the message from a failed response body. Bodies
// are either the JSON error envelope or plain text; both are tolerated.
func newStatusError(status int, body []byte) *StatusError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		msg := env.Error.Message
		if env.Error.Details != "" {
			msg += ": " + env.Error.Details
		}
		return &StatusError{StatusCode: status, Code: env.Error.Code, Message: msg}
	}
	return &StatusError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
