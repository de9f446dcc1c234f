package gateways

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoBaseURL is returned when a gateway is constructed without a base URL.
var ErrNoBaseURL = errors.New("scanner API base URL is not configured")

// APIError is returned when the scanner API answers with a non-2xx status.
// Message carries the best available diagnostic: the "message" field of a
// JSON error body when present, otherwise the raw body text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("scanner API error (HTTP %d)", e.Status)
	}
	return fmt.Sprintf("scanner API error (HTTP %d): %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}

// IsConnectionError reports whether err was a transport-level failure rather
// than an HTTP response from the scanner. Connection failures get a
// friendlier top-level message naming the configured base URL.
func IsConnectionError(err error) bool {
	var uerr *url.Error
	return errors.As(err, &uerr)
}
