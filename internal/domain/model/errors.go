package model

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned when no preference store is configured.
var ErrStoreUnavailable = errors.New("preference store unavailable")

// HTTPStatusError reports a non-success response from the repository API.
// Message is the upstream JSON "message" field, empty when the body did not
// carry one.
type HTTPStatusError struct {
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}
