package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failure reported through the response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Code)
}

// SessionExpired reports whether the failure means the bearer token is no
// longer accepted.
func (e *APIError) SessionExpired() bool {
	return e.Code == http.StatusUnauthorized
}

// IsNotFound reports whether err is an envelope not-found failure.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// IsConflict reports whether err is an envelope conflict failure, e.g. a
// duplicate rating.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict
}
