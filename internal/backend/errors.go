package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport-level failures: no HTTP response was
// received at all. Distinct from any status-coded rejection.
var ErrUnreachable = errors.New("backend unreachable")

// APIError is a non-2xx answer from the backend, carrying whatever
// message field the response body had.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether the backend rejected the credential.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsServerError reports a 5xx answer.
func IsServerError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode >= 500
}

// IsConnectivity reports that no response was received.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrUnreachable)
}
