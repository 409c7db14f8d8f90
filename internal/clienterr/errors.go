package clienterr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks locally rejected input; no network call was made.
	ErrValidation = errors.New("validation error")

	// ErrNoToken marks authenticated-only operations attempted without a
	// persisted token.
	ErrNoToken = errors.New("no token present")
)

// Validation wraps ErrValidation with a caller-facing message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NetworkError is a transport-level failure: no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response from the dispatch API. Message carries
// whatever detail the server provided.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// IsAuthExpired reports whether err is a 401 response. During logout this is
// the benign "already expired" case.
func IsAuthExpired(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status == http.StatusUnauthorized
	}
	return false
}
