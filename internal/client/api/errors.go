package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the server could not be reached or answered with
	// a gateway-level failure. Callers may fall back to cached data.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the request was rejected for missing or invalid
	// credentials, after the one allowed renewal attempt.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx application response. Status and Body are preserved
// verbatim so the calling form or page can render the server's message.
type Error struct {
	Status int
	Body   []byte
}

func (e *Error) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("api: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %s: %s", http.StatusText(e.Status), e.Body)
}

// Is maps HTTP status classes onto the package sentinels so callers can use
// errors.Is without inspecting status codes themselves.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}
