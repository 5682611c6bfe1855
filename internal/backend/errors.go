package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors for backend calls.
var (
	ErrUnreachable       = errors.New("backend unreachable")
	ErrMalformedResponse = errors.New("malformed backend response")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
