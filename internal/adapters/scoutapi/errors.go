package scoutapi

import (
	"errors"
	"fmt"
)

// Sentinel kinds for upstream errors.
var (
	ErrTransport   = errors.New("upstream transport failure")
	ErrStatus      = errors.New("upstream returned an error status")
	ErrDecode      = errors.New("upstream response could not be decoded")
	ErrWriteFailed = errors.New("upstream write failed")
	ErrInvalidURL  = errors.New("invalid upstream base url")
)

// StatusError is a non-2xx response.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream status %d", e.Op, e.Code)
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error {
	return ErrStatus
}
