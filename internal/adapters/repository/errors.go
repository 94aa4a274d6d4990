package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrNotFound     = errors.New("no event loaded")
	ErrInvalidEvent = errors.New("invalid event code")
)
