package service

import "errors"

// Sentinel kinds for engine errors. Only write paths return them.
var (
	ErrNoEvent      = errors.New("no active event")
	ErrInvalidTeam  = errors.New("invalid team number")
	ErrInvalidEvent = errors.New("invalid event code")
)
