// Package model contains the canonical records shared by every layer of the engine.
package model

import "strings"

// EventStatus is the lifecycle bucket of an event.
type EventStatus string

const (
	StatusLive     EventStatus = "live"
	StatusUpcoming EventStatus = "upcoming"
	StatusPast     EventStatus = "past"
)

// Event is a single competition instance, keyed by Code.
type Event struct {
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Status    EventStatus `json:"status"`
	DateStart string      `json:"dateStart,omitempty"`
	DateEnd   string      `json:"dateEnd,omitempty"`
	Type      string      `json:"type,omitempty"`
	City      string      `json:"city,omitempty"`
	StateProv string      `json:"stateprov,omitempty"`
	Country   string      `json:"country,omitempty"`
}

// DisplayName returns the event name, falling back to its code.
func (e Event) DisplayName() string {
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return e.Code
}

// StartDate returns the calendar date (YYYY-MM-DD) part of DateStart.
func (e Event) StartDate() string {
	return datePart(e.DateStart)
}

// EndDate returns the calendar date part of DateEnd, or the start date when no end is reported.
func (e Event) EndDate() string {
	if e.DateEnd == "" {
		return e.StartDate()
	}
	return datePart(e.DateEnd)
}

func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
