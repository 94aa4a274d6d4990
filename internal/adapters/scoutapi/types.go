package scoutapi

import "github.com/wikiscout/scoutcore/internal/domain/model"

// Identity is the result of token validation.
type Identity struct {
	TeamNumber int    `json:"team_number"`
	Name       string `json:"name"`
}

// EventRef is a short event reference.
type EventRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Me is the caller's own event, if the backend knows one.
type Me struct {
	Found bool     `json:"found"`
	Event EventRef `json:"event"`
}

// EventList is the shape of every event listing response.
type EventList struct {
	Events []model.Event `json:"events"`
}

// SearchParams narrows an event search. Zero values are omitted.
type SearchParams struct {
	Season int
	Team   int
	Query  string
}

// scoutingRequest is the body of a scouting submission. Data is positional.
type scoutingRequest struct {
	Team  int    `json:"team"`
	Event string `json:"event"`
	Data  []any  `json:"data"`
}
