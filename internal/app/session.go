package service

import "github.com/wikiscout/scoutcore/internal/domain/model"

// Session is the explicit engine state shared by every view. Copies are handed out; the
// Service keeps its own.
type Session struct {
	TeamNumber  int           `json:"teamNumber"`
	UserName    string        `json:"userName"`
	Demo        bool          `json:"demo"`
	EventCode   string        `json:"eventCode"`
	EventName   string        `json:"eventName"`
	LoadID      string        `json:"loadId,omitempty"`
	Source      model.Source  `json:"source,omitempty"`
	TodayEvents []model.Event `json:"todayEvents"`
}

// HasEvent reports whether an event is active.
func (s Session) HasEvent() bool {
	return s.EventCode != ""
}

func (s Session) clone() Session {
	events := make([]model.Event, len(s.TodayEvents))
	copy(events, s.TodayEvents)
	s.TodayEvents = events
	return s
}
