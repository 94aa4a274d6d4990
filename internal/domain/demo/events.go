package demo

import (
	"time"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// DevEventCode is the code of the synthetic dev/test event.
const DevEventCode = "2026devtest"

// TodayEvents is the event list offered when the backend has none for today.
func TodayEvents() []model.Event {
	return []model.Event{
		{Code: "2026flwp", Name: "West Palm Beach Regional", Status: model.StatusLive},
		{Code: "2026txda", Name: "Dallas Regional", Status: model.StatusLive},
	}
}

// DevEvent returns the synthetic live test event dated on now's calendar day.
func DevEvent(now time.Time) model.Event {
	day := now.UTC().Format(time.DateOnly)
	return model.Event{
		Code:      DevEventCode,
		Name:      "DEV TEST EVENT - Sample Data",
		Status:    model.StatusLive,
		DateStart: day,
		DateEnd:   day,
		Type:      "Test",
		City:      "Dev City",
		StateProv: "TEST",
		Country:   "USA",
	}
}
