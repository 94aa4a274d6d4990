package directory

import (
	"strings"
	"time"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// DevSentinel is the query that bypasses search and selects the dev/test event.
const DevSentinel = "DEVDATA1"

// IsDevSentinel reports whether q is exactly the dev sentinel, ignoring case only.
func IsDevSentinel(q string) bool {
	return strings.EqualFold(q, DevSentinel)
}

// IsToday reports whether e is live or spans today's date (YYYY-MM-DD), inclusive.
// Events without a start date only qualify when live.
func IsToday(e model.Event, today string) bool {
	if e.Status == model.StatusLive {
		return true
	}
	start := e.StartDate()
	if start == "" {
		return false
	}
	return start <= today && e.EndDate() >= today
}

// Today keeps the events that qualify for today, in input order. Today is the UTC date of now.
func Today(events []model.Event, now time.Time) []model.Event {
	today := now.UTC().Format(time.DateOnly)
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if IsToday(e, today) {
			out = append(out, e)
		}
	}
	return out
}

// MatchText keeps events whose code, name, city or state contains q, case-insensitively.
// An empty q keeps everything.
func MatchText(events []model.Event, q string) []model.Event {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return events
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		for _, field := range []string{e.Code, e.Name, e.City, e.StateProv} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Buckets groups events by status. Events with another status are left out.
type Buckets struct {
	Live     []model.Event `json:"live"`
	Upcoming []model.Event `json:"upcoming"`
	Past     []model.Event `json:"past"`
}

// Len is the number of bucketed events.
func (b Buckets) Len() int {
	return len(b.Live) + len(b.Upcoming) + len(b.Past)
}

// Bucket groups events, keeping at most pastLimit past events. A non-positive limit keeps all.
func Bucket(events []model.Event, pastLimit int) Buckets {
	b := Buckets{
		Live:     []model.Event{},
		Upcoming: []model.Event{},
		Past:     []model.Event{},
	}
	for _, e := range events {
		switch e.Status {
		case model.StatusLive:
			b.Live = append(b.Live, e)
		case model.StatusUpcoming:
			b.Upcoming = append(b.Upcoming, e)
		case model.StatusPast:
			if pastLimit <= 0 || len(b.Past) < pastLimit {
				b.Past = append(b.Past, e)
			}
		}
	}
	return b
}
