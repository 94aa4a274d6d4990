// Package matchview builds filtered, grouped and team-scoped views over an event's matches.
package matchview

import (
	"sort"
	"strings"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// Filter selects which matches a view shows.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterMyTeam   Filter = "my-team"
	FilterUpcoming Filter = "upcoming"

	// DefaultFilter is the filter a fresh session starts with.
	DefaultFilter = FilterMyTeam
)

// ParseFilter maps a query value to a Filter. An empty value yields DefaultFilter.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultFilter, true
	case FilterAll:
		return FilterAll, true
	case FilterMyTeam:
		return FilterMyTeam, true
	case FilterUpcoming:
		return FilterUpcoming, true
	default:
		return "", false
	}
}

// Apply keeps the matches selected by f, preserving input order. The input is not modified.
func Apply(matches []model.Match, f Filter, team int) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		switch f {
		case FilterMyTeam:
			if !m.Involves(team) {
				continue
			}
		case FilterUpcoming:
			if m.Completed {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// Group splits matches into unplayed ones by ascending match number and played ones by
// descending match number.
func Group(matches []model.Match) (upcoming, completed []model.Match) {
	upcoming = make([]model.Match, 0, len(matches))
	completed = make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Completed {
			completed = append(completed, m)
		} else {
			upcoming = append(upcoming, m)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].MatchNumber < upcoming[j].MatchNumber
	})
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].MatchNumber > completed[j].MatchNumber
	})
	return upcoming, completed
}

// Order returns the display order of matches: the upcoming group followed by the completed group.
func Order(matches []model.Match) []model.Match {
	upcoming, completed := Group(matches)
	return append(upcoming, completed...)
}

// Summary tallies team's record over its completed matches.
func Summary(matches []model.Match, team int) model.Record {
	var r model.Record
	for _, m := range matches {
		if o, ok := outcome(m, team); ok {
			r.Add(o)
		}
	}
	return r
}

// outcome returns team's result in m, if m is played and involves team.
func outcome(m model.Match, team int) (model.Outcome, bool) {
	if !m.Completed || m.Red.Score == nil || m.Blue.Score == nil {
		return "", false
	}
	side := m.SideOf(team)
	if side == model.SideNone {
		return "", false
	}
	own, opp := m.Alliances(side)
	return model.Compare(*own.Score, *opp.Score), true
}
