// Package demo synthesizes a complete, reproducible event dataset for when the backend has none.
package demo

import (
	"fmt"

	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/standings"
)

const (
	defaultSeed      = 42
	defaultMatches   = 36
	defaultCompleted = 30
	allianceSize     = 2
	matchLevel       = "qual"
)

// Score component ranges, [lo, hi).
var (
	autoRange    = [2]int{10, 50}
	teleopRange  = [2]int{30, 110}
	endgameRange = [2]int{0, 30}
	foulRange    = [2]int{0, 10}
)

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed overrides the generator seed.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// WithRoster overrides the roster. Rosters smaller than one match's worth of teams are ignored.
func WithRoster(roster []model.Team) Option {
	return func(s *Synthesizer) {
		if len(roster) >= 2*allianceSize {
			s.roster = append([]model.Team(nil), roster...)
		}
	}
}

// WithSchedule sets the total and completed match counts.
func WithSchedule(total, completed int) Option {
	return func(s *Synthesizer) {
		if total > 0 && completed >= 0 && completed <= total {
			s.total = total
			s.completed = completed
		}
	}
}

// Synthesizer fabricates datasets. It holds no mutable state, so one instance can be shared.
type Synthesizer struct {
	seed      uint64
	roster    []model.Team
	total     int
	completed int
}

// New creates a Synthesizer with the default seed, roster and schedule.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		seed:      defaultSeed,
		roster:    Roster(),
		total:     defaultMatches,
		completed: defaultCompleted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dataset generates the roster, schedule and standings. Every call returns identical data.
func (s *Synthesizer) Dataset() model.Dataset {
	g := newLCG(s.seed)

	teams := make([]model.Team, len(s.roster))
	copy(teams, s.roster)
	numbers := make([]int, len(teams))
	for i, t := range teams {
		numbers[i] = t.Number
	}

	matches := make([]model.Match, 0, s.total)
	for i := 1; i <= s.total; i++ {
		matches = append(matches, s.match(g, i, numbers))
	}

	return model.Dataset{
		Teams:    teams,
		Rankings: standings.Compute(teams, matches),
		Matches:  matches,
		Source:   model.SourceDemo,
	}
}

func (s *Synthesizer) match(g *lcg, n int, numbers []int) model.Match {
	sh := g.shuffle(numbers)
	m := model.Match{
		MatchNumber: n,
		Description: fmt.Sprintf("Qualifier %d", n),
		Level:       matchLevel,
		Completed:   n <= s.completed,
		Red:         model.Alliance{Teams: []int{sh[0], sh[1]}},
		Blue:        model.Alliance{Teams: []int{sh[2], sh[3]}},
	}
	if !m.Completed {
		return m
	}

	// Draw order is fixed: both autos, both teleops, both endgames, both fouls.
	redAuto, blueAuto := g.between(autoRange[0], autoRange[1]), g.between(autoRange[0], autoRange[1])
	redTele, blueTele := g.between(teleopRange[0], teleopRange[1]), g.between(teleopRange[0], teleopRange[1])
	redEnd, blueEnd := g.between(endgameRange[0], endgameRange[1]), g.between(endgameRange[0], endgameRange[1])
	redFoul, blueFoul := g.between(foulRange[0], foulRange[1]), g.between(foulRange[0], foulRange[1])

	m.Red.Auto, m.Red.Foul = model.IntPtr(redAuto), model.IntPtr(redFoul)
	m.Blue.Auto, m.Blue.Foul = model.IntPtr(blueAuto), model.IntPtr(blueFoul)
	m.Red.Score = model.IntPtr(redAuto + redTele + redEnd + redFoul)
	m.Blue.Score = model.IntPtr(blueAuto + blueTele + blueEnd + blueFoul)
	return m
}

// Dataset generates the default demo dataset.
func Dataset() model.Dataset {
	return New().Dataset()
}
