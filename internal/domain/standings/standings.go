// Package standings tallies win/loss/tie records from completed matches and ranks teams.
package standings

import (
	"fmt"
	"sort"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// Standing is one team's aggregated record.
type Standing struct {
	TeamNumber int
	model.Record
	TotalScore int
}

// Tally folds the completed matches into one Standing per rostered team, in roster order.
// Teams that are not rostered are ignored.
func Tally(roster []int, matches []model.Match) []Standing {
	rows := make([]Standing, len(roster))
	index := make(map[int]int, len(roster))
	for i, team := range roster {
		rows[i].TeamNumber = team
		if _, dup := index[team]; !dup {
			index[team] = i
		}
	}

	credit := func(teams []int, own, opp int) {
		for _, t := range teams {
			i, ok := index[t]
			if !ok {
				continue
			}
			rows[i].Add(model.Compare(own, opp))
			rows[i].TotalScore += own
		}
	}

	for _, m := range matches {
		if !m.Completed || m.Red.Score == nil || m.Blue.Score == nil {
			continue
		}
		red, blue := *m.Red.Score, *m.Blue.Score
		credit(m.Red.Teams, red, blue)
		credit(m.Blue.Teams, blue, red)
	}
	return rows
}

// Order sorts rows by wins descending then total score descending. Equal rows keep their input order.
func Order(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].TotalScore > rows[j].TotalScore
	})
}

// Rank orders rows and returns dense 1-based rankings. Names missing from names read "Team N".
func Rank(rows []Standing, names map[int]string) []model.Ranking {
	ordered := make([]Standing, len(rows))
	copy(ordered, rows)
	Order(ordered)

	out := make([]model.Ranking, len(ordered))
	for i, s := range ordered {
		name := names[s.TeamNumber]
		if name == "" {
			name = fmt.Sprintf("Team %d", s.TeamNumber)
		}
		out[i] = model.Ranking{
			TeamNumber:    s.TeamNumber,
			TeamName:      name,
			Rank:          i + 1,
			Wins:          s.Wins,
			Losses:        s.Losses,
			Ties:          s.Ties,
			MatchesPlayed: s.Played,
		}
	}
	return out
}

// Compute tallies and ranks the roster in one step.
func Compute(roster []model.Team, matches []model.Match) []model.Ranking {
	numbers := make([]int, len(roster))
	names := make(map[int]string, len(roster))
	for i, t := range roster {
		numbers[i] = t.Number
		names[t.Number] = t.Name
	}
	return Rank(Tally(numbers, matches), names)
}

// Dense reports whether rankings carry the ranks 1..N in order.
func Dense(rankings []model.Ranking) bool {
	for i, r := range rankings {
		if r.Rank != i+1 {
			return false
		}
	}
	return true
}
