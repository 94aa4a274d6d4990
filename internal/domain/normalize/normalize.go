// Package normalize turns raw backend payloads into canonical records.
package normalize

import (
	"fmt"
	"sort"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// Result is the canonical form of one event load.
type Result struct {
	Dataset model.Dataset
	// Partial counts matches that reported only one alliance total.
	Partial int
}

// Normalize builds a backend dataset from the three payloads. Nil payloads are treated as empty.
func Normalize(teams *TeamsPayload, rankings *RankingsPayload, matches *MatchesPayload) Result {
	var res Result
	if teams != nil {
		res.Dataset.Teams = Teams(teams.Teams)
	}
	if rankings != nil {
		res.Dataset.Rankings = Rankings(rankings.Rankings)
	}
	if matches != nil {
		res.Dataset.Matches, res.Partial = Matches(matches.Matches)
	}
	if res.Dataset.Teams == nil {
		res.Dataset.Teams = []model.Team{}
	}
	if res.Dataset.Rankings == nil {
		res.Dataset.Rankings = []model.Ranking{}
	}
	if res.Dataset.Matches == nil {
		res.Dataset.Matches = []model.Match{}
	}
	res.Dataset.Source = model.SourceBackend
	return res
}

// Teams keeps roster entries with a positive number, first occurrence wins.
func Teams(refs []TeamRef) []model.Team {
	out := make([]model.Team, 0, len(refs))
	seen := make(map[int]struct{}, len(refs))
	for _, r := range refs {
		if r.Number <= 0 {
			continue
		}
		if _, dup := seen[r.Number]; dup {
			continue
		}
		seen[r.Number] = struct{}{}
		out = append(out, model.Team{Number: r.Number, Name: r.Name})
	}
	return out
}

// Rankings orders rows by the reported rank (rows without one go last, in input order)
// and assigns dense ranks 1..N. Missing counters default to 0 and matchesPlayed
// falls back to wins+losses+ties.
func Rankings(raw []RawRanking) []model.Ranking {
	type row struct {
		r      model.Ranking
		rank   int
		ranked bool
	}
	rows := make([]row, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))
	for _, rr := range raw {
		team := int(rr.TeamNumber)
		if _, dup := seen[team]; dup && team != 0 {
			continue
		}
		seen[team] = struct{}{}

		r := model.Ranking{
			TeamNumber:    team,
			TeamName:      rr.TeamName,
			Wins:          int(rr.Wins),
			Losses:        int(rr.Losses),
			Ties:          int(rr.Ties),
			MatchesPlayed: int(rr.MatchesPlayed),
		}
		if r.MatchesPlayed == 0 {
			r.MatchesPlayed = r.Wins + r.Losses + r.Ties
		}
		x := row{r: r}
		if rr.Rank != nil && *rr.Rank > 0 {
			x.rank, x.ranked = int(*rr.Rank), true
		}
		rows = append(rows, x)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ranked != rows[j].ranked {
			return rows[i].ranked
		}
		return rows[i].rank < rows[j].rank
	})

	out := make([]model.Ranking, len(rows))
	for i, x := range rows {
		x.r.Rank = i + 1
		out[i] = x.r
	}
	return out
}

// Matches converts raw schedule entries. A match counts as completed only when both
// totals are present. A match with only one total is counted in partial and kept as
// unplayed with all scores cleared. Duplicate match numbers keep the
// first entry.
func Matches(raw []RawMatch) (out []model.Match, partial int) {
	out = make([]model.Match, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))
	for _, rm := range raw {
		num := int(rm.MatchNumber)
		if _, dup := seen[num]; dup {
			continue
		}
		seen[num] = struct{}{}

		m := model.Match{
			MatchNumber: num,
			Description: rm.Description,
			Level:       rm.TournamentLevel,
			Red:         alliance(rm.Red),
			Blue:        alliance(rm.Blue),
		}
		if m.Description == "" {
			m.Description = fmt.Sprintf("Match %d", num)
		}

		redScored := m.Red.Score != nil
		blueScored := m.Blue.Score != nil
		if redScored && blueScored {
			m.Completed = true
		} else {
			if redScored || blueScored {
				partial++
			}
			clearScores(&m.Red)
			clearScores(&m.Blue)
		}
		out = append(out, m)
	}
	return out, partial
}

func alliance(ra *RawAlliance) model.Alliance {
	if ra == nil {
		return model.Alliance{Teams: []int{}}
	}
	teams := make([]int, 0, len(ra.Teams))
	for _, t := range ra.Teams {
		if t.Number > 0 {
			teams = append(teams, t.Number)
		}
	}
	return model.Alliance{
		Teams: teams,
		Score: ra.Total.ptr(),
		Auto:  ra.Auto.ptr(),
		Foul:  ra.Foul.ptr(),
	}
}

func clearScores(a *model.Alliance) {
	a.Score, a.Auto, a.Foul = nil, nil, nil
}
