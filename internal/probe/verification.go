package probe

import (
	"fmt"

	"github.com/wikiscout/scoutcore/internal/domain/matchview"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/standings"
)

// Check names.
const (
	CheckDenseRanks  = "dense_ranks"
	CheckCompletion  = "completion"
	CheckGrouping    = "grouping"
	CheckWLT         = "wlt_consistency"
	CheckRecomputed  = "recomputed_standings"
	maxDetailsPerRun = 20
)

// DenseRanks verifies ranks are exactly 1..N in list order.
func DenseRanks(rankings []model.Ranking) []Violation {
	var out []Violation
	for i, r := range rankings {
		if r.Rank != i+1 {
			out = append(out, Violation{
				Check:  CheckDenseRanks,
				Detail: fmt.Sprintf("position %d (team %d) has rank %d", i+1, r.TeamNumber, r.Rank),
			})
		}
	}
	return out
}

// Completion verifies completed iff both totals are present, and no scores on unplayed matches.
func Completion(matches []model.Match) []Violation {
	var out []Violation
	for _, m := range matches {
		if !m.Consistent() {
			out = append(out, Violation{
				Check:  CheckCompletion,
				Detail: fmt.Sprintf("match %d: completed=%t does not agree with its scores", m.MatchNumber, m.Completed),
			})
		}
	}
	return out
}

// Grouping verifies the upcoming list is unplayed and ascending, and the completed list is
// played and descending.
func Grouping(l matchList) []Violation {
	var out []Violation
	for i, m := range l.Upcoming {
		if m.Completed {
			out = append(out, Violation{Check: CheckGrouping, Detail: fmt.Sprintf("match %d listed as upcoming", m.MatchNumber)})
		}
		if i > 0 && l.Upcoming[i-1].MatchNumber > m.MatchNumber {
			out = append(out, Violation{Check: CheckGrouping, Detail: fmt.Sprintf("upcoming match %d out of order", m.MatchNumber)})
		}
	}
	for i, m := range l.Completed {
		if !m.Completed {
			out = append(out, Violation{Check: CheckGrouping, Detail: fmt.Sprintf("match %d listed as completed", m.MatchNumber)})
		}
		if i > 0 && l.Completed[i-1].MatchNumber < m.MatchNumber {
			out = append(out, Violation{Check: CheckGrouping, Detail: fmt.Sprintf("completed match %d out of order", m.MatchNumber)})
		}
	}
	return out
}

// WLT verifies each team's standings row against the record summed from the matches.
func WLT(rankings []model.Ranking, matches []model.Match) []Violation {
	var out []Violation
	for _, r := range rankings {
		rec := matchview.Summary(matches, r.TeamNumber)
		if rec.Wins != r.Wins || rec.Losses != r.Losses || rec.Ties != r.Ties || rec.Played != r.MatchesPlayed {
			out = append(out, Violation{
				Check: CheckWLT,
				Detail: fmt.Sprintf("team %d: standings %d-%d-%d/%d, matches %d-%d-%d/%d", r.TeamNumber,
					r.Wins, r.Losses, r.Ties, r.MatchesPlayed, rec.Wins, rec.Losses, rec.Ties, rec.Played),
			})
		}
	}
	return out
}

// Recomputed verifies the served standings equal a fresh aggregation of roster and matches,
// including order.
func Recomputed(rankings []model.Ranking, roster []model.Team, matches []model.Match) []Violation {
	want := standings.Compute(roster, matches)
	if len(want) != len(rankings) {
		return []Violation{{
			Check:  CheckRecomputed,
			Detail: fmt.Sprintf("served %d rows, recomputed %d", len(rankings), len(want)),
		}}
	}
	var out []Violation
	for i := range want {
		got, exp := rankings[i], want[i]
		if got.TeamNumber != exp.TeamNumber || got.Wins != exp.Wins || got.Losses != exp.Losses ||
			got.Ties != exp.Ties || got.MatchesPlayed != exp.MatchesPlayed {
			out = append(out, Violation{
				Check:  CheckRecomputed,
				Detail: fmt.Sprintf("rank %d: served team %d, recomputed team %d", i+1, got.TeamNumber, exp.TeamNumber),
			})
		}
	}
	return out
}
