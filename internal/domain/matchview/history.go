package matchview

import (
	"sort"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// HistoryEntry is one played match seen from a single team's alliance.
type HistoryEntry struct {
	MatchNumber int           `json:"matchNumber"`
	Description string        `json:"description"`
	Side        model.Side    `json:"side"`
	OwnScore    int           `json:"ownScore"`
	OppScore    int           `json:"oppScore"`
	Result      model.Outcome `json:"result"`
	OwnTeams    []int         `json:"ownTeams"`
	OppTeams    []int         `json:"oppTeams"`
	Own         SideStats     `json:"own"`
	Opp         SideStats     `json:"opp"`
}

// History lists team's completed matches in ascending match order. Unknown teams yield an empty list.
func History(matches []model.Match, team int) []HistoryEntry {
	out := make([]HistoryEntry, 0)
	for _, m := range matches {
		result, ok := outcome(m, team)
		if !ok {
			continue
		}
		side := m.SideOf(team)
		own, opp := m.Alliances(side)
		out = append(out, HistoryEntry{
			MatchNumber: m.MatchNumber,
			Description: m.Description,
			Side:        side,
			OwnScore:    *own.Score,
			OppScore:    *opp.Score,
			Result:      result,
			OwnTeams:    own.Teams,
			OppTeams:    opp.Teams,
			Own:         stats(own),
			Opp:         stats(opp),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchNumber < out[j].MatchNumber
	})
	return out
}

// Stats is the team card: the team's standings row, if ranked, and its history.
type Stats struct {
	TeamNumber int            `json:"teamNumber"`
	Found      bool           `json:"found"`
	Ranking    *model.Ranking `json:"ranking,omitempty"`
	History    []HistoryEntry `json:"history"`
}

// TeamStats builds the team card from a loaded dataset.
func TeamStats(d model.Dataset, team int) Stats {
	r, ok := d.RankingFor(team)
	return TeamCard(d.Matches, team, r, ok)
}

// TeamCard builds the team card from matches and the team's standings row, when ranked.
func TeamCard(matches []model.Match, team int, r model.Ranking, ranked bool) Stats {
	s := Stats{TeamNumber: team, History: History(matches, team)}
	if ranked {
		s.Found = true
		s.Ranking = &r
	}
	return s
}
