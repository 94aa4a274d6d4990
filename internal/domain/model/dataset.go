package model

// Source tells where a dataset came from.
type Source string

const (
	SourceBackend Source = "backend"
	SourceDemo    Source = "demo"
)

// Dataset is the full, atomically replaced data of one event.
type Dataset struct {
	Teams    []Team    `json:"teams"`
	Rankings []Ranking `json:"rankings"`
	Matches  []Match   `json:"matches"`
	Source   Source    `json:"source"`
}

// Empty reports whether all three collections are empty.
func (d Dataset) Empty() bool {
	return len(d.Teams) == 0 && len(d.Rankings) == 0 && len(d.Matches) == 0
}

// TeamNumbers returns the roster numbers in roster order.
func (d Dataset) TeamNumbers() []int {
	out := make([]int, len(d.Teams))
	for i, t := range d.Teams {
		out[i] = t.Number
	}
	return out
}

// RankingFor returns the ranking row of team, if any.
func (d Dataset) RankingFor(team int) (Ranking, bool) {
	for _, r := range d.Rankings {
		if r.TeamNumber == team {
			return r, true
		}
	}
	return Ranking{}, false
}
