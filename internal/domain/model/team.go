package model

// Team is a rostered team of the active event.
type Team struct {
	Number int    `json:"teamNumber"`
	Name   string `json:"name,omitempty"`
}

// Ranking is one row of the event standings. Rank is 1-based and dense.
type Ranking struct {
	TeamNumber    int    `json:"teamNumber"`
	TeamName      string `json:"teamName"`
	Rank          int    `json:"rank"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

// Outcome is a team's result in one completed match.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
	Tie  Outcome = "tie"
)

// Compare decides the outcome for an alliance scoring own against opp.
func Compare(own, opp int) Outcome {
	switch {
	case own > opp:
		return Win
	case own < opp:
		return Loss
	default:
		return Tie
	}
}

// Record is a win/loss/tie tally.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
	Played int `json:"played"`
}

// Add tallies one outcome.
func (r *Record) Add(o Outcome) {
	switch o {
	case Win:
		r.Wins++
	case Loss:
		r.Losses++
	case Tie:
		r.Ties++
	}
	r.Played++
}
