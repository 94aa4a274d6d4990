package matchview

import "github.com/wikiscout/scoutcore/internal/domain/model"

// SideStats is the score breakdown of one alliance. Nil values are unavailable.
type SideStats struct {
	Auto   *int `json:"auto"`
	Teleop *int `json:"teleop"`
	Foul   *int `json:"foul"`
}

// Breakdown pairs the red and blue score breakdowns.
type Breakdown struct {
	Red  SideStats `json:"red"`
	Blue SideStats `json:"blue"`
}

// Card is a match prepared for display from team's point of view.
type Card struct {
	model.Match
	Winner    model.Side    `json:"winner"`
	Mine      bool          `json:"mine"`
	Result    model.Outcome `json:"result,omitempty"`
	FocusTeam int           `json:"focusTeam"`
	Breakdown *Breakdown    `json:"breakdown,omitempty"`
}

// View is the grouped match list for one filter.
type View struct {
	Filter    Filter        `json:"filter"`
	Team      int           `json:"team"`
	Upcoming  []Card        `json:"upcoming"`
	Completed []Card        `json:"completed"`
	Summary   *model.Record `json:"summary,omitempty"`
}

// Len is the number of matches in the view.
func (v View) Len() int {
	return len(v.Upcoming) + len(v.Completed)
}

// Build filters and groups matches. The record summary is attached for the my-team filter
// once the team has played.
func Build(matches []model.Match, f Filter, team int) View {
	upcoming, completed := Group(Apply(matches, f, team))
	v := View{
		Filter:    f,
		Team:      team,
		Upcoming:  cards(upcoming, team),
		Completed: cards(completed, team),
	}
	if f == FilterMyTeam {
		if s := Summary(matches, team); s.Played > 0 {
			v.Summary = &s
		}
	}
	return v
}

func cards(matches []model.Match, team int) []Card {
	out := make([]Card, len(matches))
	for i, m := range matches {
		out[i] = NewCard(m, team)
	}
	return out
}

// NewCard decorates m with its winner, team's result, the focus team and the score breakdown.
func NewCard(m model.Match, team int) Card {
	c := Card{
		Match:     m,
		Winner:    m.Winner(),
		Mine:      m.Involves(team),
		FocusTeam: FocusTeam(m, team),
	}
	if o, ok := outcome(m, team); ok {
		c.Result = o
	}
	if m.Completed && m.Red.Auto != nil {
		c.Breakdown = &Breakdown{Red: stats(m.Red), Blue: stats(m.Blue)}
	}
	return c
}

// FocusTeam picks the team a match card opens: team itself when it plays, else the first
// red team, else the first blue team. Zero means none.
func FocusTeam(m model.Match, team int) int {
	switch {
	case m.Involves(team):
		return team
	case len(m.Red.Teams) > 0 && m.Red.Teams[0] != 0:
		return m.Red.Teams[0]
	case len(m.Blue.Teams) > 0:
		return m.Blue.Teams[0]
	default:
		return 0
	}
}

func stats(a model.Alliance) SideStats {
	return SideStats{Auto: a.Auto, Teleop: Teleop(a), Foul: a.Foul}
}

// Teleop derives the teleop-plus-endgame value as score - auto - foul. It is nil unless all
// three components are reported.
func Teleop(a model.Alliance) *int {
	if a.Score == nil || a.Auto == nil || a.Foul == nil {
		return nil
	}
	return model.IntPtr(*a.Score - *a.Auto - *a.Foul)
}
