package model

import "slices"

// Side names one alliance of a match.
type Side string

const (
	SideRed  Side = "red"
	SideBlue Side = "blue"
	SideNone Side = "none"
)

// Alliance is one side of a match. Nil score fields mean "not reported".
type Alliance struct {
	Teams []int `json:"teams"`
	Score *int  `json:"score"`
	Auto  *int  `json:"auto"`
	Foul  *int  `json:"foul"`
}

// Has reports whether team plays on this alliance.
func (a Alliance) Has(team int) bool {
	return slices.Contains(a.Teams, team)
}

// Match is one scheduled or played match of an event.
type Match struct {
	MatchNumber int      `json:"matchNumber"`
	Description string   `json:"description"`
	Level       string   `json:"level,omitempty"`
	Completed   bool     `json:"completed"`
	Red         Alliance `json:"red"`
	Blue        Alliance `json:"blue"`
}

// Involves reports whether team plays in the match on either side.
func (m Match) Involves(team int) bool {
	return m.Red.Has(team) || m.Blue.Has(team)
}

// SideOf returns the alliance team plays on, or SideNone.
func (m Match) SideOf(team int) Side {
	switch {
	case m.Red.Has(team):
		return SideRed
	case m.Blue.Has(team):
		return SideBlue
	default:
		return SideNone
	}
}

// Alliances returns (own, opponent) for side. SideNone yields (red, blue).
func (m Match) Alliances(side Side) (Alliance, Alliance) {
	if side == SideBlue {
		return m.Blue, m.Red
	}
	return m.Red, m.Blue
}

// Winner returns the side with the strictly higher score, SideNone for ties or unplayed matches.
func (m Match) Winner() Side {
	if !m.Completed || m.Red.Score == nil || m.Blue.Score == nil {
		return SideNone
	}
	switch {
	case *m.Red.Score > *m.Blue.Score:
		return SideRed
	case *m.Blue.Score > *m.Red.Score:
		return SideBlue
	default:
		return SideNone
	}
}

// Consistent reports whether the completion flag agrees with the scores:
// completed iff both scores are present, and unplayed matches carry no score fields.
func (m Match) Consistent() bool {
	both := m.Red.Score != nil && m.Blue.Score != nil
	if m.Completed {
		return both
	}
	return m.Red.Score == nil && m.Blue.Score == nil &&
		m.Red.Auto == nil && m.Blue.Auto == nil &&
		m.Red.Foul == nil && m.Blue.Foul == nil
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
