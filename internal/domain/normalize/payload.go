package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TeamsPayload is the wire shape of a roster response.
type TeamsPayload struct {
	Teams []TeamRef `json:"teams"`
}

// TeamRef is a roster entry, sent either as a bare number or as {"teamNumber": n}.
type TeamRef struct {
	Number int
	Name   string
}

// UnmarshalJSON accepts a number, a numeric string, or an object carrying teamNumber.
func (t *TeamRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '{':
		var obj struct {
			TeamNumber flexInt `json:"teamNumber"`
			Name       string  `json:"name"`
			NameShort  string  `json:"nameShort"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		t.Number = int(obj.TeamNumber)
		t.Name = obj.Name
		if t.Name == "" {
			t.Name = obj.NameShort
		}
		return nil
	default:
		var n flexInt
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		t.Number = int(n)
		return nil
	}
}

// RankingsPayload is the wire shape of a standings response. Both "rankings" and "Rankings" are accepted.
type RankingsPayload struct {
	Rankings []RawRanking `json:"rankings"`
}

func (p *RankingsPayload) UnmarshalJSON(data []byte) error {
	var aux struct {
		Lower []RawRanking `json:"rankings"`
		Upper []RawRanking `json:"Rankings"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Rankings = aux.Lower
	if len(p.Rankings) == 0 {
		p.Rankings = aux.Upper
	}
	return nil
}

// RawRanking is one standings row as reported by the backend.
type RawRanking struct {
	TeamNumber    flexInt  `json:"teamNumber"`
	TeamName      string   `json:"teamName"`
	Rank          *flexInt `json:"rank"`
	Wins          flexInt  `json:"wins"`
	Losses        flexInt  `json:"losses"`
	Ties          flexInt  `json:"ties"`
	MatchesPlayed flexInt  `json:"matchesPlayed"`
}

// MatchesPayload is the wire shape of a schedule response. Both "matches" and "Schedule" are accepted.
type MatchesPayload struct {
	Matches []RawMatch `json:"matches"`
}

func (p *MatchesPayload) UnmarshalJSON(data []byte) error {
	var aux struct {
		Matches  []RawMatch `json:"matches"`
		Schedule []RawMatch `json:"Schedule"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Matches = aux.Matches
	if len(p.Matches) == 0 {
		p.Matches = aux.Schedule
	}
	return nil
}

// RawMatch is one schedule entry as reported by the backend.
type RawMatch struct {
	MatchNumber     flexInt      `json:"matchNumber"`
	Description     string       `json:"description"`
	TournamentLevel string       `json:"tournamentLevel"`
	Red             *RawAlliance `json:"red"`
	Blue            *RawAlliance `json:"blue"`
}

// RawAlliance carries the totals of one side. A nil Total means the match has not been scored.
type RawAlliance struct {
	Teams []TeamRef `json:"teams"`
	Total *flexInt  `json:"total"`
	Auto  *flexInt  `json:"auto"`
	Foul  *flexInt  `json:"foul"`
}

// flexInt decodes JSON numbers (integral or not) and numeric strings. Anything else decodes to 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(int(n))
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexible int: %w", err)
	}
	*f = flexInt(int(n))
	return nil
}

func (f *flexInt) ptr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}
