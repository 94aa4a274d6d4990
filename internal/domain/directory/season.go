package directory

import (
	"fmt"
	"time"
)

// seasonStartMonth is the month a new season begins.
const seasonStartMonth = time.September

// SeasonFor returns the season t falls in. September of year Y through August of Y+1 is season Y.
func SeasonFor(t time.Time) int {
	if t.Month() >= seasonStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// Season is one selectable season.
type Season struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// Seasons lists seasons from current down to first, newest first.
func Seasons(current, first int) []Season {
	if first > current {
		first = current
	}
	out := make([]Season, 0, current-first+1)
	for y := current; y >= first; y-- {
		out = append(out, Season{Year: y, Label: fmt.Sprintf("%d-%d", y, y+1)})
	}
	return out
}
