package directory

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

const maxSuggestions = 5

// Suggest ranks event names that fuzzily match q, best first.
func Suggest(q string, events []model.Event, limit int) []model.Event {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || len(events) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = maxSuggestions
	}

	byTarget := make(map[string]model.Event, len(events))
	targets := make([]string, 0, len(events))
	for _, e := range events {
		lower := strings.ToLower(e.DisplayName())
		if _, dup := byTarget[lower]; dup {
			continue
		}
		byTarget[lower] = e
		targets = append(targets, lower)
	}

	ranks := fuzzy.RankFind(q, targets)
	sort.Stable(ranks)

	out := make([]model.Event, 0, limit)
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, byTarget[r.Target])
	}
	return out
}
