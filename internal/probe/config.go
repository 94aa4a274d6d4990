// Package probe checks a running engine's views against the invariants they must hold.
package probe

import (
	"errors"
	"time"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// ErrViolations is returned by Run when at least one check failed.
var ErrViolations = errors.New("invariant violations found")

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the engine API
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every check, not only failures
}

// Violation is one failed check.
type Violation struct {
	Check  string `json:"check"`
	Detail string `json:"detail"`
}

// Report is the outcome of one probe run.
type Report struct {
	EventCode  string       `json:"eventCode"`
	Source     model.Source `json:"source"`
	Teams      int          `json:"teams"`
	Rankings   int          `json:"rankings"`
	Matches    int          `json:"matches"`
	Violations []Violation  `json:"violations"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Violations) == 0
}
