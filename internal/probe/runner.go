package probe

import (
	"context"
	"fmt"

	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

type check struct {
	name string
	run  func() []Violation
}

// Run fetches the active event's views from the engine and checks them. It returns
// ErrViolations alongside the report when any check fails.
func Run(ctx context.Context, cfg *Config, log logger.Logger) (Report, error) {
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	var (
		sess     session
		rankings []model.Ranking
		teams    []model.Team
		list     matchList
	)
	fetches := []struct {
		path string
		out  any
	}{
		{"/session", &sess},
		{"/rankings", &rankings},
		{"/teams", &teams},
		{"/matches?filter=all", &list},
	}
	for _, f := range fetches {
		if err := client.getJSON(ctx, f.path, f.out); err != nil {
			return Report{}, err
		}
	}

	matches := make([]model.Match, 0, len(list.Upcoming)+len(list.Completed))
	matches = append(matches, list.Upcoming...)
	matches = append(matches, list.Completed...)

	report := Report{
		EventCode: sess.EventCode,
		Source:    sess.Source,
		Teams:     len(teams),
		Rankings:  len(rankings),
		Matches:   len(matches),
	}
	log.Info(ctx, "probing event",
		logger.String("event", report.EventCode),
		logger.String("source", string(report.Source)),
		logger.Int("teams", report.Teams),
		logger.Int("matches", report.Matches),
	)

	checks := []check{
		{CheckDenseRanks, func() []Violation { return DenseRanks(rankings) }},
		{CheckCompletion, func() []Violation { return Completion(matches) }},
		{CheckGrouping, func() []Violation { return Grouping(list) }},
	}
	// Backend standings may cover matches the schedule does not carry; only synthesized
	// data is guaranteed to agree with its own matches.
	if report.Source == model.SourceDemo {
		checks = append(checks,
			check{CheckWLT, func() []Violation { return WLT(rankings, matches) }},
			check{CheckRecomputed, func() []Violation { return Recomputed(rankings, teams, matches) }},
		)
	}

	for _, c := range checks {
		found := c.run()
		if len(found) == 0 {
			if cfg.Verbose {
				log.Info(ctx, "check passed", logger.String("check", c.name))
			}
			continue
		}
		for i, v := range found {
			if i == maxDetailsPerRun {
				log.Warn(ctx, "further violations omitted", logger.String("check", c.name), logger.Int("total", len(found)))
				break
			}
			log.Warn(ctx, "check failed", logger.String("check", v.Check), logger.String("detail", v.Detail))
		}
		report.Violations = append(report.Violations, found...)
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %d", ErrViolations, len(report.Violations))
	}
	log.Info(ctx, "all checks passed", logger.Int("checks", len(checks)))
	return report, nil
}
