package statstore

import (
	"fmt"
	"strings"

	"github.com/sportsense/statsdb/pkg/sport"
)

// NotFoundError reports that no stored entity matched a query name.
// It is a first-class query outcome, not a failure.
type NotFoundError struct {
	Kind string // "player" or "team"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Kind, e.Name)
}

// AmbiguousError reports that a single-entity lookup matched several
// entities. Player lookups carry the matches in Candidates; team lookups
// carry rendered "name (sport)" labels in Names. Either way the caller can
// disambiguate explicitly.
type AmbiguousError struct {
	Kind       string
	Name       string
	Candidates []PlayerHit
	Names      []string
}

func (e *AmbiguousError) Error() string {
	n := len(e.Candidates)
	if n == 0 {
		n = len(e.Names)
	}
	return fmt.Sprintf("%d %ss match %q", n, e.Kind, e.Name)
}

// UnknownMetricError reports a metric name outside the player's sport
// alias table.
type UnknownMetricError struct {
	Sport  sport.Sport
	Metric string
}

func (e *UnknownMetricError) Error() string {
	known := make([]string, 0, len(e.Sport.AverageMetrics()))
	for _, m := range e.Sport.AverageMetrics() {
		known = append(known, m.Label)
	}
	return fmt.Sprintf("unknown %s metric %q (tracked: %s)",
		e.Sport, e.Metric, strings.Join(known, ", "))
}
