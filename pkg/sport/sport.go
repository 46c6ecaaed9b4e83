// Package sport defines the closed set of sports handled by the store and
// the per-sport data each component needs: table names, the ranking metric,
// and the metric alias table used by the query layer. Adding a sport means
// adding a variant here and a row mapper in the ingestion package.
package sport

import (
	"strings"
)

// Sport is a tagged variant over the supported sports.
type Sport int

const (
	Football Sport = iota
	Basketball
)

// Metric is a column of an aggregate table with its display label.
type Metric struct {
	Column string
	Label  string
}

// FromSegment maps a stats-tree path segment to a Sport.
// The second value is false for segments outside the closed set.
func FromSegment(s string) (Sport, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "football":
		return Football, true
	case "basketball":
		return Basketball, true
	default:
		return 0, false
	}
}

// All returns every supported sport.
func All() []Sport {
	return []Sport{Football, Basketball}
}

func (s Sport) String() string {
	switch s {
	case Football:
		return "football"
	case Basketball:
		return "basketball"
	default:
		return "unknown"
	}
}

// StatsTable returns the fact table holding per-match player lines.
func (s Sport) StatsTable() string {
	if s == Football {
		return "football_stats"
	}
	return "basketball_stats"
}

// TotalsTable returns the per-player summed aggregate table.
func (s Sport) TotalsTable() string {
	if s == Football {
		return "football_player_totals"
	}
	return "basketball_player_totals"
}

// PerGameTable returns the per-player averaged aggregate table.
func (s Sport) PerGameTable() string {
	if s == Football {
		return "football_player_pergame"
	}
	return "basketball_player_pergame"
}

// RankingMetric returns the metric used to rank a team's key players.
func (s Sport) RankingMetric() Metric {
	if s == Football {
		return Metric{Column: "rating", Label: "rating"}
	}
	return Metric{Column: "points", Label: "points"}
}

// AverageMetrics returns the tracked per-game metrics in display order.
func (s Sport) AverageMetrics() []Metric {
	if s == Football {
		return []Metric{
			{Column: "rating", Label: "rating"},
			{Column: "shots", Label: "shots"},
			{Column: "xg", Label: "xG"},
			{Column: "touches", Label: "touches"},
			{Column: "touches_box", Label: "touches in box"},
			{Column: "duels", Label: "duels"},
		}
	}
	return []Metric{
		{Column: "points", Label: "points"},
		{Column: "rebounds", Label: "rebounds"},
		{Column: "assists", Label: "assists"},
		{Column: "steals", Label: "steals"},
		{Column: "blocks", Label: "blocks"},
		{Column: "turnovers", Label: "turnovers"},
		{Column: "minutes", Label: "minutes"},
	}
}

// ResolveMetric maps a caller-supplied metric name (English or Greek,
// any case) to the aggregate column it addresses. The second value is
// false for names outside the sport's alias table.
func (s Sport) ResolveMetric(alias string) (Metric, bool) {
	key := strings.ToLower(strings.TrimSpace(alias))
	col, ok := aliases(s)[key]
	if !ok {
		return Metric{}, false
	}
	for _, m := range s.AverageMetrics() {
		if m.Column == col {
			return m, true
		}
	}
	return Metric{}, false
}

// aliases returns the per-sport metric alias table. Greek aliases are
// listed both accented and unaccented, because chat callers rarely type
// tonos marks.
func aliases(s Sport) map[string]string {
	if s == Football {
		return map[string]string{
			"rating":       "rating",
			"αξιολόγηση":   "rating",
			"αξιολογηση":   "rating",
			"βαθμολογία":   "rating",
			"βαθμολογια":   "rating",
			"shots":        "shots",
			"σουτ":         "shots",
			"xg":           "xg",
			"expected":     "xg",
			"touches":      "touches",
			"επαφές":       "touches",
			"επαφες":       "touches",
			"touches_box":  "touches_box",
			"duels":        "duels",
			"μονομαχίες":   "duels",
			"μονομαχιες":   "duels",
		}
	}
	return map[string]string{
		"points":     "points",
		"πόντοι":     "points",
		"ποντοι":     "points",
		"rebounds":   "rebounds",
		"ριμπάουντ":  "rebounds",
		"ριμπαουντ":  "rebounds",
		"assists":    "assists",
		"ασίστ":      "assists",
		"ασιστ":      "assists",
		"steals":     "steals",
		"κλεψίματα":  "steals",
		"κλεψιματα":  "steals",
		"blocks":     "blocks",
		"μπλοκ":      "blocks",
		"μπλοκς":     "blocks",
		"τάπες":      "blocks",
		"ταπες":      "blocks",
		"turnovers":  "turnovers",
		"λάθη":       "turnovers",
		"λαθη":       "turnovers",
		"minutes":    "minutes",
		"λεπτά":      "minutes",
		"λεπτα":      "minutes",
	}
}
