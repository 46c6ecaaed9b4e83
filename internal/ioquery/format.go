package ioquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/sportsense/statsdb/pkg/statstore"
)

// formatValue renders a nullable metric. NULL renders as a dash; numbers
// keep at most two decimals, with trailing zeros trimmed.
func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	s := strconv.FormatFloat(*v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// parseValue is the inverse of formatValue for rendered numbers.
func parseValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// footballLine renders one football fact row in tracked-metric order.
func footballLine(s schema.FootballStats) []statstore.NamedValue {
	return []statstore.NamedValue{
		{Label: "rating", Value: formatValue(s.Rating)},
		{Label: "shots", Value: formatValue(s.Shots)},
		{Label: "xG", Value: formatValue(s.XG)},
		{Label: "touches", Value: formatValue(s.Touches)},
		{Label: "touches in box", Value: formatValue(s.TouchesBox)},
		{Label: "duels", Value: formatValue(s.Duels)},
	}
}

// basketballLine renders one basketball fact row in tracked-metric order.
func basketballLine(s schema.BasketballStats) []statstore.NamedValue {
	return []statstore.NamedValue{
		{Label: "points", Value: formatValue(s.Points)},
		{Label: "rebounds", Value: formatValue(s.ReboundsTotal)},
		{Label: "assists", Value: formatValue(s.Assists)},
		{Label: "steals", Value: formatValue(s.Steals)},
		{Label: "blocks", Value: formatValue(s.Blocks)},
		{Label: "turnovers", Value: formatValue(s.Turnovers)},
		{Label: "minutes", Value: formatValue(s.Minutes)},
	}
}

const dateLayout = "2006-01-02"

func joinValues(values []statstore.NamedValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s %s", v.Value, v.Label)
	}
	return strings.Join(parts, ", ")
}

// RenderPlayerHits renders a disambiguation list, one player per line.
func RenderPlayerHits(hits []statstore.PlayerHit) string {
	var b strings.Builder
	for _, h := range hits {
		fmt.Fprintf(&b, "%s (%s, %s)\n", h.Name, h.Team, h.Sport)
	}
	return b.String()
}

// RenderTeamMatches renders a team's match history, newest first.
func RenderTeamMatches(tm statstore.TeamMatches) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — last %d matches:\n", tm.Team, len(tm.Matches))
	for _, m := range tm.Matches {
		venue := "A"
		if m.Home {
			venue = "H"
		}
		fmt.Fprintf(&b, "%s  %s  %d-%d vs %s (%s)\n",
			m.Date.Format(dateLayout), m.Result,
			m.TeamScore, m.OppScore, m.Opponent, venue)
	}
	return b.String()
}

// RenderPlayerGames renders a player's recent game log.
func RenderPlayerGames(pg statstore.PlayerGames) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) — last %d games:\n",
		pg.Player.Name, pg.Player.Team, len(pg.Games))
	for _, g := range pg.Games {
		fmt.Fprintf(&b, "%s vs %s: %s\n",
			g.Date.Format(dateLayout), g.Opponent, joinValues(g.Values))
	}
	return b.String()
}

// RenderPlayerAverages renders per-game averages.
func RenderPlayerAverages(pa statstore.PlayerAverages) string {
	return fmt.Sprintf("%s (%s) — per game over %d games: %s\n",
		pa.Player.Name, pa.Player.Team, pa.Games, joinValues(pa.Values))
}

// RenderTeamRanking renders a team's key players, best first.
func RenderTeamRanking(tr statstore.TeamRanking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — key players by %s:\n", tr.Team, tr.Metric)
	for i, p := range tr.Players {
		fmt.Fprintf(&b, "%d. %s  %s %s", i+1, p.Name, p.RankValue, tr.Metric)
		if len(p.Supporting) > 0 {
			fmt.Fprintf(&b, " (%s)", joinValues(p.Supporting))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHeadToHead renders both sides of a fixture preview.
func RenderHeadToHead(h statstore.HeadToHead) string {
	return RenderTeamRanking(h.A) + "\n" + RenderTeamRanking(h.B)
}

// RenderFixtures renders the meeting history of two teams.
func RenderFixtures(f statstore.Fixtures) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s — %d meetings:\n",
		f.TeamA, f.TeamB, len(f.Meetings))
	for _, m := range f.Meetings {
		fmt.Fprintf(&b, "%s  %s %d-%d %s\n",
			m.Date.Format(dateLayout),
			m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam)
	}
	return b.String()
}
