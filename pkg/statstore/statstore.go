// Package statstore defines the pure contracts of the statistics store:
// the lifecycle interfaces implemented by internal/io* packages and the
// record types returned by the query layer. It has no I/O dependencies.
package statstore

import (
	"context"
	"time"

	"github.com/sportsense/statsdb/pkg/sport"
)

// SchemaManager creates and resets the store schema.
// Operations are idempotent: safe to run multiple times.
type SchemaManager interface {
	// Create creates the schema if absent.
	Create(ctx context.Context) error

	// Reset drops all data and recreates the schema.
	Reset(ctx context.Context) error
}

// Ingestor converts the scraper's CSV tree into persisted rows, exactly
// once per file. Files already present in the processed-files log are
// skipped unconditionally; per-file failures are logged and do not abort
// the batch.
type Ingestor interface {
	Ingest(ctx context.Context) (BatchSummary, error)
}

// Aggregator recomputes the per-player Totals and PerGame tables from the
// fact tables. A rebuild is a full replace keyed by player id; a failed
// rebuild leaves the prior aggregates intact.
type Aggregator interface {
	Rebuild(ctx context.Context) error
}

// Querier exposes the read-only lookups consumed by the chat and report
// collaborators. Name arguments are matched by substring against stored
// names; misses are reported as typed errors (NotFoundError,
// AmbiguousError, UnknownMetricError), never as panics.
type Querier interface {
	// SearchPlayers returns up to limit players whose name contains the
	// given substring, each with team and sport, for disambiguation.
	SearchPlayers(ctx context.Context, name string, limit int) ([]PlayerHit, error)

	// TeamLastMatches returns the team's last limit matches, newest
	// first, scored from the team's perspective.
	TeamLastMatches(ctx context.Context, team string, limit int) (TeamMatches, error)

	// PlayerLastGames returns the player's last limit stat lines,
	// newest first, with metrics per the player's sport.
	PlayerLastGames(ctx context.Context, player string, limit int) (PlayerGames, error)

	// PlayerAverages returns the player's per-game averages: all tracked
	// metrics when metric is empty or "all", otherwise the one named by
	// the sport's alias table.
	PlayerAverages(ctx context.Context, player, metric string) (PlayerAverages, error)

	// TeamKeyPlayers ranks the team's players by the sport's ranking
	// metric, descending, and returns the top limit with supporting
	// metrics.
	TeamKeyPlayers(ctx context.Context, team string, limit int) (TeamRanking, error)

	// HeadToHead returns both teams' top-ranked players side by side.
	HeadToHead(ctx context.Context, teamA, teamB string, limit int) (HeadToHead, error)

	// FixturesBetween returns all historical matches between the two
	// teams, newest first.
	FixturesBetween(ctx context.Context, teamA, teamB string) (Fixtures, error)
}

// MatchResult is a match outcome from one team's perspective.
type MatchResult string

const (
	Win  MatchResult = "W"
	Loss MatchResult = "L"
	Draw MatchResult = "D"
)

// NamedValue is a rendered metric with its display label. Value holds "-"
// for metrics that were NULL in every underlying row.
type NamedValue struct {
	Label string
	Value string
}

// PlayerHit identifies a player together with the context a caller needs
// to disambiguate it.
type PlayerHit struct {
	PlayerID uint
	Name     string
	Team     string
	Sport    sport.Sport
}

// TeamMatch is one row of a team's match history, scored from that team's
// perspective (scores are flipped when the team played away).
type TeamMatch struct {
	Date      time.Time
	Opponent  string
	Home      bool
	TeamScore int
	OppScore  int
	Result    MatchResult
}

// TeamMatches is a team's recent match history.
type TeamMatches struct {
	Team    string
	Sport   sport.Sport
	Matches []TeamMatch
}

// Since keeps only the matches played on or after the given date.
func (tm TeamMatches) Since(t time.Time) TeamMatches {
	kept := make([]TeamMatch, 0, len(tm.Matches))
	for _, m := range tm.Matches {
		if !m.Date.Before(t) {
			kept = append(kept, m)
		}
	}
	tm.Matches = kept
	return tm
}

// PlayerGameLine is one per-match stat line of a player.
type PlayerGameLine struct {
	Date     time.Time
	Opponent string
	Values   []NamedValue
}

// PlayerGames is a player's recent game log.
type PlayerGames struct {
	Player PlayerHit
	Games  []PlayerGameLine
}

// PlayerAverages carries a player's per-game averages.
type PlayerAverages struct {
	Player PlayerHit
	Games  int
	Values []NamedValue
}

// RankedPlayer is one row of a team's key-player ranking.
type RankedPlayer struct {
	Name       string
	RankValue  string
	Supporting []NamedValue
}

// TeamRanking is a team's players ranked by the sport's ranking metric.
type TeamRanking struct {
	Team    string
	Sport   sport.Sport
	Metric  string
	Players []RankedPlayer
}

// HeadToHead compares two teams' top-ranked players ahead of a fixture.
type HeadToHead struct {
	A TeamRanking
	B TeamRanking
}

// Fixture is one historical meeting of two teams.
type Fixture struct {
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
}

// Fixtures lists the historical meetings of two teams, newest first.
type Fixtures struct {
	TeamA    string
	TeamB    string
	Meetings []Fixture
}

// Since keeps only the meetings played on or after the given date.
func (f Fixtures) Since(t time.Time) Fixtures {
	kept := make([]Fixture, 0, len(f.Meetings))
	for _, m := range f.Meetings {
		if !m.Date.Before(t) {
			kept = append(kept, m)
		}
	}
	f.Meetings = kept
	return f
}

// BatchSummary reports the outcome of one ingestion batch.
type BatchSummary struct {
	BatchID   string
	Processed int
	Skipped   int
	Failed    int
	Rows      int
	Duration  time.Duration
}
