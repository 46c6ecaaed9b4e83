package ioquery_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sportsense/statsdb/internal/ioaggregate"
	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/internal/ioquery"
	"github.com/sportsense/statsdb/pkg/config"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/sportsense/statsdb/pkg/statstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func fl(v float64) *float64 { return &v }

// querySetup seeds a small football universe: two teams, three players,
// three matches, aggregates rebuilt.
func querySetup(t *testing.T) db.Operator {
	t.Helper()
	tmp := t.TempDir()

	cfg := config.New(
		config.OptHomeDir(tmp),
		config.OptDatabasePath(filepath.Join(tmp, "stats.db")),
	)
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(context.Background(), cfg))
	t.Cleanup(func() { op.Close() })
	require.NoError(t, iodb.NewSchemaManager(op).Create(context.Background()))

	gdb := op.DB()
	seed := []interface{}{
		&schema.Sport{ID: 1, Name: "football"},
		&schema.Competition{ID: 1, Name: "Super League", SportID: 1},
		&schema.Team{ID: 1, Name: "ΠΑΟΚ", SportID: 1, CompetitionID: 1},
		&schema.Team{ID: 2, Name: "Ολυμπιακός", SportID: 1, CompetitionID: 1},
		&schema.Team{ID: 3, Name: "Άρης", SportID: 1, CompetitionID: 1},
		&schema.Player{ID: 1, Name: "Ιωαννίδης", TeamID: 1},
		&schema.Player{ID: 2, Name: "Κωνσταντέλιας", TeamID: 1},
		&schema.Player{ID: 3, Name: "Ελ Κααμπί", TeamID: 2},

		// ΠΑΟΚ 2-1 Ολυμπιακός, then Ολυμπιακός 3-0 ΠΑΟΚ, then ΠΑΟΚ 1-1 Άρης.
		&schema.Match{ID: 1, Date: day(1), SportID: 1, CompetitionID: 1,
			HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1},
		&schema.Match{ID: 2, Date: day(8), SportID: 1, CompetitionID: 1,
			HomeTeamID: 2, AwayTeamID: 1, HomeScore: 3, AwayScore: 0},
		&schema.Match{ID: 3, Date: day(15), SportID: 1, CompetitionID: 1,
			HomeTeamID: 1, AwayTeamID: 3, HomeScore: 1, AwayScore: 1},

		&schema.FootballStats{MatchID: 1, PlayerID: 1, Rating: fl(8.0), Shots: fl(4)},
		&schema.FootballStats{MatchID: 2, PlayerID: 1, Rating: fl(6.0), Shots: fl(2)},
		&schema.FootballStats{MatchID: 1, PlayerID: 2, Rating: fl(7.0), Shots: fl(1)},
		&schema.FootballStats{MatchID: 1, PlayerID: 3, Rating: fl(7.5), Shots: fl(5)},
	}
	for _, row := range seed {
		require.NoError(t, gdb.Create(row).Error)
	}
	require.NoError(t, ioaggregate.New(op).Rebuild(context.Background()))
	return op
}

func TestSearchPlayers(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	hits, err := q.SearchPlayers(ctx, "Ιωαννίδης", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Ιωαννίδης", hits[0].Name)
	assert.Equal(t, "ΠΑΟΚ", hits[0].Team)
	assert.Equal(t, "football", hits[0].Sport.String())

	// Substring match.
	hits, err = q.SearchPlayers(ctx, "αννίδη", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	// A miss is an empty slice, not an error.
	hits, err = q.SearchPlayers(ctx, "Τζόκοβιτς", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestTeamLastMatches(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	tm, err := q.TeamLastMatches(ctx, "ΠΑΟΚ", 2)
	require.NoError(t, err)
	assert.Equal(t, "ΠΑΟΚ", tm.Team)
	require.Len(t, tm.Matches, 2)

	// Newest first: the draw against Άρης.
	assert.Equal(t, "Άρης", tm.Matches[0].Opponent)
	assert.Equal(t, statstore.Draw, tm.Matches[0].Result)
	assert.True(t, tm.Matches[0].Home)

	// Away loss has the score flipped to ΠΑΟΚ's perspective.
	away := tm.Matches[1]
	assert.Equal(t, "Ολυμπιακός", away.Opponent)
	assert.False(t, away.Home)
	assert.Equal(t, 0, away.TeamScore)
	assert.Equal(t, 3, away.OppScore)
	assert.Equal(t, statstore.Loss, away.Result)
}

func TestTeamNotFound(t *testing.T) {
	q := ioquery.New(querySetup(t))

	_, err := q.TeamLastMatches(context.Background(), "Λίβερπουλ", 5)
	var notFound *statstore.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "team", notFound.Kind)
}

func TestTeamAmbiguous(t *testing.T) {
	ctx := context.Background()
	op := querySetup(t)
	require.NoError(t, op.DB().Create(
		&schema.Team{ID: 4, Name: "Ολυμπιακός Βόλου", SportID: 1, CompetitionID: 1}).Error)

	q := ioquery.New(op)
	_, err := q.TeamLastMatches(ctx, "Ολυμπιακό", 5)
	var ambiguous *statstore.AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "team", ambiguous.Kind)
	assert.Equal(t, []string{
		"Ολυμπιακός (football)",
		"Ολυμπιακός Βόλου (football)",
	}, ambiguous.Names)
	assert.Contains(t, ambiguous.Error(), "2 teams")
}

func TestDefaultLimits(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	// A non-positive limit falls back to a default instead of LIMIT 0.
	tm, err := q.TeamLastMatches(ctx, "ΠΑΟΚ", 0)
	require.NoError(t, err)
	assert.Len(t, tm.Matches, 3)

	pg, err := q.PlayerLastGames(ctx, "Ιωαννίδης", -1)
	require.NoError(t, err)
	assert.Len(t, pg.Games, 2)

	tr, err := q.TeamKeyPlayers(ctx, "ΠΑΟΚ", 0)
	require.NoError(t, err)
	assert.Len(t, tr.Players, 2)
}

func TestPlayerLastGames(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	pg, err := q.PlayerLastGames(ctx, "Ιωαννίδης", 5)
	require.NoError(t, err)
	require.Len(t, pg.Games, 2)

	// Newest first; opponent is the other side of each match.
	assert.Equal(t, "Ολυμπιακός", pg.Games[0].Opponent)
	assert.Equal(t, "Ολυμπιακός", pg.Games[1].Opponent)
	require.NotEmpty(t, pg.Games[0].Values)
	assert.Equal(t, "rating", pg.Games[0].Values[0].Label)
	assert.Equal(t, "6", pg.Games[0].Values[0].Value)
}

func TestPlayerAverages(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	pa, err := q.PlayerAverages(ctx, "Ιωαννίδης", "all")
	require.NoError(t, err)
	assert.Equal(t, 2, pa.Games)
	require.NotEmpty(t, pa.Values)
	assert.Equal(t, "rating", pa.Values[0].Label)
	assert.Equal(t, "7", pa.Values[0].Value)

	// Greek alias without tonos selects a single metric.
	pa, err = q.PlayerAverages(ctx, "Ιωαννίδης", "σουτ")
	require.NoError(t, err)
	require.Len(t, pa.Values, 1)
	assert.Equal(t, "shots", pa.Values[0].Label)
	assert.Equal(t, "3", pa.Values[0].Value)
}

func TestPlayerAveragesUnknownMetric(t *testing.T) {
	q := ioquery.New(querySetup(t))

	_, err := q.PlayerAverages(context.Background(), "Ιωαννίδης", "ριμπάουντ")
	var unknown *statstore.UnknownMetricError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ριμπάουντ", unknown.Metric)
}

func TestPlayerAmbiguous(t *testing.T) {
	ctx := context.Background()
	op := querySetup(t)
	require.NoError(t, op.DB().Create(
		&schema.Player{ID: 4, Name: "Ιωαννίδης", TeamID: 2}).Error)

	q := ioquery.New(op)
	_, err := q.PlayerLastGames(ctx, "Ιωαννίδης", 5)
	var ambiguous *statstore.AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
}

func TestTeamKeyPlayers(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	tr, err := q.TeamKeyPlayers(ctx, "ΠΑΟΚ", 5)
	require.NoError(t, err)
	assert.Equal(t, "rating", tr.Metric)
	require.Len(t, tr.Players, 2)

	// Both ΠΑΟΚ players average a 7.0 rating.
	assert.Equal(t, "7", tr.Players[0].RankValue)
	assert.Equal(t, "7", tr.Players[1].RankValue)
}

func TestHeadToHead(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	h, err := q.HeadToHead(ctx, "ΠΑΟΚ", "Ολυμπιακός", 3)
	require.NoError(t, err)
	assert.Equal(t, "ΠΑΟΚ", h.A.Team)
	assert.Equal(t, "Ολυμπιακός", h.B.Team)
	require.Len(t, h.B.Players, 1)
	assert.Equal(t, "Ελ Κααμπί", h.B.Players[0].Name)
	assert.Equal(t, "7.5", h.B.Players[0].RankValue)
}

func TestFixturesBetween(t *testing.T) {
	ctx := context.Background()
	q := ioquery.New(querySetup(t))

	f, err := q.FixturesBetween(ctx, "ΠΑΟΚ", "Ολυμπιακός")
	require.NoError(t, err)
	require.Len(t, f.Meetings, 2)

	// Newest first, with true home/away sides.
	assert.Equal(t, "Ολυμπιακός", f.Meetings[0].HomeTeam)
	assert.Equal(t, 3, f.Meetings[0].HomeScore)
	assert.Equal(t, "ΠΑΟΚ", f.Meetings[1].HomeTeam)
	assert.Equal(t, 2, f.Meetings[1].HomeScore)
}
