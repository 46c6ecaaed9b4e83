package ioingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sportsense/statsdb/internal/ioaggregate"
	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/internal/ioingest"
	"github.com/sportsense/statsdb/internal/ioquery"
	"github.com/sportsense/statsdb/pkg/config"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/statstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const footballCSV = `Παίκτης,Ομάδα,Αξιολόγηση παίκτη,Συνολικά Σουτ,Αναμενόμενα γκολ (xG)
Ιωαννίδης,ΠΑΟΚ,8.2,4,"0,62"
Κωνσταντέλιας,ΠΑΟΚ,7.1,2,0.15
Ελ Κααμπί,Ολυμπιακός,6.9,3,-
`

const basketballCSV = `Παίκτης,Ομάδα,Πόντοι,Ασίστς,Λεπτά που παίχτηκαν,+/- Πόντοι
Σλούκας,Παναθηναϊκός,14,7,28:30,9
Ναν,Ολυμπιακός,22,5,31:00,-4
`

func writeStatsFile(t *testing.T, root string, parts ...string) string {
	t.Helper()
	p := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	return p
}

// seedTree lays out one football and one basketball match file under the
// path convention the scrapers use.
func seedTree(t *testing.T, root string) {
	t.Helper()

	fp := writeStatsFile(t, root,
		"football", "Super League", "2025", "Μάρτιος", "15",
		"ΠΑΟΚ vs Ολυμπιακός~~~2-1.csv")
	require.NoError(t, os.WriteFile(fp, []byte(footballCSV), 0o644))

	bp := writeStatsFile(t, root,
		"basketball", "Basket League", "2025", "Απρίλιος", "2",
		"Παναθηναϊκός vs Ολυμπιακός~~~80-78.csv")
	require.NoError(t, os.WriteFile(bp, []byte(basketballCSV), 0o644))
}

func ingestSetup(t *testing.T) (*config.Config, db.Operator) {
	t.Helper()
	tmp := t.TempDir()

	statsDir := filepath.Join(tmp, "stats")
	seedTree(t, statsDir)

	cfg := config.New(
		config.OptHomeDir(tmp),
		config.OptDatabasePath(filepath.Join(tmp, "stats.db")),
		config.OptIngestStatsDir(statsDir),
		config.OptIngestProcessedLog(filepath.Join(tmp, "processed.log")),
	)

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(context.Background(), cfg))
	t.Cleanup(func() { op.Close() })
	require.NoError(t, iodb.NewSchemaManager(op).Create(context.Background()))

	return cfg, op
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	cfg, op := ingestSetup(t)

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.BatchID)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 5, summary.Rows)

	count := func(table string) (n int64) {
		require.NoError(t, op.DB().Table(table).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 2, count("sports"))
	assert.EqualValues(t, 2, count("competitions"))
	assert.EqualValues(t, 4, count("teams"), "teams are scoped per competition")
	assert.EqualValues(t, 5, count("players"))
	assert.EqualValues(t, 2, count("matches"))
	assert.EqualValues(t, 3, count("football_stats"))
	assert.EqualValues(t, 2, count("basketball_stats"))

	// The xG placeholder must persist as NULL, not zero.
	var nullXG int64
	require.NoError(t, op.DB().
		Table("football_stats").Where("xg IS NULL").Count(&nullXG).Error)
	assert.EqualValues(t, 1, nullXG)

	// MM:SS minutes become fractional.
	var minutes float64
	require.NoError(t, op.DB().Table("basketball_stats").
		Select("minutes").Where("points = 14").Scan(&minutes).Error)
	assert.InDelta(t, 28.5, minutes, 1e-9)
}

// TestIngestEndToEnd runs the whole pipeline over the seeded tree: batch
// ingest, aggregate rebuild, then queries against the derived tables.
func TestIngestEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg, op := ingestSetup(t)

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Processed)
	require.NoError(t, ioaggregate.New(op).Rebuild(ctx))

	// One per-game row per distinct player.
	count := func(table string) (n int64) {
		require.NoError(t, op.DB().Table(table).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 3, count("football_player_pergame"))
	assert.EqualValues(t, 2, count("basketball_player_pergame"))

	q := ioquery.New(op)

	// Key players ranked by per-game rating, descending.
	tr, err := q.TeamKeyPlayers(ctx, "ΠΑΟΚ", 5)
	require.NoError(t, err)
	require.Len(t, tr.Players, 2)
	assert.Equal(t, "Ιωαννίδης", tr.Players[0].Name)
	assert.Equal(t, "8.2", tr.Players[0].RankValue)
	assert.Equal(t, "Κωνσταντέλιας", tr.Players[1].Name)
	assert.Equal(t, "7.1", tr.Players[1].RankValue)

	// Greek metric alias over the rebuilt basketball aggregates.
	pa, err := q.PlayerAverages(ctx, "Σλούκας", "πόντοι")
	require.NoError(t, err)
	assert.Equal(t, 1, pa.Games)
	require.Len(t, pa.Values, 1)
	assert.Equal(t, "points", pa.Values[0].Label)
	assert.Equal(t, "14", pa.Values[0].Value)

	// A club fielding sides in two sports is ambiguous by bare name.
	_, err = q.TeamLastMatches(ctx, "Ολυμπιακός", 5)
	var ambiguous *statstore.AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Names, 2)

	// Match history from the ingested basketball fixture.
	tm, err := q.TeamLastMatches(ctx, "Παναθηναϊκός", 5)
	require.NoError(t, err)
	require.Len(t, tm.Matches, 1)
	assert.Equal(t, "Ολυμπιακός", tm.Matches[0].Opponent)
	assert.Equal(t, 80, tm.Matches[0].TeamScore)
	assert.Equal(t, 78, tm.Matches[0].OppScore)
}

func TestIngestIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg, op := ingestSetup(t)

	_, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Rows)

	var n int64
	require.NoError(t, op.DB().Table("football_stats").Count(&n).Error)
	assert.EqualValues(t, 3, n, "reprocessing must not duplicate rows")
}

func TestIngestDaysBack(t *testing.T) {
	ctx := context.Background()
	cfg, op := ingestSetup(t)
	cfg.Ingest.DaysBack = 30

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)

	// Both seeded files are dated well outside a 30-day window.
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)
}

func TestIngestBadFileDoesNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	cfg, op := ingestSetup(t)

	bad := writeStatsFile(t, cfg.Ingest.StatsDir,
		"football", "Super League", "2025", "March", "16",
		"Α vs Β~~~1-1.csv")
	require.NoError(t, os.WriteFile(bad, []byte(footballCSV), 0o644))

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
}

func TestIngestNotConnected(t *testing.T) {
	cfg := config.New(config.OptHomeDir(t.TempDir()))
	op := iodb.NewSQLiteOperator()

	_, err := ioingest.New(cfg, op).Ingest(context.Background())
	assert.Error(t, err)
}
