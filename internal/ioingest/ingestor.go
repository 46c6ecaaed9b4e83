// Package ioingest implements the Ingestor interface: it walks the
// scraper's CSV tree, resolves entities, and writes fact rows, one
// transaction per file. This is an impure I/O package.
package ioingest

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sportsense/statsdb/pkg/config"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/greek"
	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/sportsense/statsdb/pkg/sport"
	"github.com/sportsense/statsdb/pkg/statstore"
	"gorm.io/gorm"
)

// ingestor implements statstore.Ingestor.
type ingestor struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates an Ingestor bound to the given store handle.
func New(cfg *config.Config, op db.Operator) statstore.Ingestor {
	return &ingestor{cfg: cfg, operator: op}
}

// Ingest processes every CSV file under the stats root that is not yet in
// the processed-files log. Files are handled sequentially in traversal
// order, each under its own transaction; per-file failures are logged and
// do not abort the batch.
func (p *ingestor) Ingest(ctx context.Context) (statstore.BatchSummary, error) {
	summary := statstore.BatchSummary{BatchID: uuid.NewString()}

	gormDB := p.operator.DB()
	if gormDB == nil {
		return summary, NotConnectedError()
	}

	startTime := time.Now()
	log := slog.With("batch_id", summary.BatchID)
	log.Info("Starting stats ingestion", "stats_dir", p.cfg.Ingest.StatsDir)

	processed, err := openProcessedLog(p.cfg.ProcessedLogPath())
	if err != nil {
		return summary, err
	}
	defer processed.close()

	files, err := p.collectFiles()
	if err != nil {
		return summary, err
	}

	var cutoff time.Time
	if p.cfg.Ingest.DaysBack > 0 {
		cutoff = time.Now().UTC().
			AddDate(0, 0, -p.cfg.Ingest.DaysBack).
			Truncate(24 * time.Hour)
	}

	bar := pb.Full.Start(len(files))
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, file := range files {
		bar.Increment()

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if processed.contains(file) {
			summary.Skipped++
			log.Debug("Skipping processed file", "file", file)
			continue
		}

		info, err := parsePath(file)
		if err != nil {
			summary.Failed++
			log.Warn("Skipping unparsable file", "file", file, "error", err)
			continue
		}

		if !cutoff.IsZero() && info.Date.Before(cutoff) {
			summary.Skipped++
			log.Debug("Skipping file outside ingest window",
				"file", file, "date", greek.DatePath(info.Date))
			continue
		}

		rows, err := p.processFile(ctx, gormDB, info, file)
		if err != nil {
			summary.Failed++
			log.Warn("Failed to ingest file", "file", file, "error", err)
			continue
		}

		if err = processed.record(file); err != nil {
			return summary, err
		}
		summary.Processed++
		summary.Rows += rows
		log.Info("Ingested file", "file", filepath.Base(file),
			"sport", info.Sport, "rows", rows)
	}

	summary.Duration = time.Since(startTime)
	log.Info("Ingestion batch complete",
		"processed", humanize.Comma(int64(summary.Processed)),
		"skipped", humanize.Comma(int64(summary.Skipped)),
		"failed", humanize.Comma(int64(summary.Failed)),
		"rows", humanize.Comma(int64(summary.Rows)),
		"duration", summary.Duration.Round(time.Millisecond),
	)

	return summary, nil
}

// collectFiles gathers the absolute paths of all CSV files under the
// stats root, in traversal order.
func (p *ingestor) collectFiles() ([]string, error) {
	root := p.cfg.Ingest.StatsDir

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, StatsDirError(root, err)
	}
	return files, nil
}

// processFile converts one CSV file into persisted rows. The resolved
// entities, the match and its stat rows commit or roll back together.
func (p *ingestor) processFile(
	ctx context.Context, gormDB *gorm.DB, info fileInfo, path string,
) (int, error) {
	var rows int
	err := gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &resolver{tx: tx}

		sp, err := r.sport(info.Sport.String())
		if err != nil {
			return err
		}
		comp, err := r.competition(info.Competition, sp.ID)
		if err != nil {
			return err
		}
		home, err := r.team(info.HomeTeam, sp.ID, comp.ID)
		if err != nil {
			return err
		}
		away, err := r.team(info.AwayTeam, sp.ID, comp.ID)
		if err != nil {
			return err
		}
		match, err := r.match(info, sp.ID, comp.ID, home.ID, away.ID)
		if err != nil {
			return err
		}

		rows, err = p.ingestRows(tx, info, path, match.ID, home, away)
		return err
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}

// ingestRows reads the CSV body and writes one fact row per player line.
// Rows whose team cannot be resolved are skipped with a warning, never
// guessed.
func (p *ingestor) ingestRows(
	tx *gorm.DB, info fileInfo, path string, matchID uint,
	home, away schema.Team,
) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, CSVError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, CSVError(path, err)
	}
	index := newHeaderIndex(header)
	r := &resolver{tx: tx}

	var rows int
	for lineNum := 2; ; lineNum++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, CSVError(path, err)
		}

		row := csvRow{index: index, fields: fields}
		name := row.playerName()
		if name == "" {
			continue
		}

		team, ok := rowTeam(row.teamCell(), name, home, away)
		if !ok {
			slog.Warn("Skipping row with unresolved team",
				"file", filepath.Base(path), "line", lineNum, "player", name)
			continue
		}

		player, err := r.player(name, team.ID)
		if err != nil {
			return 0, err
		}

		switch info.Sport {
		case sport.Football:
			err = tx.Create(footballStats(matchID, player.ID, row)).Error
		case sport.Basketball:
			err = tx.Create(basketballStats(matchID, player.ID, row)).Error
		}
		if err != nil {
			return 0, err
		}
		rows++
	}
	return rows, nil
}
