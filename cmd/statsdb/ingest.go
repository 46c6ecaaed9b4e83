package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sportsense/statsdb/internal/ioaggregate"
	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/internal/ioingest"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/spf13/cobra"
)

var (
	daysBack    int
	skipRebuild bool
)

func getIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Import scraped CSV stat files",
		Long: `Import scraped CSV stat files into the database.

This command:
  1. Walks the stats directory for match CSV files
  2. Skips files already recorded in the processed-files log
  3. Imports each remaining file in its own transaction
  4. Rebuilds the per-player aggregate tables

A file that fails to parse is logged and skipped; the batch continues.
Re-running ingest is safe: processed files are never imported twice.

Examples:
  statsdb ingest
  statsdb ingest --days-back 7
  statsdb ingest --skip-rebuild`,
		RunE: runIngest,
	}

	cmd.Flags().IntVar(&daysBack, "days-back", -1,
		"only ingest files whose match date is within N days (0 = everything)")
	cmd.Flags().BoolVar(&skipRebuild, "skip-rebuild", false,
		"do not rebuild aggregate tables after the batch")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()
	if daysBack >= 0 {
		cfg.Ingest.DaysBack = daysBack
	}

	var op db.Operator = iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer op.Close()

	// Schema creation is idempotent, so a fresh database just works.
	if err := iodb.NewSchemaManager(op).Create(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	summary, err := ioingest.New(cfg, op).Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Batch %s: %s files processed, %s skipped, %s failed, %s rows in %v\n",
		summary.BatchID,
		humanize.Comma(int64(summary.Processed)),
		humanize.Comma(int64(summary.Skipped)),
		humanize.Comma(int64(summary.Failed)),
		humanize.Comma(int64(summary.Rows)),
		summary.Duration.Round(time.Millisecond),
	)

	if skipRebuild {
		return nil
	}
	if err = ioaggregate.New(op).Rebuild(ctx); err != nil {
		return fmt.Errorf("aggregate rebuild failed: %w", err)
	}
	fmt.Println("✓ Aggregates rebuilt")
	return nil
}
