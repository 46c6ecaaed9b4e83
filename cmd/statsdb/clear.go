package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/spf13/cobra"
)

var (
	forceClear bool
)

func getClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop all data and recreate the schema",
		Long: `Drop all data from the statistics database and recreate the schema.

This command:
  1. Prompts for confirmation (unless --force is given)
  2. Drops every table and recreates the empty schema
  3. Truncates the processed-files log, so the next ingest starts over

Use --force to skip confirmation.

Examples:
  statsdb clear
  statsdb clear --force`,
		RunE: runClear,
	}

	cmd.Flags().BoolVar(&forceClear, "force", false,
		"drop all data without prompting (destructive)")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	if !forceClear {
		fmt.Println("\n⚠️  Warning: this drops ALL statistics data.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			fmt.Println("Aborted. No changes made to the database.")
			return nil
		}
	}

	var op db.Operator = iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer op.Close()

	if err := iodb.NewSchemaManager(op).Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset schema: %w", err)
	}
	fmt.Println("✓ All tables dropped and recreated")

	// Truncating the log means the next ingest re-imports everything.
	logPath := cfg.ProcessedLogPath()
	if err := os.Truncate(logPath, 0); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to truncate processed-files log: %w", err)
	}
	fmt.Printf("✓ Processed-files log cleared: %s\n", logPath)

	return nil
}
