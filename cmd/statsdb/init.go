package main

import (
	"context"
	"fmt"

	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/spf13/cobra"
)

func getInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database schema",
		Long: `Create the statistics database schema.

This command:
  1. Opens (or creates) the SQLite database file
  2. Creates all entity, fact and aggregate tables

Running init against an existing database is safe: tables that already
exist are left untouched.

Examples:
  statsdb init
  statsdb init --config custom.yaml`,
		RunE: runInit,
	}

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	var op db.Operator = iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer op.Close()

	fmt.Printf("Opened database: %s\n", cfg.DatabasePath())

	if err := iodb.NewSchemaManager(op).Create(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Println("✓ Schema ready")
	return nil
}
