package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sportsense/statsdb/internal/ioconfig"
	"github.com/sportsense/statsdb/internal/iofs"
	"github.com/sportsense/statsdb/internal/iologger"
	pkgconfig "github.com/sportsense/statsdb/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statsdb",
		Short: "statsdb manages the sports statistics database lifecycle",
		Long: `statsdb is a CLI tool for managing the complete lifecycle of the sports
statistics SQLite database, from schema creation through CSV ingestion,
aggregation, and querying.

The tool provides four main phases:
  - init: Create the database schema
  - ingest: Import scraped CSV stat files and rebuild aggregates
  - clear: Drop all data and recreate the schema
  - query: Look up players, teams, averages and fixtures

Configuration precedence (highest to lowest):
  1. CLI flags (--days-back, etc.)
  2. Environment variables (STATSDB_*)
  3. Config file (~/.config/statsdb/config.yaml)
  4. Built-in defaults

Environment Variables:
  All configuration can be set via STATSDB_* environment variables.
  Nested fields use underscores (database.path → STATSDB_DATABASE_PATH).

  Examples:
    STATSDB_DATABASE_PATH           SQLite database file
    STATSDB_INGEST_STATS_DIR        Root of the scraped CSV tree
    STATSDB_INGEST_DAYS_BACK        Ingestion window in days (0 = all)
    STATSDB_LOG_LEVEL               Log level (debug/info/warn/error)

  See 'go doc github.com/sportsense/statsdb/pkg/config' for complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env in the working directory, lowest-friction way
			// to configure scraper + store together.
			_ = godotenv.Load()

			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to find home directory: %w", err)
			}

			if err = iofs.EnsureDirs(homeDir); err != nil {
				return fmt.Errorf("failed to prepare app directories: %w", err)
			}
			if cfgFile == "" {
				if err = iofs.EnsureConfigFile(homeDir); err != nil {
					// Only warn, don't fail - can use defaults
					fmt.Printf("Warning: could not generate config file: %v\n", err)
				}
			}

			result, err := ioconfig.Load(cfgFile, homeDir)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			if err = iologger.Init(
				pkgconfig.LogDir(homeDir), cfg.Log, true,
			); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			switch result.Source {
			case "file":
				fmt.Printf("Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Println("Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Println("Using built-in defaults (no config file)")
			}

			return nil
		},
	}

	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/statsdb/config.yaml)")

	rootCmd.Flags().BoolP("version", "V", false, "version for statsdb")

	rootCmd.AddCommand(getInitCmd())
	rootCmd.AddCommand(getIngestCmd())
	rootCmd.AddCommand(getClearCmd())
	rootCmd.AddCommand(getQueryCmd())
	rootCmd.AddCommand(getConfigCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *pkgconfig.Config {
	return cfg
}
