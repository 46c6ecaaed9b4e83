package main

import (
	"fmt"

	"github.com/sportsense/statsdb/internal/ioconfig"
	"github.com/spf13/cobra"
)

func getConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML, after merging the config
file, STATSDB_* environment variables and built-in defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := ioconfig.Render(getConfig())
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}
}
