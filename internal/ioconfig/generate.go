package ioconfig

import (
	"fmt"

	"github.com/sportsense/statsdb/pkg/config"
	"gopkg.in/yaml.v3"
)

// Render marshals the effective configuration to YAML, for display by the
// `statsdb config` command.
func Render(cfg *config.Config) (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}
