// Package main provides the statsdb CLI application.
// statsdb manages the lifecycle of the sports statistics database.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
