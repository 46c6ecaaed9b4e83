// Package db defines the interface for basic database management
// operations of the embedded store.
package db

import (
	"context"

	"github.com/sportsense/statsdb/pkg/config"
	"gorm.io/gorm"
)

// Operator provides connection lifecycle management for the embedded
// SQLite file and exposes the *gorm.DB handle for the lifecycle
// components (SchemaManager, Ingestor, Aggregator, Querier) to execute
// their specialized operations internally.
//
// Design rationale:
//   - Keeps the interface minimal to avoid bloat with mixed semantics
//   - DB() enables components to run transactions and raw grouped SQL
//   - There is no pooling: the store is single-node, single-writer, and
//     components share the one handle
type Operator interface {
	// Connect opens (or creates) the SQLite database file.
	Connect(context.Context, *config.Config) error

	// Close closes the database handle.
	Close() error

	// DB returns the underlying *gorm.DB, or nil before Connect.
	DB() *gorm.DB

	// HasTables checks if the database file contains any tables.
	// Used to decide whether `clear` should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops every table in the database. Used by the
	// store-clear operation before re-creating the schema.
	DropAllTables(ctx context.Context) error
}
