package iodb

import (
	"context"
	"log/slog"

	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/sportsense/statsdb/pkg/statstore"
)

// manager implements statstore.SchemaManager on top of an Operator.
type manager struct {
	operator db.Operator
}

// NewSchemaManager creates a SchemaManager bound to the given operator.
func NewSchemaManager(op db.Operator) statstore.SchemaManager {
	return &manager{operator: op}
}

// Create creates the schema if absent using GORM AutoMigrate.
func (m *manager) Create(ctx context.Context) error {
	gormDB := m.operator.DB()
	if gormDB == nil {
		return NotConnectedError()
	}
	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Schema ready")
	return nil
}

// Reset drops all data and recreates the schema.
func (m *manager) Reset(ctx context.Context) error {
	if err := m.operator.DropAllTables(ctx); err != nil {
		return err
	}
	return m.Create(ctx)
}
