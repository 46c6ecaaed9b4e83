// Package iodb implements the db.Operator interface for the embedded
// SQLite store. This is an impure I/O package.
package iodb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/sportsense/statsdb/pkg/config"
	"github.com/sportsense/statsdb/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// operator implements db.Operator over a single SQLite file.
type operator struct {
	gormDB *gorm.DB
	path   string
}

// NewSQLiteOperator creates an Operator for the embedded SQLite store.
func NewSQLiteOperator() db.Operator {
	return &operator{}
}

// Connect opens or creates the database file with WAL journaling, a busy
// timeout and foreign keys enforced.
func (o *operator) Connect(ctx context.Context, cfg *config.Config) error {
	path := cfg.DatabasePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return OpenError(path, err)
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		path, cfg.Database.BusyTimeoutMS,
	)

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return OpenError(path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return OpenError(path, err)
	}
	// Single writer: SQLite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		return OpenError(path, err)
	}

	o.gormDB = gormDB
	o.path = path
	slog.Debug("Opened database", "path", path)

	return nil
}

// Close closes the underlying database handle.
func (o *operator) Close() error {
	if o.gormDB == nil {
		return nil
	}
	sqlDB, err := o.gormDB.DB()
	if err != nil {
		return err
	}
	o.gormDB = nil
	return sqlDB.Close()
}

// DB returns the gorm handle, or nil before Connect.
func (o *operator) DB() *gorm.DB {
	return o.gormDB
}

// HasTables checks if the database file contains any tables.
func (o *operator) HasTables(ctx context.Context) (bool, error) {
	if o.gormDB == nil {
		return false, NotConnectedError()
	}
	tables, err := o.gormDB.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops every table in the database.
func (o *operator) DropAllTables(ctx context.Context) error {
	if o.gormDB == nil {
		return NotConnectedError()
	}
	handle := o.gormDB.WithContext(ctx)
	tables, err := handle.Migrator().GetTables()
	if err != nil {
		return TableCheckError(err)
	}
	for _, table := range tables {
		if err = handle.Migrator().DropTable(table); err != nil {
			return DropTablesError(table, err)
		}
	}
	slog.Debug("Dropped all tables", "count", len(tables))
	return nil
}
