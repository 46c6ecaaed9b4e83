package iodb

import (
	"fmt"

	"github.com/sportsense/statsdb/pkg/errcode"
)

// OpenError creates an error for a database file that could not be opened.
func OpenError(path string, err error) error {
	return &errcode.Error{
		Code: errcode.DBOpenError,
		Msg:  fmt.Sprintf("cannot open database %q", path),
		Err:  err,
	}
}

// NotConnectedError creates an error for an operation attempted before
// Connect.
func NotConnectedError() error {
	return &errcode.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "not connected to database",
	}
}

// TableCheckError creates an error for a failed table listing.
func TableCheckError(err error) error {
	return &errcode.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "cannot list database tables",
		Err:  err,
	}
}

// DropTablesError creates an error for a table that could not be dropped.
func DropTablesError(table string, err error) error {
	return &errcode.Error{
		Code: errcode.DBDropTablesError,
		Msg:  fmt.Sprintf("cannot drop table %q", table),
		Err:  err,
	}
}

// CreateSchemaError creates an error for a failed schema migration.
func CreateSchemaError(err error) error {
	return &errcode.Error{
		Code: errcode.SchemaCreateError,
		Msg:  "cannot create schema",
		Err:  err,
	}
}
