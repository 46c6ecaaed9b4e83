// Package errcode defines error codes and the typed error used across
// statsdb packages. Impure packages construct these errors through named
// constructor functions in their own errors.go files.
package errcode

import "fmt"

// ErrorCode identifies the failure category of a statsdb error.
type ErrorCode int

const (
	UnknownError ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBOpenError
	DBNotConnectedError
	DBTableCheckError
	DBDropTablesError

	// Schema errors
	SchemaCreateError

	// Ingest errors
	IngestStatsDirError
	IngestPathConventionError
	IngestMonthNameError
	IngestFilenameError
	IngestScoreError
	IngestCSVError
	IngestProcessedLogError
	IngestTeamUnresolvedError

	// Aggregate errors
	AggregateRebuildError

	// Query errors
	QueryNotFoundError
	QueryAmbiguousError
	QueryUnknownMetricError
)

// Error is the typed error carried across package boundaries. Msg is a
// user-facing description, Err the wrapped cause.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
