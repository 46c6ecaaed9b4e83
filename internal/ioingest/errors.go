package ioingest

import (
	"fmt"

	"github.com/sportsense/statsdb/pkg/errcode"
)

// NotConnectedError creates an error for an ingest attempted without a
// database connection.
func NotConnectedError() error {
	return &errcode.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "ingest attempted without database connection",
	}
}

// StatsDirError creates an error for an unreadable stats directory.
func StatsDirError(dir string, err error) error {
	return &errcode.Error{
		Code: errcode.IngestStatsDirError,
		Msg:  fmt.Sprintf("cannot read stats directory %q", dir),
		Err:  err,
	}
}

// PathConventionError creates an error for a file outside the
// <sport>/<competition>/<year>/<month>/<day> convention.
func PathConventionError(path string) error {
	return &errcode.Error{
		Code: errcode.IngestPathConventionError,
		Msg:  fmt.Sprintf("path %q does not follow the stats tree convention", path),
	}
}

// MonthNameError creates an error for an unrecognized month segment.
func MonthNameError(path, month string) error {
	return &errcode.Error{
		Code: errcode.IngestMonthNameError,
		Msg:  fmt.Sprintf("unrecognized month %q in %q", month, path),
	}
}

// FilenameError creates an error for a file name without the score
// separator or the "vs" team split.
func FilenameError(name string) error {
	return &errcode.Error{
		Code: errcode.IngestFilenameError,
		Msg:  fmt.Sprintf("file name %q does not follow '<home> vs <away>~~~<hs>-<as>.csv'", name),
	}
}

// ScoreError creates an error for a score suffix that does not parse as
// two integers.
func ScoreError(name, score string) error {
	return &errcode.Error{
		Code: errcode.IngestScoreError,
		Msg:  fmt.Sprintf("score suffix %q in %q is not '<int>-<int>'", score, name),
	}
}

// CSVError creates an error for an unreadable or malformed CSV file.
func CSVError(path string, err error) error {
	return &errcode.Error{
		Code: errcode.IngestCSVError,
		Msg:  fmt.Sprintf("cannot parse CSV %q", path),
		Err:  err,
	}
}

// ProcessedLogError creates an error for a processed-files log that could
// not be read or written.
func ProcessedLogError(path string, err error) error {
	return &errcode.Error{
		Code: errcode.IngestProcessedLogError,
		Msg:  fmt.Sprintf("cannot use processed-files log %q", path),
		Err:  err,
	}
}
