package iologger

import (
	"fmt"

	"github.com/sportsense/statsdb/pkg/errcode"
)

// CreateLogFileError creates an error for a log file that could not be
// opened or created.
func CreateLogFileError(path string, err error) error {
	return &errcode.Error{
		Code: errcode.CreateLogFileError,
		Msg:  fmt.Sprintf("cannot create log file %q", path),
		Err:  err,
	}
}
