package iofs

import (
	"fmt"

	"github.com/sportsense/statsdb/pkg/errcode"
)

// CreateDirError creates an error for a directory that could not be made.
func CreateDirError(dir string, err error) error {
	return &errcode.Error{
		Code: errcode.CreateDirError,
		Msg:  fmt.Sprintf("cannot create directory %q", dir),
		Err:  err,
	}
}

// CopyFileError creates an error for a file that could not be written.
func CopyFileError(path string, err error) error {
	return &errcode.Error{
		Code: errcode.CopyFileError,
		Msg:  fmt.Sprintf("cannot write file %q", path),
		Err:  err,
	}
}
