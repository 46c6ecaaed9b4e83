package ioquery

import (
	"github.com/sportsense/statsdb/pkg/errcode"
)

func NotConnectedError() error {
	return &errcode.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "queries require an established database connection",
	}
}
