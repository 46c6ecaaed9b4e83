package ioaggregate

import (
	"github.com/sportsense/statsdb/pkg/errcode"
)

func NotConnectedError() error {
	return &errcode.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "aggregate rebuild requires an established database connection",
	}
}

func RebuildError(err error) error {
	return &errcode.Error{
		Code: errcode.AggregateRebuildError,
		Msg:  "cannot rebuild aggregate tables",
		Err:  err,
	}
}
