package ir

import "errors"

var (
	ErrMerge = errors.New("merge key error")
)
