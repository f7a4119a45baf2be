package stream

import (
	"errors"
	"strconv"
)

var (
	ErrBuild        = errors.New("document build error")
	ErrUnknownAlias = errors.New("unknown alias")
)

// Error represents an error reading the event notation.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return "line " + strconv.Itoa(e.Line) + ": " + e.Msg
	}
	return e.Msg
}
