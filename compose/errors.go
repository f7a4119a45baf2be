package compose

import "errors"

var (
	ErrInvalid    = errors.New("invalid composer use")
	ErrNoConfig   = errors.New("no composer config")
	ErrNoHandler  = errors.New("no event handler")
	ErrComplexKey = errors.New("complex key error")
	ErrHandler    = errors.New("handler error")
)
