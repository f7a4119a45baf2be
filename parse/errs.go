package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrDirective  = fmt.Errorf("%w: bad directive", ErrParse)
	ErrUnexpected = fmt.Errorf("%w: unexpected end of input", ErrParse)
)
