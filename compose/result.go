package compose

import "fmt"

// Result is the outcome of dispatching an event.
type Result int

const (
	Continue Result = iota
	Stop
	Error
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case Error:
		return "error"
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// OK reports whether r is Continue or Stop.
func (r Result) OK() bool {
	return r == Continue || r == Stop
}
