package compose

import (
	"github.com/signadot/tony-format/go-compose/diag"
	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

// Parser is the event source a Composer reads from.
type Parser interface {
	// Next returns the next event, or io.EOF when none remain.
	Next() (*stream.Event, error)
	// Release hands back an event obtained from Next.
	Release(*stream.Event)
	// DocumentState returns the state of the current document.
	DocumentState() *ir.DocumentState
	// LoadDocument returns the next complete document, or io.EOF.
	LoadDocument() (*ir.Document, error)
	// Resolve reports whether documents should be loaded with aliases
	// resolved and then replayed.
	Resolve() bool
	// BuildOptions returns the options used to build documents, which
	// collection keys are built with as well.
	BuildOptions() []stream.BuildOption
}

// Handler receives every event together with the Path it occurred on.
//
// Neither path nor ev may be retained after ProcessEvent returns. An Error
// result must come with a non-nil error.
type Handler interface {
	ProcessEvent(c *Composer, path *Path, p Parser, ev *stream.Event) (Result, error)
}

type HandlerFunc func(c *Composer, path *Path, p Parser, ev *stream.Event) (Result, error)

func (f HandlerFunc) ProcessEvent(c *Composer, path *Path, p Parser, ev *stream.Event) (Result, error) {
	return f(c, path, p, ev)
}

type Config struct {
	Handler Handler
	// Diag, if set, receives builder and parser failures. The Composer
	// holds a reference until Close.
	Diag *diag.Diag
	// UserData is not interpreted by the Composer.
	UserData any
}
