package compose

import (
	"fmt"

	"github.com/signadot/tony-format/go-compose/debug"
	"github.com/signadot/tony-format/go-compose/diag"
	"github.com/signadot/tony-format/go-compose/stream"
)

// Composer dispatches events to a Handler along with their Path.
//
// A Composer is not safe for concurrent use.
type Composer struct {
	cfg  Config
	diag *diag.Diag
	reg  *registry
}

// New creates a Composer. cfg must carry a Handler.
func New(cfg *Config) (*Composer, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if cfg.Handler == nil {
		return nil, ErrNoHandler
	}
	c := &Composer{cfg: *cfg, reg: newRegistry()}
	if cfg.Diag != nil {
		c.diag = cfg.Diag.Ref()
	}
	return c, nil
}

// Close releases the Diag reference and every Path. It is a no-op on a nil
// or closed Composer.
func (c *Composer) Close() {
	if c == nil || c.reg == nil {
		return
	}
	c.diag.Unref()
	c.diag = nil
	c.reg.destroy()
	c.reg = nil
}

func (c *Composer) Config() *Config {
	if c == nil {
		return nil
	}
	return &c.cfg
}

func (c *Composer) UserData() any {
	if c == nil {
		return nil
	}
	return c.cfg.UserData
}

func (c *Composer) Diag() *diag.Diag {
	if c == nil {
		return nil
	}
	return c.diag
}

// Paths returns the number of live Paths: 1 at rest, plus one for every
// collection key being read.
func (c *Composer) Paths() int {
	if c == nil || c.reg == nil {
		return 0
	}
	return c.reg.len()
}

// Root returns the root Path.
func (c *Composer) Root() *Path {
	if c == nil || c.reg == nil {
		return nil
	}
	return c.reg.root()
}

// ProcessEvent updates the root Path with ev and dispatches it. The event
// remains owned by the caller.
func (c *Composer) ProcessEvent(p Parser, ev *stream.Event) (Result, error) {
	if c == nil || c.reg == nil || p == nil || ev == nil {
		return Error, ErrInvalid
	}
	return c.processEvent(c.reg.root(), p, ev)
}

func (c *Composer) processEvent(path *Path, p Parser, ev *stream.Event) (Result, error) {
	t := ev.Type
	if t.IsBoundary() {
		return c.dispatch(path, p, ev)
	}
	isStart := t.IsCollectionStart() || t.IsAtomic()
	isEnd := t.IsCollectionEnd() || t.IsAtomic()
	if !isStart && !isEnd {
		return Continue, nil
	}

	last := path.Last()
	if last.AccumulatingComplexKey() {
		return c.feedComplexKey(path, last, p, ev)
	}
	if t.IsCollectionStart() && last.AwaitingKey() {
		return c.startComplexKey(path, last, p, ev)
	}
	if isStart && last.IsSequence() {
		last.advance()
	}

	switch {
	case t.IsCollectionStart():
		path.push(t == stream.EventMappingStart)
	case t.IsCollectionEnd():
		if last == nil {
			return Error, fmt.Errorf("%w: %s with no open collection", ErrInvalid, t)
		}
		if last.IsMapping() != (t == stream.EventMappingEnd) {
			return Error, fmt.Errorf("%w: %s in a %s", ErrInvalid, t, kindName(last))
		}
		last.clearState()
	default:
		if last.AwaitingKey() {
			last.setScalarKey(ev)
		}
	}

	res, err := c.dispatch(path, p, ev)
	if res == Error {
		return Error, err
	}
	stop := res == Stop

	if t.IsCollectionEnd() {
		path.pop()
	}
	if isEnd {
		if last := path.Last(); last.IsMapping() {
			if !last.awaitKey {
				last.clearState()
				last.awaitKey = true
			} else {
				last.awaitKey = false
			}
		}
	}
	return result(stop), nil
}

// startComplexKey begins reading a collection key of the mapping last and
// delivers ev on a new Path spawned for it.
func (c *Composer) startComplexKey(path *Path, last *Component, p Parser, ev *stream.Event) (Result, error) {
	if path.builder == nil {
		path.builder = stream.NewBuilder(p.BuildOptions()...)
	}
	path.builder.SetInDocument(p.DocumentState(), true)
	done, err := path.builder.ProcessEvent(ev)
	if err == nil && done {
		err = fmt.Errorf("%w: key completed on %s", stream.ErrBuild, ev.Type)
	}
	if err != nil {
		return c.keyError(err)
	}
	last.isComplexKey = true
	last.accumulating = true
	last.complexKey = nil
	last.complexKeyComplete = false

	sub := c.reg.add(path)
	if debug.Keys() {
		debug.Logf("key start %s: path %d spawned from %d\n", path.Text(), sub.id, path.id)
	}
	res, err := c.processEvent(sub, p, ev)
	if res == Error {
		return Error, err
	}
	return result(res == Stop), nil
}

// feedComplexKey delivers ev on the Path reading the key of last and adds it
// to the key document, recording the key once it is complete.
func (c *Composer) feedComplexKey(path *Path, last *Component, p Parser, ev *stream.Event) (Result, error) {
	sub := c.reg.next(path)
	if sub == nil {
		return Error, fmt.Errorf("%w: no path for key of %s", ErrInvalid, path.Text())
	}
	res, err := c.processEvent(sub, p, ev)
	if res == Error {
		return Error, err
	}
	stop := res == Stop

	done, err := path.builder.ProcessEvent(ev)
	if err != nil {
		return c.keyError(err)
	}
	if !done {
		return result(stop), nil
	}
	doc := path.builder.TakeDocument()
	last.isComplexKey = true
	last.accumulating = false
	last.complexKey = doc
	last.hasKey = true
	last.awaitKey = false
	last.complexKeyComplete = true
	last.root = false
	c.reg.popTail()
	if debug.Keys() {
		debug.Logf("key done %s: %v\n", path.Text(), doc)
	}
	return result(stop), nil
}

func (c *Composer) keyError(err error) (Result, error) {
	err = fmt.Errorf("%w: %w", ErrComplexKey, err)
	c.diag.Report(err)
	return Error, err
}

func (c *Composer) dispatch(path *Path, p Parser, ev *stream.Event) (Result, error) {
	if debug.Events() {
		debug.Logf("event %s %s\n", path.Text(), ev)
	}
	res, err := c.cfg.Handler.ProcessEvent(c, path, p, ev)
	switch {
	case err != nil:
		return Error, err
	case res == Error:
		return Error, fmt.Errorf("%w: %s returned without an error", ErrHandler, ev.Type)
	case res == Stop:
		return Stop, nil
	}
	return Continue, nil
}

func result(stop bool) Result {
	if stop {
		return Stop
	}
	return Continue
}

func kindName(c *Component) string {
	if c.IsMapping() {
		return "mapping"
	}
	return "sequence"
}
