package compose

import (
	"io"

	"github.com/signadot/tony-format/go-compose/stream"
)

// Parse drives the Composer from p until the input is exhausted or a
// handler returns something other than Continue.
//
// If p resolves documents, each document is loaded whole and replayed
// between synthetic stream boundaries; otherwise events are dispatched as
// the parser produces them. In the latter case Parse returns Stop when the
// input held no events.
func (c *Composer) Parse(p Parser) (Result, error) {
	if c == nil || c.reg == nil || p == nil {
		return Error, ErrInvalid
	}
	if p.Resolve() {
		return c.parseResolved(p)
	}
	return c.parseRaw(p)
}

func (c *Composer) parseRaw(p Parser) (Result, error) {
	res := Stop
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			c.diag.Report(err)
			return Error, err
		}
		res, err = c.ProcessEvent(p, ev)
		p.Release(ev)
		if res != Continue {
			return res, err
		}
	}
}

func (c *Composer) parseResolved(p Parser) (Result, error) {
	it := stream.NewIterator()
	send := func(ev *stream.Event) (Result, error) {
		res, err := c.ProcessEvent(p, ev)
		it.Release(ev)
		return res, err
	}

	if res, err := send(it.StreamStart()); res != Continue {
		return res, err
	}
	for {
		doc, err := p.LoadDocument()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.diag.Report(err)
			return Error, err
		}
		if res, err := send(it.DocumentStart(doc)); res != Continue {
			return res, err
		}
		for ev := it.BodyNext(); ev != nil; ev = it.BodyNext() {
			if res, err := send(ev); res != Continue {
				return res, err
			}
		}
		if res, err := send(it.DocumentEnd()); res != Continue {
			return res, err
		}
	}
	return send(it.StreamEnd())
}
