package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml/parser"
	"github.com/signadot/tony-format/go-compose/debug"
	"github.com/signadot/tony-format/go-compose/format"
	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

// Parser is a pull parser over one input stream.
type Parser struct {
	opts *parseOpts
	src  stream.EventReader

	free    []*stream.Event
	state   *ir.DocumentState
	builder *stream.Builder
	inDoc   bool
	done    bool
}

// New creates a Parser reading from r. YAML and JSON input is read in full
// before the first event is returned; event notation is read line by line.
func New(r io.Reader, opts ...ParseOption) (*Parser, error) {
	p := newParser(opts)
	if p.opts.format.IsEvents() {
		p.src = stream.NewNotationReader(r)
		return p, nil
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p, p.initYAML(d)
}

// NewBytes creates a Parser over d.
func NewBytes(d []byte, opts ...ParseOption) (*Parser, error) {
	p := newParser(opts)
	if p.opts.format.IsEvents() {
		p.src = stream.NewNotationReader(bytes.NewReader(d))
		return p, nil
	}
	return p, p.initYAML(d)
}

func newParser(opts []ParseOption) *Parser {
	pOpts := &parseOpts{format: format.YAMLFormat, mergeKeys: true}
	for _, f := range opts {
		f(pOpts)
	}
	return &Parser{opts: pOpts}
}

func (p *Parser) initYAML(d []byte) error {
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	p.src = &yamlSource{docs: file.Docs, alloc: p.alloc}
	return nil
}

func (p *Parser) alloc(t stream.EventType) *stream.Event {
	n := len(p.free)
	if n == 0 {
		return &stream.Event{Type: t}
	}
	ev := p.free[n-1]
	p.free = p.free[:n-1]
	ev.Type = t
	return ev
}

// Format returns the input format.
func (p *Parser) Format() format.Format {
	return p.opts.format
}

// Resolve reports whether LoadDocument resolves aliases.
func (p *Parser) Resolve() bool {
	return p.opts.resolve
}

// BuildOptions returns the options LoadDocument builds documents with.
func (p *Parser) BuildOptions() []stream.BuildOption {
	return p.opts.buildOpts()
}

// Next returns the next event, or io.EOF once the input is exhausted.
func (p *Parser) Next() (*stream.Event, error) {
	if p.done {
		return nil, io.EOF
	}
	ev, err := p.src.ReadEvent()
	if err == io.EOF {
		p.done = true
		return nil, io.EOF
	}
	if err != nil {
		p.done = true
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if ev.Type == stream.EventDocumentStart {
		p.state = ev.Doc.Clone()
		if p.state == nil {
			p.state = &ir.DocumentState{StartImplicit: ev.Implicit}
		}
	}
	if debug.Parse() {
		debug.Logf("parse %s %s\n", ev.Pos, ev)
	}
	return ev, nil
}

// Release hands ev back to p for reuse. ev must not be used afterwards.
func (p *Parser) Release(ev *stream.Event) {
	if ev == nil {
		return
	}
	ev.Reset()
	p.free = append(p.free, ev)
}

// DocumentState returns the state of the document most recently started,
// or nil before the first document.
func (p *Parser) DocumentState() *ir.DocumentState {
	return p.state
}

// LoadDocument reads events up to the end of the next document and returns
// it as a tree. It returns io.EOF when no document remains.
func (p *Parser) LoadDocument() (*ir.Document, error) {
	if p.builder == nil {
		p.builder = stream.NewBuilder(p.BuildOptions()...)
	}
	for {
		ev, err := p.Next()
		if err == io.EOF {
			if p.inDoc {
				p.inDoc = false
				p.builder.Reset()
				return nil, ErrUnexpected
			}
			return nil, io.EOF
		}
		if err != nil {
			p.inDoc = false
			p.builder.Reset()
			return nil, err
		}
		switch ev.Type {
		case stream.EventStreamStart:
			p.Release(ev)
			continue
		case stream.EventStreamEnd:
			p.Release(ev)
			if p.inDoc {
				p.inDoc = false
				p.builder.Reset()
				return nil, ErrUnexpected
			}
			return nil, io.EOF
		case stream.EventDocumentStart:
			p.inDoc = true
		}
		done, err := p.builder.ProcessEvent(ev)
		p.Release(ev)
		if err != nil {
			p.inDoc = false
			p.builder.Reset()
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if done {
			p.inDoc = false
			return p.builder.TakeDocument(), nil
		}
	}
}

// ParseDocuments parses all documents of d.
func ParseDocuments(d []byte, opts ...ParseOption) ([]*ir.Document, error) {
	p, err := NewBytes(d, opts...)
	if err != nil {
		return nil, err
	}
	var res []*ir.Document
	for {
		doc, err := p.LoadDocument()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
}

// Events returns every event of d, stream boundaries included.
func Events(d []byte, opts ...ParseOption) ([]*stream.Event, error) {
	p, err := NewBytes(d, opts...)
	if err != nil {
		return nil, err
	}
	var res []*stream.Event
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, ev)
	}
}
