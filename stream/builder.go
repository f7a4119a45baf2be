package stream

import (
	"fmt"

	"github.com/signadot/tony-format/go-compose/debug"
	"github.com/signadot/tony-format/go-compose/ir"
)

// Builder accumulates events into an ir.Document.
//
// A Builder is reusable: after ProcessEvent reports completion, TakeDocument
// hands over the document and returns the Builder to its idle state.
type Builder struct {
	opts *buildOpts

	state  *ir.DocumentState
	inDoc  bool
	single bool
	done   bool

	stack   []nodeFrame
	root    *ir.Node
	anchors map[string]*ir.Node
}

// nodeFrame is an open collection; for mappings, key holds a key waiting for
// its value.
type nodeFrame struct {
	node *ir.Node
	key  *ir.Node
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...BuildOption) *Builder {
	bOpts := &buildOpts{mergeKeys: true}
	for _, opt := range opts {
		opt(bOpts)
	}
	return &Builder{
		opts:    bOpts,
		anchors: map[string]*ir.Node{},
	}
}

// Resolve reports whether the builder resolves aliases.
func (b *Builder) Resolve() bool {
	return b.opts.resolve
}

// SetInDocument places b inside a document with the given state, so that
// node events are accepted without a preceding DocumentStart. If single is
// set, the document completes as soon as one root node is complete.
func (b *Builder) SetInDocument(state *ir.DocumentState, single bool) {
	b.Reset()
	b.state = state.Clone()
	if b.state == nil {
		b.state = &ir.DocumentState{}
	}
	b.inDoc = true
	b.single = single
}

// Reset discards any partial document and returns b to its idle state.
// Anchors seen so far are forgotten.
func (b *Builder) Reset() {
	b.state = nil
	b.inDoc = false
	b.single = false
	b.done = false
	b.stack = b.stack[:0]
	b.root = nil
	clear(b.anchors)
}

// Depth returns the number of open collections.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// ProcessEvent adds ev to the document under construction and reports
// whether the document is complete.
func (b *Builder) ProcessEvent(ev *Event) (bool, error) {
	if b.done {
		return true, fmt.Errorf("%w: %s after completed document", ErrBuild, ev.Type)
	}
	switch ev.Type {
	case EventStreamStart:
		return false, nil

	case EventStreamEnd:
		if b.inDoc {
			return false, fmt.Errorf("%w: stream end inside document", ErrBuild)
		}
		return false, nil

	case EventDocumentStart:
		if b.inDoc {
			return false, fmt.Errorf("%w: document start inside document", ErrBuild)
		}
		b.inDoc = true
		b.state = ev.Doc.Clone()
		if b.state == nil {
			b.state = &ir.DocumentState{}
		}
		b.state.StartImplicit = ev.Implicit
		return false, nil

	case EventDocumentEnd:
		if !b.inDoc || b.single {
			return false, fmt.Errorf("%w: unexpected document end", ErrBuild)
		}
		if len(b.stack) != 0 {
			return false, fmt.Errorf("%w: unclosed structures: %d remaining", ErrBuild, len(b.stack))
		}
		b.state.EndImplicit = ev.Implicit
		b.done = true
		return true, nil

	case EventMappingStart, EventSequenceStart:
		if err := b.checkNode(ev); err != nil {
			return false, err
		}
		node := &ir.Node{Type: ir.MappingType, Tag: ev.Tag, Anchor: ev.Anchor, Style: ev.Style}
		if ev.Type == EventSequenceStart {
			node.Type = ir.SequenceType
		}
		b.stack = append(b.stack, nodeFrame{node: node})
		return false, nil

	case EventMappingEnd, EventSequenceEnd:
		if len(b.stack) == 0 {
			return false, fmt.Errorf("%w: unexpected %s", ErrBuild, ev.Type)
		}
		top := b.stack[len(b.stack)-1]
		want := ir.MappingType
		if ev.Type == EventSequenceEnd {
			want = ir.SequenceType
		}
		if top.node.Type != want {
			return false, fmt.Errorf("%w: %s closes a %s", ErrBuild, ev.Type, top.node.Type)
		}
		if top.key != nil {
			return false, fmt.Errorf("%w: key %s without value", ErrBuild, top.key.Text())
		}
		b.stack = b.stack[:len(b.stack)-1]
		if want == ir.MappingType && b.opts.resolve && b.opts.mergeKeys {
			if err := top.node.ExpandMergeKeys(); err != nil {
				return false, err
			}
		}
		return b.add(top.node), nil

	case EventScalar:
		if err := b.checkNode(ev); err != nil {
			return false, err
		}
		node := &ir.Node{Type: ir.ScalarType, Tag: ev.Tag, Anchor: ev.Anchor, Style: ev.Style, String: ev.Value}
		return b.add(node), nil

	case EventAlias:
		if err := b.checkNode(ev); err != nil {
			return false, err
		}
		if !b.opts.resolve {
			return b.add(ir.FromAlias(ev.Value)), nil
		}
		target, ok := b.anchors[ev.Value]
		if !ok {
			return false, fmt.Errorf("%w: *%s", ErrUnknownAlias, ev.Value)
		}
		node := target.Clone()
		node.Anchor = ""
		node.Parent = nil
		node.ParentIndex = 0
		if debug.Build() {
			debug.Logf("resolved alias *%s to %v\n", ev.Value, node)
		}
		return b.add(node), nil
	}
	return false, nil
}

func (b *Builder) checkNode(ev *Event) error {
	if !b.inDoc {
		return fmt.Errorf("%w: %s outside document", ErrBuild, ev.Type)
	}
	if len(b.stack) == 0 && b.root != nil {
		return fmt.Errorf("%w: %s after document root", ErrBuild, ev.Type)
	}
	return nil
}

// add attaches a completed node to the innermost open collection, or makes
// it the root. It reports whether a single-node build is now complete.
func (b *Builder) add(node *ir.Node) bool {
	if node.Anchor != "" {
		b.anchors[node.Anchor] = node
	}
	if len(b.stack) == 0 {
		b.root = node
		if b.single {
			b.done = true
		}
		return b.done
	}
	top := &b.stack[len(b.stack)-1]
	switch top.node.Type {
	case ir.SequenceType:
		top.node.Append(node)
	case ir.MappingType:
		if top.key == nil {
			top.key = node
			return false
		}
		top.node.AppendPair(top.key, node)
		top.key = nil
	}
	return false
}

// TakeDocument returns the completed document and resets b. It returns nil
// if no document is complete.
func (b *Builder) TakeDocument() *ir.Document {
	if !b.done {
		return nil
	}
	doc := &ir.Document{Root: b.root, State: b.state}
	b.Reset()
	return doc
}
