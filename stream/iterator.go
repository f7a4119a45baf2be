package stream

import (
	"github.com/signadot/tony-format/go-compose/ir"
)

// Iterator replays documents as events.
//
// Events returned by an Iterator may be handed back with Release once the
// caller is done with them; released events are reused.
type Iterator struct {
	doc     *ir.Document
	stack   []iterFrame
	started bool
	free    []*Event
}

type iterFrame struct {
	node *ir.Node
	i    int
	// for mappings: the key at i has been emitted, the value has not
	valueNext bool
}

// NewIterator creates an Iterator.
func NewIterator() *Iterator {
	return &Iterator{}
}

func (it *Iterator) alloc(t EventType) *Event {
	n := len(it.free)
	if n == 0 {
		return &Event{Type: t}
	}
	ev := it.free[n-1]
	it.free = it.free[:n-1]
	ev.Type = t
	return ev
}

// Release returns ev for reuse. ev must not be used afterwards.
func (it *Iterator) Release(ev *Event) {
	if ev == nil {
		return
	}
	ev.Reset()
	it.free = append(it.free, ev)
}

// StreamStart returns a synthetic StreamStart event.
func (it *Iterator) StreamStart() *Event {
	return it.alloc(EventStreamStart)
}

// StreamEnd returns a synthetic StreamEnd event.
func (it *Iterator) StreamEnd() *Event {
	return it.alloc(EventStreamEnd)
}

// DocumentStart positions the iterator at the start of doc's body and
// returns a synthetic DocumentStart event for it.
func (it *Iterator) DocumentStart(doc *ir.Document) *Event {
	it.doc = doc
	it.stack = it.stack[:0]
	it.started = false
	ev := it.alloc(EventDocumentStart)
	if doc != nil && doc.State != nil {
		ev.Doc = doc.State.Clone()
		ev.Implicit = doc.State.StartImplicit
	}
	return ev
}

// DocumentEnd returns a synthetic DocumentEnd event for the current document
// and detaches the iterator from it.
func (it *Iterator) DocumentEnd() *Event {
	ev := it.alloc(EventDocumentEnd)
	if it.doc != nil && it.doc.State != nil {
		ev.Implicit = it.doc.State.EndImplicit
	}
	it.doc = nil
	it.stack = it.stack[:0]
	return ev
}

// BodyNext returns the next event of the current document's body, or nil
// when the body is exhausted.
func (it *Iterator) BodyNext() *Event {
	if it.doc == nil {
		return nil
	}
	if !it.started {
		it.started = true
		if it.doc.Root == nil {
			return nil
		}
		return it.enter(it.doc.Root)
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.node
		if top.i < len(n.Values) {
			if n.Type == ir.MappingType && !top.valueNext {
				top.valueNext = true
				return it.enter(n.Fields[top.i])
			}
			top.valueNext = false
			v := n.Values[top.i]
			top.i++
			return it.enter(v)
		}
		it.stack = it.stack[:len(it.stack)-1]
		if n.Type == ir.MappingType {
			return it.alloc(EventMappingEnd)
		}
		return it.alloc(EventSequenceEnd)
	}
	return nil
}

// enter returns the event that begins node, pushing a frame for
// collections.
func (it *Iterator) enter(node *ir.Node) *Event {
	var ev *Event
	switch node.Type {
	case ir.MappingType:
		ev = it.alloc(EventMappingStart)
		it.stack = append(it.stack, iterFrame{node: node})
	case ir.SequenceType:
		ev = it.alloc(EventSequenceStart)
		it.stack = append(it.stack, iterFrame{node: node})
	case ir.AliasType:
		ev = it.alloc(EventAlias)
		ev.Value = node.String
		return ev
	default:
		ev = it.alloc(EventScalar)
		ev.Value = node.String
	}
	ev.Tag = node.Tag
	ev.Anchor = node.Anchor
	ev.Style = node.Style
	return ev
}

// Events returns the full event sequence for doc, boundary events included.
func Events(doc *ir.Document) []*Event {
	it := NewIterator()
	res := []*Event{it.DocumentStart(doc)}
	for ev := it.BodyNext(); ev != nil; ev = it.BodyNext() {
		res = append(res, ev)
	}
	return append(res, it.DocumentEnd())
}
