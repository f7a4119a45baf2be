package stream

import (
	"fmt"

	"github.com/signadot/tony-format/go-compose/ir"
)

// Event represents one parse event.
type Event struct {
	Type EventType

	// Tag and Anchor apply to MappingStart, SequenceStart and Scalar.
	Tag    string
	Anchor string

	// Value is the scalar text, or the anchor an Alias refers to.
	Value string

	// Style is the scalar style, or block/flow for collection starts.
	Style ir.Style

	// Implicit is set on DocumentStart/DocumentEnd when the "---" or "..."
	// marker was absent.
	Implicit bool

	// Doc is the document state in effect, on DocumentStart only.
	Doc *ir.DocumentState

	Pos Pos
}

// Pos is a position in the parsed input. Synthetic events have the zero Pos.
type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Clone returns a copy of e that shares nothing mutable with it.
func (e *Event) Clone() *Event {
	res := *e
	res.Doc = e.Doc.Clone()
	return &res
}

// Reset clears e for reuse.
func (e *Event) Reset() {
	*e = Event{}
}

// EventType represents the type of a parse event.
type EventType int

const (
	EventNone EventType = iota
	EventStreamStart
	EventStreamEnd
	EventDocumentStart
	EventDocumentEnd
	EventMappingStart
	EventMappingEnd
	EventSequenceStart
	EventSequenceEnd
	EventScalar
	EventAlias
)

func (t EventType) String() string {
	switch t {
	case EventStreamStart:
		return "StreamStart"
	case EventStreamEnd:
		return "StreamEnd"
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventMappingStart:
		return "MappingStart"
	case EventMappingEnd:
		return "MappingEnd"
	case EventSequenceStart:
		return "SequenceStart"
	case EventSequenceEnd:
		return "SequenceEnd"
	case EventScalar:
		return "Scalar"
	case EventAlias:
		return "Alias"
	default:
		return "None"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"None":          EventNone,
		"StreamStart":   EventStreamStart,
		"StreamEnd":     EventStreamEnd,
		"DocumentStart": EventDocumentStart,
		"DocumentEnd":   EventDocumentEnd,
		"MappingStart":  EventMappingStart,
		"MappingEnd":    EventMappingEnd,
		"SequenceStart": EventSequenceStart,
		"SequenceEnd":   EventSequenceEnd,
		"Scalar":        EventScalar,
		"Alias":         EventAlias,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}

// IsBoundary returns true for stream and document start/end events.
func (t EventType) IsBoundary() bool {
	switch t {
	case EventStreamStart, EventStreamEnd, EventDocumentStart, EventDocumentEnd:
		return true
	default:
		return false
	}
}

func (t EventType) IsCollectionStart() bool {
	return t == EventMappingStart || t == EventSequenceStart
}

func (t EventType) IsCollectionEnd() bool {
	return t == EventMappingEnd || t == EventSequenceEnd
}

// IsAtomic returns true for scalars and aliases.
func (t EventType) IsAtomic() bool {
	return t == EventScalar || t == EventAlias
}

// IsNode returns true if this event starts a node: a collection start, a
// scalar or an alias.
func (e *Event) IsNode() bool {
	return e.Type.IsCollectionStart() || e.Type.IsAtomic()
}

// StreamStart returns a new StreamStart event.
func StreamStart() *Event { return &Event{Type: EventStreamStart} }

// StreamEnd returns a new StreamEnd event.
func StreamEnd() *Event { return &Event{Type: EventStreamEnd} }

// DocumentStart returns a new DocumentStart event for state, which may be
// nil.
func DocumentStart(state *ir.DocumentState) *Event {
	ev := &Event{Type: EventDocumentStart, Doc: state.Clone()}
	if state != nil {
		ev.Implicit = state.StartImplicit
	}
	return ev
}

// DocumentEnd returns a new DocumentEnd event.
func DocumentEnd(implicit bool) *Event {
	return &Event{Type: EventDocumentEnd, Implicit: implicit}
}

// MappingStart returns a new MappingStart event.
func MappingStart() *Event { return &Event{Type: EventMappingStart} }

// MappingEnd returns a new MappingEnd event.
func MappingEnd() *Event { return &Event{Type: EventMappingEnd} }

// SequenceStart returns a new SequenceStart event.
func SequenceStart() *Event { return &Event{Type: EventSequenceStart} }

// SequenceEnd returns a new SequenceEnd event.
func SequenceEnd() *Event { return &Event{Type: EventSequenceEnd} }

// Scalar returns a new plain Scalar event.
func Scalar(v string) *Event {
	return &Event{Type: EventScalar, Value: v, Style: ir.PlainStyle}
}

// Alias returns a new Alias event referring to anchor.
func Alias(anchor string) *Event {
	return &Event{Type: EventAlias, Value: anchor}
}

func (e *Event) WithTag(tag string) *Event {
	e.Tag = tag
	return e
}

func (e *Event) WithAnchor(anchor string) *Event {
	e.Anchor = anchor
	return e
}

func (e *Event) WithStyle(style ir.Style) *Event {
	e.Style = style
	return e
}
