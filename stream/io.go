package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EventReader provides events from a source.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EventSink receives events.
type EventSink interface {
	WriteEvent(*Event) error
}

// SliceEventReader reads events from a slice.
type SliceEventReader struct {
	events []*Event
}

// NewSliceEventReader creates an event reader over events.
func NewSliceEventReader(events ...*Event) *SliceEventReader {
	return &SliceEventReader{events: events}
}

// ReadEvent returns the next event, or io.EOF when the slice is exhausted.
func (r *SliceEventReader) ReadEvent() (*Event, error) {
	if len(r.events) == 0 {
		return nil, io.EOF
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

// NotationReader reads events written one per line in event notation.
// Blank lines and lines starting with '#' are skipped.
type NotationReader struct {
	sc   *bufio.Scanner
	line int
}

// NewNotationReader creates an event reader from r.
func NewNotationReader(r io.Reader) *NotationReader {
	return &NotationReader{sc: bufio.NewScanner(r)}
}

// ReadEvent parses the next event line. Returns io.EOF at end of input.
func (r *NotationReader) ReadEvent() (*Event, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimLeft(r.sc.Text(), " \t")
		if strings.TrimSpace(text) == "" || text[0] == '#' {
			continue
		}
		ev, err := ParseEvent(text)
		if err != nil {
			if serr, ok := err.(*Error); ok {
				serr.Line = r.line
			}
			return nil, err
		}
		ev.Pos = Pos{Line: r.line, Column: 1}
		return ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// NotationWriter writes events one per line in event notation.
type NotationWriter struct {
	w io.Writer
}

// NewNotationWriter creates an event sink writing to w.
func NewNotationWriter(w io.Writer) *NotationWriter {
	return &NotationWriter{w: w}
}

// WriteEvent writes ev followed by a newline.
func (w *NotationWriter) WriteEvent(ev *Event) error {
	_, err := fmt.Fprintln(w.w, ev.String())
	return err
}
