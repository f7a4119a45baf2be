package compose

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

// fakeParser serves a fixed list of events or documents.
type fakeParser struct {
	events   []*stream.Event
	docs     []*ir.Document
	resolve  bool
	noMerge  bool
	state    *ir.DocumentState
	pulled   int
	released int
	loads    int
}

func (f *fakeParser) Next() (*stream.Event, error) {
	if f.pulled >= len(f.events) {
		return nil, io.EOF
	}
	ev := f.events[f.pulled]
	f.pulled++
	return ev, nil
}

func (f *fakeParser) Release(*stream.Event) { f.released++ }

func (f *fakeParser) DocumentState() *ir.DocumentState { return f.state }

func (f *fakeParser) LoadDocument() (*ir.Document, error) {
	f.loads++
	if len(f.docs) == 0 {
		return nil, io.EOF
	}
	doc := f.docs[0]
	f.docs = f.docs[1:]
	return doc, nil
}

func (f *fakeParser) Resolve() bool { return f.resolve }

func (f *fakeParser) BuildOptions() []stream.BuildOption {
	return []stream.BuildOption{stream.BuildResolve(f.resolve), stream.BuildMergeKeys(!f.noMerge)}
}

// recorder is a Handler that logs each dispatch.
type recorder struct {
	lines []string
	// line renders one dispatch; nil uses defaultLine
	line func(c *Composer, path *Path, ev *stream.Event) string
	// result picks the return for the i'th dispatch; nil continues
	result func(i int, ev *stream.Event) (Result, error)
}

func (r *recorder) ProcessEvent(c *Composer, path *Path, p Parser, ev *stream.Event) (Result, error) {
	line := r.line
	if line == nil {
		line = defaultLine
	}
	i := len(r.lines)
	r.lines = append(r.lines, line(c, path, ev))
	if r.result == nil {
		return Continue, nil
	}
	return r.result(i, ev)
}

func defaultLine(c *Composer, path *Path, ev *stream.Event) string {
	return fmt.Sprintf("%s %s", path.Text(), ev)
}

func newComposer(h Handler) *Composer {
	c, err := New(&Config{Handler: h})
	if err != nil {
		panic(err)
	}
	return c
}

func feed(c *Composer, p Parser, evs ...*stream.Event) (Result, error) {
	res := Continue
	for _, ev := range evs {
		var err error
		res, err = c.ProcessEvent(p, ev)
		if !res.OK() {
			return res, err
		}
	}
	return res, nil
}

// complexKeyEvents is {[1]: x}.
func complexKeyEvents() []*stream.Event {
	return []*stream.Event{
		stream.MappingStart(),
		stream.SequenceStart(), stream.Scalar("1"), stream.SequenceEnd(),
		stream.Scalar("x"),
		stream.MappingEnd(),
	}
}
