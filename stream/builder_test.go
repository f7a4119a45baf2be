package stream

import (
	"errors"
	"testing"

	"github.com/signadot/tony-format/go-compose/ir"
)

func feed(t *testing.T, b *Builder, evs ...*Event) bool {
	t.Helper()
	done := false
	for i, ev := range evs {
		var err error
		done, err = b.ProcessEvent(ev)
		if err != nil {
			t.Fatalf("event %d (%s): %v", i, ev, err)
		}
		if done && i != len(evs)-1 {
			t.Fatalf("completed early at event %d (%s)", i, ev)
		}
	}
	return done
}

func TestBuilderDocument(t *testing.T) {
	b := NewBuilder()
	done := feed(t, b,
		StreamStart(),
		DocumentStart(&ir.DocumentState{StartImplicit: true}),
		MappingStart(),
		Scalar("a"), SequenceStart(), Scalar("1"), Scalar("2"), SequenceEnd(),
		SequenceStart(), Scalar("k"), SequenceEnd(), Scalar("v"),
		MappingEnd(),
		DocumentEnd(true),
	)
	if !done {
		t.Fatal("document not complete")
	}
	doc := b.TakeDocument()
	if got, want := doc.Text(), "{a: [1, 2], [k]: v}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !doc.State.StartImplicit || !doc.State.EndImplicit {
		t.Errorf("implicit markers not recorded: %+v", doc.State)
	}
	if b.TakeDocument() != nil {
		t.Errorf("second TakeDocument should return nil")
	}
}

func TestBuilderSingle(t *testing.T) {
	b := NewBuilder()
	b.SetInDocument(&ir.DocumentState{Version: "1.2"}, true)
	done := feed(t, b, SequenceStart(), Scalar("1"), SequenceEnd())
	if !done {
		t.Fatal("single node not complete")
	}
	doc := b.TakeDocument()
	if doc.Text() != "[1]" {
		t.Errorf("got %s", doc.Text())
	}
	if doc.State.Version != "1.2" {
		t.Errorf("state not seeded: %+v", doc.State)
	}

	// reusable after take
	b.SetInDocument(nil, true)
	if !feed(t, b, MappingStart(), Scalar("a"), Scalar("b"), MappingEnd()) {
		t.Fatal("second single node not complete")
	}
	if got := b.TakeDocument().Text(); got != "{a: b}" {
		t.Errorf("got %s", got)
	}
}

func TestBuilderAliases(t *testing.T) {
	evs := []*Event{
		DocumentStart(nil),
		MappingStart(),
		Scalar("base"), MappingStart().WithAnchor("b"), Scalar("x"), Scalar("1"), MappingEnd(),
		Scalar("ref"), Alias("b"),
		Scalar("merged"), MappingStart(), Scalar("<<"), Alias("b"), Scalar("y"), Scalar("2"), MappingEnd(),
		MappingEnd(),
		DocumentEnd(false),
	}

	raw := NewBuilder()
	feed(t, raw, evs...)
	if got, want := raw.TakeDocument().Text(), "{base: &b {x: 1}, ref: *b, merged: {<<: *b, y: 2}}"; got != want {
		t.Errorf("raw: got %s, want %s", got, want)
	}

	res := NewBuilder(BuildResolve(true))
	feed(t, res, evs...)
	if got, want := res.TakeDocument().Text(), "{base: &b {x: 1}, ref: {x: 1}, merged: {y: 2, x: 1}}"; got != want {
		t.Errorf("resolved: got %s, want %s", got, want)
	}

	noMerge := NewBuilder(BuildResolve(true), BuildMergeKeys(false))
	feed(t, noMerge, evs...)
	if got, want := noMerge.TakeDocument().Text(), "{base: &b {x: 1}, ref: {x: 1}, merged: {<<: {x: 1}, y: 2}}"; got != want {
		t.Errorf("no merge: got %s, want %s", got, want)
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []BuildOption
		evs  []*Event
		want error
	}{
		{"outside document", nil, []*Event{Scalar("x")}, ErrBuild},
		{"mismatched end", nil, []*Event{DocumentStart(nil), MappingStart(), SequenceEnd()}, ErrBuild},
		{"key without value", nil, []*Event{DocumentStart(nil), MappingStart(), Scalar("k"), MappingEnd()}, ErrBuild},
		{"unclosed", nil, []*Event{DocumentStart(nil), SequenceStart(), DocumentEnd(true)}, ErrBuild},
		{"two roots", nil, []*Event{DocumentStart(nil), Scalar("a"), Scalar("b")}, ErrBuild},
		{"unknown alias", []BuildOption{BuildResolve(true)}, []*Event{DocumentStart(nil), Alias("nope")}, ErrUnknownAlias},
		{"self alias", []BuildOption{BuildResolve(true)}, []*Event{DocumentStart(nil), SequenceStart().WithAnchor("s"), Alias("s")}, ErrUnknownAlias},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(tc.opts...)
			var err error
			for _, ev := range tc.evs {
				if _, err = b.ProcessEvent(ev); err != nil {
					break
				}
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
