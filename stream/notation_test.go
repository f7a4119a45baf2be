package stream

import (
	"io"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-compose/ir"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   *Event
		want string
	}{
		{StreamStart(), "+STR"},
		{DocumentStart(&ir.DocumentState{}), "+DOC ---"},
		{DocumentStart(&ir.DocumentState{StartImplicit: true}), "+DOC"},
		{DocumentEnd(true), "-DOC"},
		{DocumentEnd(false), "-DOC ..."},
		{MappingStart().WithStyle(ir.FlowStyle).WithAnchor("a").WithTag("!t"), "+MAP {} &a <!t>"},
		{SequenceStart(), "+SEQ"},
		{Scalar("x"), "=VAL :x"},
		{Scalar("a\nb").WithStyle(ir.LiteralStyle), `=VAL |a\nb`},
		{Scalar("q").WithStyle(ir.SingleQuotedStyle).WithAnchor("n"), "=VAL &n 'q"},
		{Alias("n"), "=ALI *n"},
		{SequenceEnd(), "-SEQ"},
		{MappingEnd(), "-MAP"},
		{StreamEnd(), "-STR"},
	}
	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.ev.Type, got, tc.want)
		}
	}
}

func TestParseEvent(t *testing.T) {
	lines := []string{
		"+STR",
		"+DOC ---",
		"+MAP {} &a <!t>",
		"=VAL :",
		`=VAL "tab\there`,
		"=VAL &x <tag:yaml.org,2002:str> >folded",
		"=ALI *x",
		"+SEQ []",
		"-SEQ",
		"-MAP",
		"-DOC",
		"-STR",
	}
	for _, line := range lines {
		ev, err := ParseEvent(line)
		if err != nil {
			t.Errorf("%q: %v", line, err)
			continue
		}
		if got := ev.String(); got != line {
			t.Errorf("round trip %q gave %q", line, got)
		}
	}
	ev, err := ParseEvent(`=VAL "tab\there`)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Value != "tab\there" || ev.Style != ir.DoubleQuotedStyle {
		t.Errorf("got value %q style %s", ev.Value, ev.Style)
	}
}

func TestParseEventErrors(t *testing.T) {
	for _, line := range []string{"", "+XYZ", "=VAL", "=VAL ~x", "=ALI x", "+MAP <unterminated", "+SEQ junk"} {
		if _, err := ParseEvent(line); err == nil {
			t.Errorf("%q: expected error", line)
		}
	}
}

func TestNotationReader(t *testing.T) {
	in := "# comment\n+STR\n\n  +DOC\n=VAL :a \n-DOC\n-STR\n"
	r := NewNotationReader(strings.NewReader(in))
	var got []string
	for {
		ev, err := r.ReadEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, ev.String())
	}
	want := []string{"+STR", "+DOC", "=VAL :a ", "-DOC", "-STR"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNotationReaderErrorLine(t *testing.T) {
	r := NewNotationReader(strings.NewReader("+STR\n+BAD\n"))
	if _, err := r.ReadEvent(); err != nil {
		t.Fatal(err)
	}
	_, err := r.ReadEvent()
	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if serr.Line != 2 {
		t.Errorf("expected line 2, got %d", serr.Line)
	}
}
