package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

func eventLines(t *testing.T, in string, opts ...ParseOption) []string {
	t.Helper()
	evs, err := Events([]byte(in), opts...)
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	res := make([]string, len(evs))
	for i, ev := range evs {
		res[i] = ev.String()
	}
	return res
}

func TestEventsYAML(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{
			in:   "",
			want: []string{"+STR", "-STR"},
		},
		{
			in: "a: b\n",
			want: []string{
				"+STR", "+DOC", "+MAP", "=VAL :a", "=VAL :b", "-MAP", "-DOC", "-STR",
			},
		},
		{
			in: `[1, 'x', "y"]`,
			want: []string{
				"+STR", "+DOC", "+SEQ []", "=VAL :1", "=VAL 'x", `=VAL "y`, "-SEQ", "-DOC", "-STR",
			},
		},
		{
			in: "a: &x 1\nb: *x\n",
			want: []string{
				"+STR", "+DOC", "+MAP", "=VAL :a", "=VAL &x :1", "=VAL :b", "=ALI *x", "-MAP", "-DOC", "-STR",
			},
		},
		{
			in: "a: |\n  x\n",
			want: []string{
				"+STR", "+DOC", "+MAP", "=VAL :a", `=VAL |x\n`, "-MAP", "-DOC", "-STR",
			},
		},
		{
			in: "a\n---\nb\n",
			want: []string{
				"+STR", "+DOC", "=VAL :a", "-DOC", "+DOC ---", "=VAL :b", "-DOC", "-STR",
			},
		},
		{
			in: "- [a]\n- {k: v}\n",
			want: []string{
				"+STR", "+DOC", "+SEQ", "+SEQ []", "=VAL :a", "-SEQ", "+MAP {}", "=VAL :k", "=VAL :v", "-MAP", "-SEQ", "-DOC", "-STR",
			},
		},
	}
	for _, tc := range tests {
		got := eventLines(t, tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestEventsNotation(t *testing.T) {
	in := strings.Join([]string{
		"+STR",
		"+DOC",
		"+MAP",
		"+SEQ []",
		"=VAL :1",
		"-SEQ",
		"=VAL :x",
		"-MAP",
		"-DOC",
		"-STR",
	}, "\n")
	got := eventLines(t, in, ParseEvents())
	if diff := cmp.Diff(strings.Split(in, "\n"), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	evs, err := Events([]byte("a: b\nc: d\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range evs {
		if ev.Type == stream.EventScalar && ev.Value == "c" && ev.Pos.Line != 2 {
			t.Errorf("expected c on line 2, got %s", ev.Pos)
		}
	}
}

func TestLoadDocument(t *testing.T) {
	in := "base: &b {x: 1}\nref: *b\n---\n[1, 2]\n"
	docs, err := ParseDocuments([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, doc := range docs {
		got = append(got, doc.Text())
	}
	want := []string{"{base: &b {x: 1}, ref: *b}", "[1, 2]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	docs, err = ParseDocuments([]byte(in), ParseResolve(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := docs[0].Text(); got != "{base: &b {x: 1}, ref: {x: 1}}" {
		t.Errorf("resolved: got %s", got)
	}
}

func TestLoadDocumentMixed(t *testing.T) {
	p, err := NewBytes([]byte("a\n---\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	ev, err := p.Next()
	if err != nil || ev.Type != stream.EventStreamStart {
		t.Fatalf("got %v %v", ev, err)
	}
	p.Release(ev)
	doc, err := p.LoadDocument()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Text() != "a" {
		t.Errorf("got %s", doc.Text())
	}
	ev, err = p.Next()
	if err != nil || ev.Type != stream.EventDocumentStart {
		t.Fatalf("got %v %v", ev, err)
	}
	if st := p.DocumentState(); st == nil || st.StartImplicit {
		t.Errorf("expected explicit document state, got %+v", st)
	}
	p.Release(ev)
	for {
		ev, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		p.Release(ev)
	}
	if _, err := p.LoadDocument(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestLoadDocumentComplexKey(t *testing.T) {
	in := strings.Join([]string{
		"+STR",
		"+DOC",
		"+MAP",
		"+SEQ",
		"=VAL :1",
		"-SEQ",
		"=VAL :x",
		"-MAP",
		"-DOC",
		"-STR",
	}, "\n")
	docs, err := ParseDocuments([]byte(in), ParseEvents())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	want := ir.FromKeyVals(ir.FromSlice([]*ir.Node{ir.FromString("1")}), ir.FromString("x"))
	if !ir.Equal(want, docs[0].Root) {
		t.Errorf("got %s", docs[0].Text())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := NewBytes([]byte("a: [1\n")); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	_, err := ParseDocuments([]byte("+STR\n+DOC\n=VAL :a\n"), ParseEvents())
	if !errors.Is(err, ErrUnexpected) {
		t.Errorf("expected ErrUnexpected, got %v", err)
	}
	_, err = ParseDocuments([]byte("+STR\n+DOC\n=ALI *nope\n-DOC\n-STR\n"), ParseEvents(), ParseResolve(true))
	if !errors.Is(err, stream.ErrUnknownAlias) {
		t.Errorf("expected ErrUnknownAlias, got %v", err)
	}
	_, err = Events([]byte("+STR\n+BOGUS\n"), ParseEvents())
	var serr *stream.Error
	if !errors.As(err, &serr) || serr.Line != 2 {
		t.Errorf("expected line 2 notation error, got %v", err)
	}
}

func TestExpandTag(t *testing.T) {
	state := &ir.DocumentState{Tags: map[string]string{"!e!": "tag:example.com,2000:", "!": "tag:local,1:"}}
	tests := []struct {
		in   string
		st   *ir.DocumentState
		want string
	}{
		{"!!str", nil, "tag:yaml.org,2002:str"},
		{"!local", nil, "!local"},
		{"!<tag:x,1:y>", nil, "tag:x,1:y"},
		{"!e!foo", state, "tag:example.com,2000:foo"},
		{"!bar", state, "tag:local,1:bar"},
	}
	for _, tc := range tests {
		if got := expandTag(tc.in, tc.st); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.in, got, tc.want)
		}
	}
}
