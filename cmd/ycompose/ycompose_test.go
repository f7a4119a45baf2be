package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-compose/format"
)

func TestEventWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &MainConfig{}
	if err := composeInput(cfg, "in.yaml", []byte("a: [1]\n"), eventWriter(buf, NoColors(), true)); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"/\t+STR",
		"/\t+DOC",
		"/\t+MAP",
		"/a\t=VAL :a",
		"/a\t+SEQ []",
		"/a/0\t=VAL :1",
		"/a\t-SEQ",
		"/\t-MAP",
		"/\t-DOC",
		"/\t-STR",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPathWriterWhere(t *testing.T) {
	prg, err := compileWhere(`type == "Scalar" && inValue`)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	in := "a: 1\nb:\n  c: 2\nd: [3]\n"
	if err := composeInput(&MainConfig{}, "in.yaml", []byte(in), pathWriter(buf, NoColors(), prg)); err != nil {
		t.Fatal(err)
	}
	want := "/a\t=VAL :1\n/b/c\t=VAL :2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := compileWhere(`depth +`); err == nil {
		t.Errorf("expected compile error")
	}
}

func TestKeyWriter(t *testing.T) {
	in := strings.Join([]string{
		"+STR", "+DOC", "+MAP",
		"+SEQ", "=VAL :1", "-SEQ", "+MAP", "=VAL :k", "=VAL :v", "-MAP",
		"=VAL :plain", "=VAL :x",
		"-MAP", "-DOC", "-STR",
	}, "\n")
	f := format.EventsFormat
	buf := &bytes.Buffer{}
	if err := composeInput(&MainConfig{InFormat: &f}, "-", []byte(in), keyWriter(buf, NoColors())); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("/[1]\t[1]\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolvedInput(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &MainConfig{Resolve: true}
	in := "x: &a {k: v}\ny: *a\n"
	if err := composeInput(cfg, "in.yaml", []byte(in), pathWriter(buf, NoColors(), nil)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "/y/k\t=VAL :v") {
		t.Errorf("alias not expanded:\n%s", buf.String())
	}
}

func TestTraceDiff(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n7\n"
	b := "1\n2\n3\nfour\n5\n6\n7\n"
	buf := &bytes.Buffer{}
	differs, err := writeTraceDiff(buf, NoColors(), a, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected a difference")
	}
	want := "...\n  3\n- 4\n+ four\n  5\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	differs, err = writeTraceDiff(buf, NoColors(), a, a, 3)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("identical traces: differs=%v err=%v out=%q", differs, err, buf.String())
	}
}
