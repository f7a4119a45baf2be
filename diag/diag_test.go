package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	d := New(buf, WithLevel(LevelWarn), WithPrefix("ycompose"))
	d.Debugf("hidden %d", 1)
	d.Infof("hidden too")
	d.Warnf("careful")
	d.Errorf("broken: %s", "x\n")
	want := "ycompose: warning: careful\nycompose: error: broken: x\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if d.Count(LevelDebug) != 1 || d.Count(LevelInfo) != 1 || d.Errors() != 1 {
		t.Errorf("bad counts: debug %d info %d error %d", d.Count(LevelDebug), d.Count(LevelInfo), d.Errors())
	}
}

func TestRefs(t *testing.T) {
	buf := &bytes.Buffer{}
	d := New(buf)
	if d.Ref() != d || d.Refs() != 2 {
		t.Fatalf("expected 2 refs, got %d", d.Refs())
	}
	d.Unref()
	d.Infof("one")
	d.Unref()
	d.Infof("two")
	if got := buf.String(); got != "info: one\n" {
		t.Errorf("got %q", got)
	}
	if d.Refs() != 0 {
		t.Errorf("refs went to %d", d.Refs())
	}
	d.Unref()
	if d.Refs() != 0 {
		t.Errorf("refs went negative: %d", d.Refs())
	}
}

func TestNil(t *testing.T) {
	var d *Diag
	d.Errorf("nothing")
	d.Unref()
	d.Report(errors.New("x"))
	if d.Ref() != nil || d.Errors() != 0 || d.Color() {
		t.Errorf("nil Diag should be inert")
	}
}

func TestColor(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf, WithColor(true)).Errorf("red")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected escape sequence in %q", buf.String())
	}
	buf.Reset()
	New(buf).Errorf("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected escape sequence in %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	d := New(buf)
	d.Report(errors.New("boom"))
	if got := buf.String(); got != "error: boom\n" {
		t.Errorf("got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("%s: got %s %v", l, got, err)
		}
	}
	if _, err := ParseLevel("loud"); !errors.Is(err, ErrBadLevel) {
		t.Errorf("expected ErrBadLevel, got %v", err)
	}
}
