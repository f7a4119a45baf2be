package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("got %s, want %s", got, f)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("e")); err != nil {
		t.Fatal(err)
	}
	if !f.IsEvents() {
		t.Errorf("got %s", f)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.yaml":       YAMLFormat,
		"b.YML":        YAMLFormat,
		"c.json":       JSONFormat,
		"dir/in.event": EventsFormat,
		"noext":        YAMLFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("%s: got %s, want %s", path, got, want)
		}
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		if got := FromPath("in" + f.Suffix()); got != f {
			t.Errorf("%s: suffix %q maps back to %s", f, f.Suffix(), got)
		}
	}
	if got := FromPath("in.events"); got != EventsFormat {
		t.Errorf("got %s", got)
	}
}
