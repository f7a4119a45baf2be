package ir

import (
	"errors"
	"testing"
)

func TestExpandMergeKeys(t *testing.T) {
	base := FromKeyVals(FromString("a"), FromString("1"), FromString("b"), FromString("2"))
	other := FromKeyVals(FromString("b"), FromString("3"), FromString("c"), FromString("4"))
	m := FromKeyVals(
		FromString("<<"), FromSlice([]*Node{base, other}),
		FromString("a"), FromString("local"),
	)
	if err := m.ExpandMergeKeys(); err != nil {
		t.Fatal(err)
	}
	want := "{a: local, b: 2, c: 4}"
	if got := m.Text(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	for i, v := range m.Values {
		if v.Parent != m || v.ParentIndex != i {
			t.Errorf("value %d has bad parent link", i)
		}
	}
}

func TestExpandMergeKeysQuoted(t *testing.T) {
	m := FromKeyVals(FromString("<<").WithStyle(DoubleQuotedStyle), FromKeyVals(FromString("a"), FromString("1")))
	if err := m.ExpandMergeKeys(); err != nil {
		t.Fatal(err)
	}
	if got := m.Text(); got != `{"<<": {a: 1}}` {
		t.Errorf("quoted merge key was expanded: %s", got)
	}
}

func TestExpandMergeKeysBadValue(t *testing.T) {
	m := FromKeyVals(FromString("<<"), FromString("scalar"))
	err := m.ExpandMergeKeys()
	if !errors.Is(err, ErrMerge) {
		t.Errorf("expected ErrMerge, got %v", err)
	}
}
