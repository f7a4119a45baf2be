package ir

import "maps"

// DocumentState is the per-document context a parser carries between
// documents: directives and whether the markers were implicit.
type DocumentState struct {
	Version       string
	Tags          map[string]string
	StartImplicit bool
	EndImplicit   bool
}

func (s *DocumentState) Clone() *DocumentState {
	if s == nil {
		return nil
	}
	res := *s
	res.Tags = maps.Clone(s.Tags)
	return &res
}

// Document is a standalone document tree.
type Document struct {
	Root  *Node
	State *DocumentState
}

// Text renders the document root in flow style; an empty document renders
// as the empty string.
func (d *Document) Text() string {
	if d == nil || d.Root == nil {
		return ""
	}
	return d.Root.Text()
}
