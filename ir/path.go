package ir

import "strconv"

// Path returns the location of y in its document, rendered the same way the
// composer renders live paths: "/" for the root, then one "/"-separated
// segment per level; sequence levels use the index and mapping levels use
// the key text (flow-rendered when the key is a collection).
//
// A key node has the same path as the value it introduces.
func (y *Node) Path() string {
	p := y.Parent
	if p == nil {
		return "/"
	}
	prefix := p.Path()
	if prefix == "/" {
		prefix = ""
	}
	switch p.Type {
	case SequenceType:
		return prefix + "/" + strconv.Itoa(y.ParentIndex)
	case MappingType:
		return prefix + "/" + KeySegment(p.Fields[y.ParentIndex])
	default:
		panic("parent but not in collection")
	}
}

// KeySegment renders a mapping key as a single path segment.
func KeySegment(key *Node) string {
	if key == nil {
		return ""
	}
	if key.Type == ScalarType && key.Tag == "" && key.Anchor == "" {
		return ScalarText(key.String, key.Style)
	}
	return key.Text()
}
