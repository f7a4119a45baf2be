package ir

// Equal reports whether a and b are structurally equal: same types, tags,
// scalar text and children, in order. Anchors, styles and parent links are
// not compared.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Tag != b.Tag || a.String != b.String {
		return false
	}
	if len(a.Values) != len(b.Values) || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if !Equal(a.Fields[i], b.Fields[i]) {
			return false
		}
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
