package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Fields      []*Node
	Values      []*Node

	Tag    string
	Anchor string
	Style  Style

	// String is the scalar text, or the anchor name of an alias.
	String string
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func (y *Node) WithAnchor(anchor string) *Node {
	y.Anchor = anchor
	return y
}

func (y *Node) WithStyle(style Style) *Node {
	y.Style = style
	return y
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromAlias(anchor string) *Node {
	return &Node{Type: AliasType, String: anchor}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SequenceType}
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

// FromKeyVals builds a mapping from alternating key and value nodes.
func FromKeyVals(kvs ...*Node) *Node {
	if len(kvs)%2 != 0 {
		panic("FromKeyVals: odd number of nodes")
	}
	res := &Node{Type: MappingType}
	for i := 0; i < len(kvs); i += 2 {
		res.AppendPair(kvs[i], kvs[i+1])
	}
	return res
}

// Append adds v to the end of sequence y.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// AppendPair adds the key/value pair k, v to the end of mapping y.
func (y *Node) AppendPair(k, v *Node) {
	k.Parent = y
	k.ParentIndex = len(y.Fields)
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, k)
	y.Values = append(y.Values, v)
}

// IsKey reports whether y sits in the key position of its parent mapping.
func (y *Node) IsKey() bool {
	p := y.Parent
	if p == nil || p.Type != MappingType {
		return false
	}
	i := y.ParentIndex
	return i < len(p.Fields) && p.Fields[i] == y
}

// Get returns the value of the first pair in mapping y whose key is a
// scalar with text key.
func (y *Node) Get(key string) *Node {
	if y.Type != MappingType {
		return nil
	}
	for i, f := range y.Fields {
		if f.Type == ScalarType && f.String == key {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of children of a collection node.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.Anchor = y.Anchor
	dst.Style = y.Style
	dst.String = y.String
	dst.Fields = nil
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	return dst
}

// Walk calls f on y and then on every descendant, keys before values.
// Returning false from f prunes the subtree below that node.
func (y *Node) Walk(f func(*Node) bool) {
	if !f(y) {
		return
	}
	for i, v := range y.Values {
		if i < len(y.Fields) {
			y.Fields[i].Walk(f)
		}
		v.Walk(f)
	}
}
