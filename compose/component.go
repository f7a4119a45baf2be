package compose

import (
	"strconv"

	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

// Component is the state of one open collection on a Path.
type Component struct {
	mapping bool

	// mapping state
	awaitKey           bool
	hasKey             bool
	root               bool
	isComplexKey       bool
	accumulating       bool
	complexKeyComplete bool
	complexKey         *ir.Document
	scalarKey          string
	scalarTag          string
	scalarStyle        ir.Style

	// sequence state
	idx int

	userData any
}

func (c *Component) initMapping() {
	*c = Component{mapping: true, awaitKey: true, root: true}
}

func (c *Component) initSequence() {
	*c = Component{idx: -1}
}

// clearState drops the key of a mapping or rewinds a sequence. A mapping's
// awaitKey and root flags are left alone.
func (c *Component) clearState() {
	if !c.mapping {
		c.idx = -1
		return
	}
	c.complexKey = nil
	c.scalarKey, c.scalarTag, c.scalarStyle = "", "", ir.AnyStyle
	c.hasKey = false
	c.isComplexKey = false
	c.accumulating = false
	c.complexKeyComplete = false
}

func (c *Component) advance() {
	if c.idx < 0 {
		c.idx = 0
		return
	}
	c.idx++
}

func (c *Component) setScalarKey(ev *stream.Event) {
	c.isComplexKey = false
	c.scalarKey = ev.Value
	c.scalarTag = ev.Tag
	c.scalarStyle = ev.Style
	if ev.Type == stream.EventAlias {
		c.scalarKey = "*" + ev.Value
		c.scalarStyle = ir.PlainStyle
	}
	c.hasKey = true
	c.root = false
}

func (c *Component) IsMapping() bool  { return c != nil && c.mapping }
func (c *Component) IsSequence() bool { return c != nil && !c.mapping }

// Index returns the current index of a sequence, -1 before the first item.
func (c *Component) Index() int {
	if c.IsSequence() {
		return c.idx
	}
	return -1
}

// AwaitingKey reports whether the next node in a mapping is a key.
func (c *Component) AwaitingKey() bool { return c.IsMapping() && c.awaitKey }

// HasKey reports whether a mapping has a key for the value being read.
func (c *Component) HasKey() bool { return c.IsMapping() && c.hasKey }

// InRoot reports whether no item of the collection has been seen yet.
func (c *Component) InRoot() bool {
	if c == nil {
		return false
	}
	if c.mapping {
		return c.root
	}
	return c.idx < 0
}

func (c *Component) IsComplexKey() bool { return c.IsMapping() && c.isComplexKey }

// AccumulatingComplexKey reports whether a collection key is being read.
func (c *Component) AccumulatingComplexKey() bool { return c.IsMapping() && c.accumulating }

func (c *Component) ComplexKeyComplete() bool { return c.IsMapping() && c.complexKeyComplete }

// ComplexKey returns the completed collection key, or nil.
func (c *Component) ComplexKey() *ir.Document {
	if !c.IsMapping() || !c.complexKeyComplete {
		return nil
	}
	return c.complexKey
}

// ScalarKey returns the text of a scalar key; alias keys are returned as
// "*name".
func (c *Component) ScalarKey() (string, bool) {
	if !c.IsMapping() || !c.hasKey || c.isComplexKey {
		return "", false
	}
	return c.scalarKey, true
}

func (c *Component) ScalarKeyTag() string {
	if !c.IsMapping() || c.isComplexKey {
		return ""
	}
	return c.scalarTag
}

// Text renders the component as a path segment, or "" when it has none yet.
func (c *Component) Text() string {
	if c == nil {
		return ""
	}
	if !c.mapping {
		if c.idx < 0 {
			return ""
		}
		return strconv.Itoa(c.idx)
	}
	switch {
	case !c.hasKey:
		return ""
	case c.isComplexKey:
		if c.complexKey == nil || c.complexKey.Root == nil {
			return ""
		}
		return ir.KeySegment(c.complexKey.Root)
	default:
		return ir.KeySegment(&ir.Node{Type: ir.ScalarType, String: c.scalarKey, Tag: c.scalarTag, Style: c.scalarStyle})
	}
}

func (c *Component) UserData() any     { return c.userData }
func (c *Component) SetUserData(v any) { c.userData = v }
