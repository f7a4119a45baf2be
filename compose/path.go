package compose

import (
	"strings"

	"github.com/signadot/tony-format/go-compose/debug"
	"github.com/signadot/tony-format/go-compose/stream"
)

// PathID identifies a Path within its Composer. The zero PathID refers to
// no Path.
type PathID int

// Path is the stack of open collections for one composition context: the
// document itself, or a collection key being read.
type Path struct {
	id     PathID
	parent PathID
	reg    *registry
	pos    int

	comps []*Component
	pool  []*Component

	// non-nil once a collection key has been started on this path
	builder *stream.Builder

	userData any
}

func (p *Path) ID() PathID { return p.id }

// Parent returns the Path this one was spawned from, or nil for the root
// Path.
func (p *Path) Parent() *Path {
	if p == nil || p.parent == 0 || p.reg == nil {
		return nil
	}
	return p.reg.lookup(p.parent)
}

// Depth returns the number of open collections.
func (p *Path) Depth() int {
	if p == nil {
		return 0
	}
	return len(p.comps)
}

// Last returns the innermost open collection, or nil.
func (p *Path) Last() *Component {
	if p == nil || len(p.comps) == 0 {
		return nil
	}
	return p.comps[len(p.comps)-1]
}

// Component returns the i'th open collection, outermost first.
func (p *Path) Component(i int) *Component {
	if p == nil || i < 0 || i >= len(p.comps) {
		return nil
	}
	return p.comps[i]
}

// InRoot reports whether no collection is open.
func (p *Path) InRoot() bool { return p.Depth() == 0 }

func (p *Path) InMapping() bool  { return p.Last().IsMapping() }
func (p *Path) InSequence() bool { return p.Last().IsSequence() }

// InMappingKey reports whether the current node is a mapping key.
func (p *Path) InMappingKey() bool { return p.Last().AwaitingKey() }

// InMappingValue reports whether the current node is a mapping value.
func (p *Path) InMappingValue() bool {
	last := p.Last()
	return last.IsMapping() && !last.awaitKey
}

// InCollectionRoot reports whether the innermost collection has not yet
// seen an item.
func (p *Path) InCollectionRoot() bool { return p.Last().InRoot() }

// Text renders p as "/"-separated segments, "/" when empty. The text of a
// Path spawned for a collection key is the parent's text followed by a
// bracketed segment holding the key's own path.
func (p *Path) Text() string {
	if p == nil {
		return ""
	}
	buf := &strings.Builder{}
	if parent := p.Parent(); parent != nil {
		buf.WriteString(strings.TrimSuffix(parent.Text(), "/"))
		buf.WriteString("/[")
		p.writeSegments(buf)
		buf.WriteString("]")
		return buf.String()
	}
	p.writeSegments(buf)
	return buf.String()
}

func (p *Path) writeSegments(buf *strings.Builder) {
	n := 0
	for _, c := range p.comps {
		seg := c.Text()
		if seg == "" {
			continue
		}
		buf.WriteByte('/')
		buf.WriteString(seg)
		n++
	}
	if n == 0 {
		buf.WriteByte('/')
	}
}

func (p *Path) UserData() any     { return p.userData }
func (p *Path) SetUserData(v any) { p.userData = v }

func (p *Path) checkout() *Component {
	n := len(p.pool)
	if n == 0 {
		return &Component{}
	}
	c := p.pool[n-1]
	p.pool = p.pool[:n-1]
	return c
}

func (p *Path) recycle(c *Component) {
	*c = Component{}
	p.pool = append(p.pool, c)
}

func (p *Path) push(mapping bool) *Component {
	c := p.checkout()
	if mapping {
		c.initMapping()
	} else {
		c.initSequence()
	}
	p.comps = append(p.comps, c)
	if debug.Paths() {
		debug.Logf("path %d push depth %d -> %s\n", p.id, len(p.comps), p.Text())
	}
	return c
}

func (p *Path) pop() {
	n := len(p.comps)
	if n == 0 {
		return
	}
	c := p.comps[n-1]
	p.comps[n-1] = nil
	p.comps = p.comps[:n-1]
	p.recycle(c)
	if debug.Paths() {
		debug.Logf("path %d pop depth %d -> %s\n", p.id, len(p.comps), p.Text())
	}
}

// destroy recycles every component and detaches p from its registry.
func (p *Path) destroy() {
	for len(p.comps) > 0 {
		p.pop()
	}
	p.pool = nil
	p.builder = nil
	p.userData = nil
	p.reg = nil
}
