package compose

// registry holds the Paths of a Composer. The root Path is at index 0 and
// Paths spawned for collection keys are appended and removed at the tail.
type registry struct {
	paths  []*Path
	nextID PathID
}

func newRegistry() *registry {
	r := &registry{}
	r.add(nil)
	return r
}

func (r *registry) add(parent *Path) *Path {
	r.nextID++
	p := &Path{id: r.nextID, reg: r, pos: len(r.paths)}
	if parent != nil {
		p.parent = parent.id
	}
	r.paths = append(r.paths, p)
	return p
}

func (r *registry) root() *Path {
	if len(r.paths) == 0 {
		return nil
	}
	return r.paths[0]
}

func (r *registry) len() int {
	return len(r.paths)
}

// next returns the Path following p, or nil.
func (r *registry) next(p *Path) *Path {
	i := p.pos + 1
	if p.reg != r || i >= len(r.paths) {
		return nil
	}
	return r.paths[i]
}

func (r *registry) lookup(id PathID) *Path {
	for _, p := range r.paths {
		if p.id == id {
			return p
		}
	}
	return nil
}

// popTail destroys the last Path. The root Path is never removed.
func (r *registry) popTail() {
	n := len(r.paths)
	if n <= 1 {
		return
	}
	p := r.paths[n-1]
	r.paths[n-1] = nil
	r.paths = r.paths[:n-1]
	p.destroy()
}

// destroy destroys every Path, the root included.
func (r *registry) destroy() {
	for i := len(r.paths) - 1; i >= 0; i-- {
		r.paths[i].destroy()
		r.paths[i] = nil
	}
	r.paths = nil
}
