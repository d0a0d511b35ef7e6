package tree

// NewTree returns an empty top-tree with no roots. Vertices become part of
// it only once Link is called on them.
func NewTree() *Tree {
	return &Tree{}
}

// Link adds an edge of weight w between u and v, joining their two
// components into one. u and v must be distinct and not already
// connected; Link does not support adding a redundant edge to an existing
// component (callers wanting cycle detection should Expose first).
func (t *Tree) Link(u, v *Vertex, w int64) error {
	if u == v || u.Name == v.Name {
		return ErrSameVertex
	}
	if u.handle != nil && v.handle != nil && u.root() == v.root() {
		return ErrAlreadyConnected
	}

	leaf := newLeafCluster(u, v, nil)
	leaf.Data = &Data{MaxCost: w, Ptr: leaf}
	leaf.inList = true

	t.update([]*Cluster{leaf}, nil, nil, nil)

	return nil
}

// Cut removes the edge identified by leaf, splitting its component in two.
// leaf must be a LEAF cluster, i.e. the Ptr of some Data previously
// obtained from Expose.
func (t *Tree) Cut(leaf *Cluster) error {
	if leaf.Kind() != KindLeaf {
		return ErrNotALeaf
	}

	leaf.inList = true
	t.update(nil, []*Cluster{leaf}, nil, nil)

	return nil
}

// Expose summarises the tree path between u and v without mutating the
// live hierarchy: it builds a disposable hierarchy, seeded from the
// frontier clusters bracketing u and v in the real one, and runs the same
// level engine over it with u and v pinned as the two boundary vertices
// that must never be absorbed. Returns nil if u or v is isolated or they
// lie in different components.
//
// The returned Cluster's Data.MaxCost/Ptr describe the heaviest edge on
// the u-v path; Ptr is a real LEAF cluster from the live hierarchy and can
// be passed to Cut. The Cluster itself belongs to the disposable
// hierarchy and must not be mutated or linked into the live one.
func (t *Tree) Expose(u, v *Vertex) *Cluster {
	if u.handle == nil || v.handle == nil {
		return nil
	}
	if u.root() != v.root() {
		return nil
	}

	internals := append(u.internalClusters(), v.internalClusters()...)
	for _, c := range internals {
		c.marked = false
	}
	if len(internals) == 0 {
		return u.root()
	}

	var frontier []*Cluster
	seen := make(map[*Cluster]bool)
	for _, c := range internals {
		seen[c] = true
	}
	for _, c := range internals {
		if c.Left != nil && !seen[c.Left] {
			frontier = append(frontier, c.Left)
			seen[c.Left] = true
		}
		if c.Right != nil && !seen[c.Right] {
			frontier = append(frontier, c.Right)
			seen[c.Right] = true
		}
	}

	newVertices := make(map[int]*Vertex)
	internVertex := func(name int) *Vertex {
		if nv, ok := newVertices[name]; ok {
			return nv
		}
		nv := NewVertex(name)
		newVertices[name] = nv
		return nv
	}

	var toInsert []*Cluster
	for _, clus := range frontier {
		i, j := clus.Boundaries()
		leaf := newLeafCluster(internVertex(i.Name), internVertex(j.Name), clus.Data)
		leaf.inList = true
		toInsert = append(toInsert, leaf)
	}

	temporary := NewTree()
	temporary.update(toInsert, nil, internVertex(u.Name), internVertex(v.Name))

	if len(temporary.roots) != 1 {
		panic("tree: expose's simulated rebuild did not converge to one root")
	}

	return temporary.roots[0]
}
