package msf

import "github.com/katalvlaran/toptree/tree"

// Forest is an incremental minimum spanning forest over integer-named
// vertices, backed by a tree.Tree.
type Forest struct {
	t        *tree.Tree
	vertices map[int]*tree.Vertex
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{
		t:        tree.NewTree(),
		vertices: make(map[int]*tree.Vertex),
	}
}

// Vertex interns and returns the tree.Vertex for name, creating it
// isolated on first use.
func (f *Forest) Vertex(name int) *tree.Vertex {
	if v, ok := f.vertices[name]; ok {
		return v
	}
	v := tree.NewVertex(name)
	f.vertices[name] = v

	return v
}

// Process offers the edge (u, v, w) to the forest:
//
//   - if u and v are not yet connected, the edge is linked in outright;
//   - if they are connected and w is lighter than the heaviest edge on
//     their current path, that edge is cut and (u, v, w) is linked in its
//     place, evicted being the cut cluster;
//   - otherwise the edge is redundant and dropped.
//
// inserted reports whether the forest's edge set changed; evicted is the
// LEAF cluster that was cut, or nil if nothing was cut.
func (f *Forest) Process(u, v int, w int64) (inserted bool, evicted *tree.Cluster) {
	if u == v {
		// A self-loop can never join a spanning forest; the dimacs parser
		// already drops these, but Process stays safe against any other
		// caller handing it one directly.
		return false, nil
	}

	uv, vv := f.Vertex(u), f.Vertex(v)

	path := f.t.Expose(uv, vv)
	if path == nil {
		if err := f.t.Link(uv, vv, w); err != nil {
			panic("msf: link after a nil Expose: " + err.Error())
		}
		return true, nil
	}

	if path.Data.MaxCost <= w {
		return false, nil
	}

	heaviest := path.Data.Ptr
	if err := f.t.Cut(heaviest); err != nil {
		panic("msf: cut of an exposed path's own max edge: " + err.Error())
	}
	if err := f.t.Link(uv, vv, w); err != nil {
		panic("msf: link after cutting the path's max edge: " + err.Error())
	}

	return true, heaviest
}

// TotalWeight sums the weight of every edge currently in the forest, by
// walking each component root down to its LEAF clusters.
func (f *Forest) TotalWeight() int64 {
	var total int64
	for _, root := range f.t.Roots() {
		for _, leaf := range root.Leaves() {
			total += leaf.Data.MaxCost
		}
	}

	return total
}
