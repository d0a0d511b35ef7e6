package tree

// Arc is a directed half-edge: one of a Cluster's two tour-incidences.
// Arcs of the same level are circularly doubly-linked into the Euler tour
// of their component: for every arc a, a.next.prev == a and a.prev.next
// == a (spec invariant 2).
type Arc struct {
	cluster *Cluster
	head    *Vertex
	next    *Arc
	prev    *Arc
}

// twin returns the sibling arc belonging to the same cluster.
func (a *Arc) twin() *Arc {
	if a.cluster.arc1 == a {
		return a.cluster.arc2
	}

	return a.cluster.arc1
}

// tail returns the tail vertex of a, i.e. the head of its twin.
func (a *Arc) tail() *Vertex {
	return a.twin().head
}

// canRake reports whether a is immediately preceded by its own twin in the
// tour, meaning a's cluster dangles as a leaf off the endpoint a.head and
// can be absorbed by a RAKE move onto its successor.
func (a *Arc) canRake() bool {
	return a.prev == a.twin()
}

// canCompress reports whether a and its tour-successor share a single
// interior vertex a.head with exactly two tour incidences at this level,
// i.e. a and its successor can be merged by a COMPRESS move.
func (a *Arc) canCompress() bool {
	return a.next.twin().next == a.twin()
}
