package tree

// Kind classifies a Cluster by its structure. It is always derived from
// Left/Right, never stored, matching spec §3's "Cluster kind (derived
// from structure, not stored)".
type Kind int

const (
	// KindLeaf clusters have no children and represent a single edge.
	KindLeaf Kind = iota
	// KindDummy clusters have exactly one child; they carry an orphan up
	// one level without attempting a join.
	KindDummy
	// KindRake clusters absorb a leaf-dangling child into its neighbour.
	KindRake
	// KindCompress clusters merge two clusters sharing one degree-two
	// interior vertex.
	KindCompress
	// kindInvalid marks a candidate move that is not legal to perform; it
	// is never the Kind of an actual Cluster.
	kindInvalid Kind = -1
)

// Data is the payload a Cluster carries: the maximum edge weight in the
// subgraph it summarises, and a pointer to the LEAF cluster achieving it
// (spec invariant 4). Data is shared by reference across RAKE/COMPRESS
// joins, so MaxCost/Ptr always resolve back to the same underlying edge.
type Data struct {
	// MaxCost is the maximum edge weight summarised by this cluster.
	MaxCost int64
	// Ptr is the LEAF cluster whose weight equals MaxCost.
	Ptr *Cluster
}

// Cluster is a hierarchy node summarising a connected subgraph with at
// most two boundary vertices, held as the heads of arc1 and arc2.
type Cluster struct {
	arc1, arc2  *Arc
	Left, Right *Cluster
	par         *Cluster
	Data        *Data

	// inList deduplicates level-engine work queues within one update().
	inList bool
	// marked deduplicates ancestor walks within one Expose().
	marked bool
}

// newLeafCluster builds a LEAF cluster with boundary vertices (head,
// tail) and the given payload. Its own arc1/arc2 are not yet linked into
// any Euler tour; the level engine splices them in.
func newLeafCluster(head, tail *Vertex, data *Data) *Cluster {
	c := &Cluster{Data: data}
	c.arc1 = &Arc{cluster: c, head: head}
	c.arc2 = &Arc{cluster: c, head: tail}

	return c
}

// Boundaries returns the cluster's two boundary vertices, which are
// always exactly the heads of arc1 and arc2 (spec invariant 1).
func (c *Cluster) Boundaries() (*Vertex, *Vertex) {
	return c.arc1.head, c.arc2.head
}

// Kind classifies c by the structure of its children.
func (c *Cluster) Kind() Kind {
	switch {
	case c.Left == nil && c.Right == nil:
		return KindLeaf
	case c.Left == nil || c.Right == nil:
		return KindDummy
	case sameBoundaryPair(c.Right, c):
		return KindRake
	default:
		return KindCompress
	}
}

// sameBoundaryPair reports whether right's boundary vertices are the same
// (possibly swapped) pair as parent's — the RAKE signature.
func sameBoundaryPair(right, parent *Cluster) bool {
	return (right.arc1.head == parent.arc1.head && right.arc2.head == parent.arc2.head) ||
		(right.arc1.head == parent.arc2.head && right.arc2.head == parent.arc1.head)
}

// isClusterValid checks invariant 3 for a non-leaf cluster: its join must
// still be realised by tour adjacency at the current level.
func (c *Cluster) isClusterValid() bool {
	switch c.Kind() {
	case KindRake:
		return (c.Left.arc1.canRake() && c.Left.arc1.next.cluster == c.Right) ||
			(c.Left.arc2.canRake() && c.Left.arc2.next.cluster == c.Right)
	case KindCompress:
		return (c.Left.arc1.canCompress() && c.Left.arc1.next.cluster == c.Right) ||
			(c.Left.arc2.canCompress() && c.Left.arc2.next.cluster == c.Right)
	default:
		panic("tree: isClusterValid called on a leaf or dummy cluster")
	}
}

// isFree reports whether c is eligible to attempt a new move this round:
// it has no parent, its parent is a DUMMY pass-through, or its parent is
// already slated for deletion at the next level.
func (c *Cluster) isFree(deleteNext []*Cluster) bool {
	if c.par == nil {
		return true
	}
	if c.par.Kind() == KindDummy {
		return true
	}
	for _, d := range deleteNext {
		if d == c.par {
			return true
		}
	}

	return false
}

// isRoot reports whether c's own two arcs form a length-two circular tour
// by themselves, i.e. c is the sole cluster of its component at this
// level.
func (c *Cluster) isRoot() bool {
	return c.arc1.next == c.arc2 && c.arc2.next == c.arc1
}

// addNeighbors appends c's four tour-adjacent clusters (next/prev of each
// arc) to neighbors, deduplicated via their inList flag.
func (c *Cluster) addNeighbors(neighbors *[]*Cluster) {
	add := func(a *Arc) {
		if n := a.cluster; !n.inList {
			*neighbors = append(*neighbors, n)
			n.inList = true
		}
	}
	add(c.arc1.next)
	add(c.arc1.prev)
	add(c.arc2.next)
	add(c.arc2.prev)
}

// split detaches both children, clearing their par pointers and any
// firstInternalCluster back-reference to c (spec §4.1 "Split"). Idempotent:
// calling split on an already-split cluster is a no-op.
func (c *Cluster) split() (left, right *Cluster) {
	if c.Left == nil {
		return nil, nil
	}

	if c.Left.arc1.head.firstInternalCluster == c {
		c.Left.arc1.head.firstInternalCluster = nil
	}
	if c.Left.arc2.head.firstInternalCluster == c {
		c.Left.arc2.head.firstInternalCluster = nil
	}

	left, right = c.Left, c.Right
	left.par = nil
	if right != nil {
		right.par = nil
	}
	c.Left, c.Right = nil, nil

	return left, right
}

// join merges c and other (tour-adjacent siblings) into a new parent
// cluster per the given kind, per spec §4.1 "Join". Panics if c and other
// are not tour-adjacent — this is an internal-inconsistency condition
// (spec §7), not a caller mistake.
func (c *Cluster) join(other *Cluster, kind Kind) *Cluster {
	moveArc := findMoveArc(c, other)

	switch kind {
	case KindCompress:
		heavier := c.Data
		if other.Data.MaxCost > c.Data.MaxCost {
			heavier = other.Data
		}
		compressedWith := moveArc.next
		newCluster := &Cluster{
			Data:  heavier,
			Left:  moveArc.cluster,
			Right: compressedWith.cluster,
		}
		newCluster.arc1 = &Arc{cluster: newCluster, head: compressedWith.twin().tail()}
		newCluster.arc2 = &Arc{cluster: newCluster, head: moveArc.twin().head}
		moveArc.head.firstInternalCluster = newCluster

		return newCluster
	case KindRake:
		// Invariant 4 (spec §3): the combined cluster carries whichever
		// child's max is heavier — the raked-off pendant can itself
		// contain the heaviest edge in the whole subtree, so (unlike a
		// naive reading of "take the absorbed-onto child's data") both
		// sides must be compared.
		heavier := c.Data
		if other.Data.MaxCost > c.Data.MaxCost {
			heavier = other.Data
		}
		rakedOnTo := moveArc.next
		newCluster := &Cluster{
			Data:  heavier,
			Left:  moveArc.cluster,
			Right: rakedOnTo.cluster,
		}
		newCluster.arc1 = &Arc{cluster: newCluster, head: rakedOnTo.head}
		newCluster.arc2 = &Arc{cluster: newCluster, head: rakedOnTo.tail()}
		moveArc.tail().firstInternalCluster = newCluster

		return newCluster
	default:
		panic("tree: join called with an invalid kind")
	}
}

// findMoveArc finds the unique arc among c's and other's four arcs whose
// tour-successor belongs to the other cluster — the arc along which the
// contraction happens.
func findMoveArc(c, other *Cluster) *Arc {
	switch {
	case c.arc1.next == other.arc1 || c.arc1.next == other.arc2:
		return c.arc1
	case c.arc2.next == other.arc1 || c.arc2.next == other.arc2:
		return c.arc2
	case other.arc1.next == c.arc1 || other.arc1.next == c.arc2:
		return other.arc1
	case other.arc2.next == c.arc1 || other.arc2.next == c.arc2:
		return other.arc2
	default:
		panic("tree: join called on non-adjacent clusters")
	}
}

// createDummy wraps c in a single-child DUMMY parent with the same
// boundaries and payload, used when c has no legal move partner at its
// level but must still be carried up (spec §4.1 "DUMMY promotion").
func (c *Cluster) createDummy() *Cluster {
	dummy := &Cluster{Data: c.Data, Left: c}
	dummy.arc1 = &Arc{cluster: dummy, head: c.arc1.head}
	dummy.arc2 = &Arc{cluster: dummy, head: c.arc2.head}

	return dummy
}

// Leaves collects every LEAF cluster in c's subtree, in no particular
// order. Used by msf.Forest.TotalWeight and the benchmark CLI to sum a
// component's edge weights without reaching into unexported fields.
func (c *Cluster) Leaves() []*Cluster {
	var out []*Cluster
	var walk func(*Cluster)
	walk = func(cur *Cluster) {
		if cur.Kind() == KindLeaf {
			out = append(out, cur)
			return
		}
		if cur.Left != nil {
			walk(cur.Left)
		}
		if cur.Right != nil {
			walk(cur.Right)
		}
	}
	walk(c)

	return out
}
