package tree

// Tree owns the per-component hierarchy roots and runs the level engine
// that keeps them consistent after every Link and Cut.
type Tree struct {
	roots []*Cluster
}

// Roots returns the current top-level cluster of every component. A
// singleton component (one isolated vertex) has no root at all.
func (t *Tree) Roots() []*Cluster {
	return t.roots
}

func (t *Tree) isRootCluster(c *Cluster) bool {
	for _, r := range t.roots {
		if r == c {
			return true
		}
	}

	return false
}

func (t *Tree) removeRoot(c *Cluster) {
	for i, r := range t.roots {
		if r == c {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return
		}
	}
}

func containsCluster(haystack []*Cluster, needle *Cluster) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}

	return false
}

func removeClusterFromSlice(s *[]*Cluster, c *Cluster) {
	for i, v := range *s {
		if v == c {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// isMoveValid classifies the move available along arc a, honouring the
// exposedU/exposedV suppression used by Expose's simulated rebuild: a
// boundary vertex under active query must not be absorbed interior by a
// RAKE, nor hidden inside a COMPRESS, since the caller still needs it as a
// cluster boundary (spec §4.3 "Expose").
func isMoveValid(a *Arc, exposedU, exposedV *Vertex) Kind {
	b := a.next
	if a.cluster == b.cluster {
		return kindInvalid
	}

	compressOK := (exposedU == nil || (a.head != exposedU && b.tail() != exposedU)) &&
		(exposedV == nil || (a.head != exposedV && b.tail() != exposedV)) &&
		a.canCompress()
	if compressOK {
		return KindCompress
	}

	rakeOK := (exposedU == nil || a.tail() != exposedU) &&
		(exposedV == nil || a.tail() != exposedV) &&
		a.canRake()
	if rakeOK {
		return KindRake
	}

	return kindInvalid
}

// removeFromEulerTour splices every cluster in clusters out of its current
// level's tour, promoting its orphaned parent (if any) for deletion one
// level up and, if that parent was itself a root, promoting its two
// children to take its place as roots.
func (t *Tree) removeFromEulerTour(clusters []*Cluster, neighbors *[]*Cluster, deleteNext *[]*Cluster) {
	for _, cluster := range clusters {
		a, b := cluster.arc1, cluster.arc2
		if a.next == nil || b.next == nil {
			continue
		}

		cluster.addNeighbors(neighbors)
		t.removeRoot(cluster)

		a.prev.next = b.next
		b.next.prev = a.prev
		b.prev.next = a.next
		a.next.prev = b.prev

		if par := cluster.par; par != nil {
			if !par.inList {
				*deleteNext = append(*deleteNext, par)
				par.inList = true
			}
			wasRoot := t.isRootCluster(par)
			left, right := par.split()
			if wasRoot {
				// par is being fully dismantled (both children severed, not
				// just the one being removed), so it cannot remain a root
				// placeholder itself — only the liberated children can.
				t.removeRoot(par)
				if left != nil && left != cluster {
					t.roots = append(t.roots, left)
				}
				if right != nil && right != cluster {
					t.roots = append(t.roots, right)
				}
			}
		}

		if a.head.handle == a {
			if a.twin().prev == a {
				a.head.handle = nil
			} else {
				a.head.handle = a.twin().prev
			}
		}
		if b.head.handle == b {
			if b.twin().prev == b {
				b.head.handle = nil
			} else {
				b.head.handle = b.twin().prev
			}
		}
	}
}

func addArcToEulerTour(arc, predecessor, successor *Arc) {
	arc.prev = predecessor
	arc.next = successor
	predecessor.next = arc
	successor.prev = arc
}

// insertIntoEulerTour splices clusters into the tour at level, dispatching
// to the base-level splice (which reads vertex handles directly) or the
// higher-level splice (which must search through the child hierarchy).
func (t *Tree) insertIntoEulerTour(clusters []*Cluster, neighbors *[]*Cluster, level int) {
	if level == 1 {
		t.insertIntoEulerTourBase(clusters, neighbors)
	} else {
		t.insertIntoEulerTourRest(clusters, neighbors)
	}
}

func (t *Tree) insertIntoEulerTourBase(clusters []*Cluster, neighbors *[]*Cluster) {
	for _, cluster := range clusters {
		arc1, arc2 := cluster.arc1, cluster.arc2

		predecessorArc1 := arc1.tail().handle
		predecessorArc2 := arc2.tail().handle

		var successorArc1, successorArc2 *Arc
		if predecessorArc2 != nil {
			successorArc1 = predecessorArc2.next
		} else {
			predecessorArc2 = arc1
			successorArc1 = arc2
		}
		if predecessorArc1 != nil {
			successorArc2 = predecessorArc1.next
		} else {
			predecessorArc1 = arc2
			successorArc2 = arc1
		}

		addArcToEulerTour(arc1, predecessorArc1, successorArc1)
		addArcToEulerTour(arc2, predecessorArc2, successorArc2)
		cluster.addNeighbors(neighbors)
		arc1.head.handle = arc1
		arc2.head.handle = arc2
	}
}

func (t *Tree) insertIntoEulerTourRest(clusters []*Cluster, neighbors *[]*Cluster) {
	for _, cluster := range clusters {
		pred := t.findArcPredecessor(cluster.arc1)
		succ := t.findArcSuccessor(cluster.arc1)
		addArcToEulerTour(cluster.arc1, pred, succ)

		pred = t.findArcPredecessor(cluster.arc2)
		succ = t.findArcSuccessor(cluster.arc2)
		addArcToEulerTour(cluster.arc2, pred, succ)

		cluster.addNeighbors(neighbors)
	}
}

// findArcSuccessor locates the arc that will tour-follow arc once arc's
// owning cluster is spliced in one level up, by descending into the child
// whose boundary is arc.head and climbing back out to that child's
// tour-neighbour's parent.
//
// When the enclosing cluster is a RAKE, the raked-off child (Left) can sit
// immediately adjacent in the child tour without itself being a distinct
// cluster at this level; the search must step past it to land on a real
// sibling, mirroring the skip findArcPredecessor already needs on its side
// of a RAKE join.
func (t *Tree) findArcSuccessor(arc *Arc) *Arc {
	cluster := arc.cluster
	w := arc.head

	var A *Cluster
	switch cluster.Kind() {
	case KindRake:
		A = cluster.Right
	case KindDummy:
		A = cluster.Left
	case KindCompress:
		if cluster.Left.arc1.head == w || cluster.Left.arc2.head == w {
			A = cluster.Left
		} else {
			A = cluster.Right
		}
	default:
		panic("tree: findArcSuccessor called on a leaf cluster")
	}

	var a *Arc
	if A.arc1.head == w {
		a = A.arc1
	} else {
		a = A.arc2
	}

	b := a.next
	for cluster.Kind() == KindRake && b.cluster == cluster.Left {
		b = b.next
	}

	P := b.cluster.par
	if w == P.arc1.tail() {
		return P.arc1
	}

	return P.arc2
}

// findArcPredecessor is findArcSuccessor's mirror image, searching
// backward through the tail vertex instead of forward through the head.
func (t *Tree) findArcPredecessor(arc *Arc) *Arc {
	cluster := arc.cluster
	v := arc.tail()

	var A *Cluster
	switch cluster.Kind() {
	case KindRake:
		A = cluster.Right
	case KindDummy:
		A = cluster.Left
	case KindCompress:
		if cluster.Left.arc1.tail() == v || cluster.Left.arc2.tail() == v {
			A = cluster.Left
		} else {
			A = cluster.Right
		}
	default:
		panic("tree: findArcPredecessor called on a leaf cluster")
	}

	var a *Arc
	if A.arc1.tail() == v {
		a = A.arc1
	} else {
		a = A.arc2
	}

	b := a.prev
	for cluster.Kind() == KindRake && b.cluster == cluster.Left {
		b = b.prev
	}

	P := b.cluster.par
	if v == P.arc1.head {
		return P.arc1
	}

	return P.arc2
}

// verifyMoves walks neighbors as a growing work queue: any cluster whose
// parent join has been invalidated by this round's splices schedules that
// parent for deletion and wakes its sibling, while clusters whose parent
// join is still valid are dropped back out (they need no new move).
func (t *Tree) verifyMoves(neighbors *[]*Cluster, deleteNext *[]*Cluster) {
	var matchedMoves []*Cluster

	for i := 0; i < len(*neighbors); i++ {
		cluster := (*neighbors)[i]
		if cluster.par == nil || cluster.par.Kind() == KindDummy {
			continue
		}

		if !cluster.par.isClusterValid() {
			var sibling *Cluster
			if cluster.par.Left == cluster {
				sibling = cluster.par.Right
			} else {
				sibling = cluster.par.Left
			}
			if !sibling.inList {
				*neighbors = append(*neighbors, sibling)
				sibling.inList = true
			}
			if !cluster.par.inList {
				*deleteNext = append(*deleteNext, cluster.par)
				cluster.par.inList = true
			}
		} else {
			matchedMoves = append(matchedMoves, cluster)
		}
	}

	for _, c := range matchedMoves {
		removeClusterFromSlice(neighbors, c)
		c.inList = false
	}
}

// performValidMove attempts the move along arc a, joining a's cluster with
// its tour-successor if both are currently free to move and the join is
// structurally legal. Reports whether a join happened.
func (t *Tree) performValidMove(a *Arc, deleteNext *[]*Cluster, insertNext *[]*Cluster, performedMoves *[]*Cluster, exposedU, exposedV *Vertex) bool {
	cluster := a.cluster
	bClus := a.next.cluster

	if !cluster.isFree(*deleteNext) || !bClus.isFree(*deleteNext) {
		return false
	}

	validity := isMoveValid(a, exposedU, exposedV)
	if validity == kindInvalid {
		return false
	}

	if cluster.par != nil && !cluster.par.inList {
		*deleteNext = append(*deleteNext, cluster.par)
		cluster.par.inList = true
	}
	if bClus.par != nil && !bClus.par.inList {
		*deleteNext = append(*deleteNext, bClus.par)
		bClus.par.inList = true
	}

	newCluster := cluster.join(bClus, validity)
	t.removeRoot(cluster)
	t.removeRoot(bClus)
	cluster.par = newCluster
	bClus.par = newCluster

	*insertNext = append(*insertNext, newCluster)
	newCluster.inList = true
	*performedMoves = append(*performedMoves, cluster, bClus)

	return true
}

// newMoves attempts one join per cluster freshly touched this level
// (inserted or woken as a neighbour), then promotes everything that found
// no partner: a lone root stays a root, everything else is wrapped in a
// DUMMY and carried up. Reports whether any join was performed; update
// ignores the result and keeps looping while clusters are pending.
func (t *Tree) newMoves(clusters, neighbors []*Cluster, deleteNext, insertNext *[]*Cluster, exposedU, exposedV *Vertex) bool {
	combined := make([]*Cluster, 0, len(clusters)+len(neighbors))
	combined = append(combined, clusters...)
	combined = append(combined, neighbors...)

	var performedMoves []*Cluster
	for _, cluster := range combined {
		if !t.performValidMove(cluster.arc1, deleteNext, insertNext, &performedMoves, exposedU, exposedV) {
			t.performValidMove(cluster.arc2, deleteNext, insertNext, &performedMoves, exposedU, exposedV)
		}
	}

	for _, cluster := range combined {
		if containsCluster(performedMoves, cluster) {
			continue
		}
		if cluster.isRoot() {
			if !t.isRootCluster(cluster) {
				t.roots = append(t.roots, cluster)
			}
			continue
		}
		if cluster.par != nil && !cluster.par.inList {
			*deleteNext = append(*deleteNext, cluster.par)
			cluster.par.inList = true
		}
		t.removeRoot(cluster)

		dummy := cluster.createDummy()
		cluster.par = dummy
		*insertNext = append(*insertNext, dummy)
		dummy.inList = true
	}

	return len(performedMoves) > 0
}

// update is the level engine: it re-establishes invariants 1-4 level by
// level after a batch of LEAF insertions and/or removals, following every
// ripple of reorganisation up the hierarchy until no cluster is left
// pending at either end. exposedU/exposedV, when non-nil, forbid the
// engine from absorbing those two vertices as cluster interiors — used
// only by Expose's simulated rebuild.
func (t *Tree) update(insert, del []*Cluster, exposedU, exposedV *Vertex) {
	level := 1

	for len(insert) > 0 || len(del) > 0 {
		var insertNext, deleteNext, neighbors []*Cluster

		t.removeFromEulerTour(del, &neighbors, &deleteNext)
		t.insertIntoEulerTour(insert, &neighbors, level)
		t.verifyMoves(&neighbors, &deleteNext)
		t.newMoves(insert, neighbors, &deleteNext, &insertNext, exposedU, exposedV)

		level++

		for _, c := range insert {
			c.inList = false
		}
		for _, c := range del {
			c.inList = false
		}
		for _, c := range neighbors {
			c.inList = false
		}

		del = deleteNext
		insert = insertNext
	}
}
