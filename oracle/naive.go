package oracle

import (
	"strconv"

	"github.com/katalvlaran/toptree/bfs"
	"github.com/katalvlaran/toptree/core"
)

// edgeKey normalises an undirected pair for map lookups.
type edgeKey struct{ a, b int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// pathEdge is one hop of a reconstructed tree path, with the weight it
// carries in the forest currently being maintained.
type pathEdge struct {
	u, v   int
	weight int64
}

// Naive maintains a dynamic minimum spanning forest incrementally: each
// Process call either grows the forest or swaps out the heaviest edge on
// the existing path between its two endpoints, the same rule Process on
// msf.Forest implements against the top-tree. It exists purely as a
// second, structurally unrelated implementation to check that one
// against.
//
// Connectivity and path reconstruction go through lvlath's bfs package
// against an unweighted mirror graph; bfs refuses weighted graphs
// outright (bfs.ErrWeightedGraph), so edge weights are tracked separately
// in weights and looked up by endpoint pair.
type Naive struct {
	adj     *core.Graph
	weights map[edgeKey]int64
}

// NewNaive returns an empty dynamic forest.
func NewNaive() *Naive {
	return &Naive{
		adj:     core.NewGraph(),
		weights: make(map[edgeKey]int64),
	}
}

// Process offers the edge (u, v, w) to the forest. It returns true if the
// forest changed: either u and v were in different components and the
// edge was simply added, or they were already connected and w was
// strictly lighter than the heaviest edge on their current path, which
// was evicted in its favour.
func (n *Naive) Process(u, v int, w int64) bool {
	uID, vID := strconv.Itoa(u), strconv.Itoa(v)
	_ = n.adj.AddVertex(uID)
	_ = n.adj.AddVertex(vID)

	path, connected := n.pathEdges(uID, vID)
	if !connected {
		n.insertEdge(u, v, w)
		return true
	}
	if len(path) == 0 {
		return false
	}

	heaviest := path[0]
	for _, e := range path[1:] {
		if e.weight > heaviest.weight {
			heaviest = e
		}
	}
	if heaviest.weight <= w {
		return false
	}

	n.removeEdge(heaviest.u, heaviest.v)
	n.insertEdge(u, v, w)

	return true
}

// PathMax returns the maximum edge weight on the current u-v path in the
// forest Naive is maintaining, and whether u and v are connected at all
// (u == v counts as connected, with a vacuous path and no maximum). This is
// the shadow-adjacency-map oracle expose correctness is cross-checked
// against: it reuses the same path reconstruction Process does for its own
// heaviest-edge swap decision.
func (n *Naive) PathMax(u, v int) (int64, bool) {
	uID, vID := strconv.Itoa(u), strconv.Itoa(v)
	_ = n.adj.AddVertex(uID)
	_ = n.adj.AddVertex(vID)

	path, connected := n.pathEdges(uID, vID)
	if !connected {
		return 0, false
	}
	if len(path) == 0 {
		return 0, true
	}

	max := path[0].weight
	for _, e := range path[1:] {
		if e.weight > max {
			max = e.weight
		}
	}

	return max, true
}

// TotalWeight sums the weight of every edge currently in the forest.
func (n *Naive) TotalWeight() int64 {
	var total int64
	for _, w := range n.weights {
		total += w
	}

	return total
}

// pathEdges returns the chain of edges from uID to vID, and whether they
// are connected at all (an empty, connected path means uID == vID).
func (n *Naive) pathEdges(uID, vID string) ([]pathEdge, bool) {
	result, err := bfs.BFS(n.adj, uID)
	if err != nil {
		return nil, false
	}
	vertices, err := result.PathTo(vID)
	if err != nil {
		return nil, false
	}

	edges := make([]pathEdge, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		a, _ := strconv.Atoi(vertices[i])
		b, _ := strconv.Atoi(vertices[i+1])
		edges = append(edges, pathEdge{u: a, v: b, weight: n.weights[keyOf(a, b)]})
	}

	return edges, true
}

func (n *Naive) insertEdge(u, v int, w int64) {
	uID, vID := strconv.Itoa(u), strconv.Itoa(v)
	if _, err := n.adj.AddEdge(uID, vID, 0); err != nil {
		panic("oracle: naive insertEdge: " + err.Error())
	}
	n.weights[keyOf(u, v)] = w
}

func (n *Naive) removeEdge(u, v int) {
	uID, vID := strconv.Itoa(u), strconv.Itoa(v)
	for _, e := range n.adj.Edges() {
		if (e.From == uID && e.To == vID) || (e.From == vID && e.To == uID) {
			_ = n.adj.RemoveEdge(e.ID)
			break
		}
	}
	delete(n.weights, keyOf(u, v))
}
