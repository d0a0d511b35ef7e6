package oracle

import (
	"strconv"

	"github.com/katalvlaran/toptree/bfs"
	"github.com/katalvlaran/toptree/core"
	"github.com/katalvlaran/toptree/dimacs"
	"github.com/katalvlaran/toptree/prim_kruskal"
)

// Kruskal computes a minimum spanning forest over edges offline: it groups
// vertices into connected components with a BFS pass, then hands each
// component to lvlath's own prim_kruskal.Kruskal (which requires a single
// connected graph) and concatenates the per-component results.
func Kruskal(edges []dimacs.Edge) ([]dimacs.Edge, int64, error) {
	// WithMultiEdges: a raw edge stream can repeat the same pair more than
	// once (two draws of the same undirected pair, possibly at different
	// weights); Kruskal's algorithm already handles parallel edges
	// correctly on its own (a heavier duplicate only ever closes a cycle),
	// so the graph just needs to accept them instead of erroring.
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, e := range edges {
		u, v := strconv.Itoa(e.U), strconv.Itoa(e.V)
		if _, err := g.AddEdge(u, v, e.Weight); err != nil {
			return nil, 0, err
		}
	}

	unweighted := core.UnweightedView(g)
	visited := make(map[string]bool)

	var mst []dimacs.Edge
	var total int64

	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}

		result, err := bfs.BFS(unweighted, id)
		if err != nil {
			return nil, 0, err
		}

		keep := make(map[string]bool, len(result.Order))
		for _, v := range result.Order {
			visited[v] = true
			keep[v] = true
		}

		componentMST, weight, err := prim_kruskal.Kruskal(core.InducedSubgraph(g, keep))
		if err != nil {
			return nil, 0, err
		}

		for _, e := range componentMST {
			u, err := strconv.Atoi(e.From)
			if err != nil {
				return nil, 0, err
			}
			v, err := strconv.Atoi(e.To)
			if err != nil {
				return nil, 0, err
			}
			mst = append(mst, dimacs.Edge{U: u, V: v, Weight: e.Weight})
		}
		total += weight
	}

	return mst, total, nil
}
