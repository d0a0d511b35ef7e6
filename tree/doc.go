// Package tree implements a self-adjusting top-tree over a forest of
// weighted, undirected edges.
//
// A top-tree is a balanced hierarchical contraction of an unrooted tree:
// each internal node (a Cluster) summarises a connected subgraph whose
// boundary consists of at most two boundary vertices. The hierarchy is
// maintained through locally valid RAKE/COMPRESS moves over circular
// Euler tours at every level, kept consistent after every Link and Cut by
// a private level engine (update).
//
// The public surface is deliberately small:
//
//	Link(u, v, w)   — add an edge between two vertices not yet connected.
//	Cut(leaf)       — remove an edge, given the LEAF cluster handle Expose returned.
//	Expose(u, v)    — non-destructively summarise the u-v tree path.
//	Roots()         — enumerate the per-component top-level clusters.
//
// The remaining exported types (Vertex, Arc, Cluster) are exported only
// so that a caller holding a Cluster handle from Expose can read its
// Data (MaxCost, Ptr) and pass Ptr back to Cut; callers are not expected to
// mutate Arc/Cluster fields directly.
//
// Complexity: Link, Cut and Expose are O(log n) amortized over a sequence
// of operations, via the standard top-tree contraction argument.
package tree
