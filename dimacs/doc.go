// Package dimacs parses the DIMACS-style edge-stream text format used by
// the maximum-flow problem family and repurposed here as a weighted
// undirected edge list:
//
//	c this is a comment
//	p edge 5 2          (vertex count; the rest of the line is ignored)
//	a 1 2 7             (edge: tail head weight)
//	n 1 s               (source marker, parsed but not acted on)
//	n 5 t               (sink marker, parsed but not acted on)
//
// Source/sink markers exist purely so that files written for the original
// max-flow tooling still parse cleanly; an edge stream consumer has no use
// for them. Reversed duplicate edges (a 1 2 7 followed later by a 2 1 7)
// are dropped after their first occurrence, matching the de-duplicating
// set the original benchmark script built by hand before feeding its MST
// drivers.
package dimacs
