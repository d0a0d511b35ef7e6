// Package oracle provides two independent, deliberately unsophisticated
// ways to compute a minimum spanning forest, used in tests to check
// tree/msf's output rather than to compete with it on speed:
//
//	Kruskal  — an offline oracle: sort every edge once, union-find it.
//	Naive    — an incremental oracle: on each edge, walk the current
//	           path with a plain BFS and swap out the heaviest edge on
//	           it if the new one is lighter.
package oracle
