// Package toptree is a self-adjusting top-tree over a forest of weighted,
// undirected edges, used here to drive an incremental minimum spanning
// forest.
//
// 🌲 What is toptree?
//
//	A link/cut/expose data structure that keeps a balanced hierarchical
//	contraction of an unrooted tree (RAKE/COMPRESS clusters over circular
//	Euler tours) so that, after every edge insertion, the maximum-weight
//	edge on any tree path can be found and swapped out in poly-log time.
//
// ✨ Why a top-tree for MSF?
//
//   - Link(u,v,w)   — add an edge, joining two components.
//   - Cut(leaf)     — remove an edge by its cluster handle.
//   - Expose(u,v)   — the cluster summarising the u–v path, without
//     touching the live hierarchy (safe to query speculatively).
//
// Under the hood, everything is organized under focused subpackages:
//
//	tree/    — Vertex/Arc/Cluster, the level engine, and the Link/Cut/Expose facade
//	msf/     — the incremental MSF driver that calls Expose/Link/Cut per edge
//	oracle/  — offline Kruskal and a naive dynamic-MST oracle, used to verify msf
//	dimacs/  — a DIMACS-style edge-stream parser
//	core/, bfs/, prim_kruskal/ — lvlath's own graph primitives, reused by oracle
//
// A benchmark CLI lives at cmd/toptreebench and times the top-tree MSF
// loop against both oracles on a given input file.
//
//	go get github.com/katalvlaran/toptree/tree
package toptree
