// Package msf drives tree.Tree to maintain an incremental minimum
// spanning forest: each edge offered to Forest.Process either joins two
// components outright, replaces the heaviest edge on the path it would
// otherwise close a cycle with, or is dropped as redundant.
package msf
