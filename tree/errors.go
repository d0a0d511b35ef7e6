package tree

import "errors"

// Sentinel errors for facade-level precondition violations. These cover
// the "recoverable" half of spec §7: Link/Cut preconditions a caller can
// reasonably violate by accident. Internal-inconsistency conditions
// (a corrupt hierarchy) are not sentinel errors — they panic, since they
// signal a bug in the engine itself rather than a caller mistake.
var (
	// ErrSameVertex is returned by Link when u and v are the same vertex;
	// a cluster's two boundary vertices must be distinct.
	ErrSameVertex = errors.New("tree: cannot link a vertex to itself")

	// ErrAlreadyConnected is returned by Link when u and v already lie in
	// the same component (Link does not support adding a redundant edge;
	// callers that want cycle detection should Expose first).
	ErrAlreadyConnected = errors.New("tree: vertices already connected")

	// ErrNotALeaf is returned by Cut when the given cluster is not a LEAF
	// cluster (Cut only removes edges, i.e. LEAF clusters, identified by
	// the Ptr field of an Expose result).
	ErrNotALeaf = errors.New("tree: cut requires a leaf cluster handle")
)
