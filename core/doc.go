// Package core defines the graph model consumed by the simulation packages:
// named nodes, each owning an ordered list of outgoing weighted connections,
// collected into an ordered, name-indexed Graph.
//
// The model mirrors the editor-facing shape (a node list, adjacency stored on
// the node, JSON field names of the saved format) rather than a general
// edge-set graph: simulations address peers by name and walk a node's own
// connection list, nothing else.
//
// Simulations never mutate a caller's Graph. Every run clones the nodes it
// wraps, so the editable graph and the simulation state stay independent.
//
// Errors:
//
//	ErrEmptyNodeName - node name is the empty string.
//	ErrDuplicateNode - a node with the same name already exists.
//	ErrNodeNotFound  - requested node does not exist.
package core
