// Package core - node and connection types plus sentinel errors.
//
// This file declares Connection, Node, Graph, and the core sentinels.
// Graph methods live in graph.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates a node with an empty name was supplied.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates a node name is already present in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Connection is one outgoing link from a node to a named peer.
//
// Other references the peer by name; the referenced node is assumed, not
// verified, to exist in the same Graph (resolution happens at simulation
// time, where a missing peer is a topology failure).
type Connection struct {
	// Other is the destination node's name.
	Other string `json:"other"`

	// Weight is the link weight. Informational for the simulations, which
	// route by name only.
	Weight float64 `json:"weight"`
}

// Node is a named graph vertex owning its ordered outgoing connection list.
//
// Name uniquely identifies the node within its Graph and acts as the routing
// address for simulation messages. ID is a numeric identity used by
// comparison-based algorithms (leader election); uniqueness of IDs is the
// caller's responsibility.
type Node struct {
	// Name uniquely identifies this node.
	Name string `json:"name"`

	// ID is the node's numeric identity.
	ID int `json:"id"`

	// Connections is the ordered list of outgoing links. Index 0 is the
	// designated successor for ring algorithms.
	Connections []Connection `json:"connections"`
}

// AddConnection inserts c into the node's connection list, replacing an
// existing connection to the same peer in place (so connection order is
// stable under repeated edits, matching the editor's behavior).
func (n *Node) AddConnection(c Connection) {
	if i := n.ConnectionIndex(c.Other); i >= 0 {
		n.Connections[i] = c
		return
	}
	n.Connections = append(n.Connections, c)
}

// ConnectionIndex returns the position of the connection to peer other,
// or -1 when no such connection exists.
func (n *Node) ConnectionIndex(other string) int {
	for i := range n.Connections {
		if n.Connections[i].Other == other {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy of the node; the copy's connection list is
// independent of the original.
func (n *Node) Clone() *Node {
	cp := &Node{
		Name:        n.Name,
		ID:          n.ID,
		Connections: make([]Connection, len(n.Connections)),
	}
	copy(cp.Connections, n.Connections)

	return cp
}

// Graph is an ordered, name-indexed collection of nodes.
//
// Order is insertion order and is observable: simulations wrap nodes in this
// order, so a Graph built the same way always produces the same node layout.
// Graph is not safe for concurrent mutation; a simulation run clones what it
// needs up front.
type Graph struct {
	nodes []*Node
	index map[string]int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}
