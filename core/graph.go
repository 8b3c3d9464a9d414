// Package core - Graph methods: insertion, lookup, connection edits, clone.
package core

import "fmt"

// AddNode inserts a node with the given name and id and no connections.
// Returns ErrEmptyNodeName for an empty name and ErrDuplicateNode when the
// name is already taken.
// Complexity: O(1).
func (g *Graph) AddNode(name string, id int) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	if _, ok := g.index[name]; ok {
		return nil, fmt.Errorf("AddNode(%s): %w", name, ErrDuplicateNode)
	}

	n := &Node{Name: name, ID: id}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n, nil
}

// Add inserts an already-built node (used by the JSON loader). The node is
// stored as-is; its connection list is not validated against the graph.
func (g *Graph) Add(n *Node) error {
	if n == nil || n.Name == "" {
		return ErrEmptyNodeName
	}
	if _, ok := g.index[n.Name]; ok {
		return fmt.Errorf("Add(%s): %w", n.Name, ErrDuplicateNode)
	}

	g.index[n.Name] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// Connect adds (or replaces) the directed connection from→to with the given
// weight. Both endpoints must already exist.
// Complexity: O(deg(from)).
func (g *Graph) Connect(from, to string, weight float64) error {
	src, err := g.NodeByName(from)
	if err != nil {
		return fmt.Errorf("Connect(%s→%s): %w", from, to, err)
	}
	if _, err = g.NodeByName(to); err != nil {
		return fmt.Errorf("Connect(%s→%s): %w", from, to, err)
	}

	src.AddConnection(Connection{Other: to, Weight: weight})

	return nil
}

// ConnectBoth adds both directed connections between a and b with the same
// weight, modeling the editor's undirected link.
func (g *Graph) ConnectBoth(a, b string, weight float64) error {
	if err := g.Connect(a, b, weight); err != nil {
		return err
	}

	return g.Connect(b, a, weight)
}

// NodeByName returns the node with the given name or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) NodeByName(name string) (*Node, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", name, ErrNodeNotFound)
	}

	return g.nodes[i], nil
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Nodes returns the nodes in insertion order. The slice is a fresh copy but
// the pointers alias graph storage; use Clone for an independent graph.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Clone returns a deep copy of the graph: every node and connection list is
// duplicated, so mutations on the copy never reach the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		nodes: make([]*Node, len(g.nodes)),
		index: make(map[string]int, len(g.index)),
	}
	for i, n := range g.nodes {
		cp.nodes[i] = n.Clone()
		cp.index[n.Name] = i
	}

	return cp
}
