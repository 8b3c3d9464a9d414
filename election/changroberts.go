// Package election - the Chang-Roberts algorithm.
package election

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/simulate"
)

// crMessage circulates a candidate id around the ring.
type crMessage struct {
	from string
	to   string
	id   int
}

// From implements simulate.Message.
func (m crMessage) From() string { return m.from }

// To implements simulate.Message.
func (m crMessage) To() string { return m.to }

// String implements simulate.Message, e.g. "<leader=3> a->b".
func (m crMessage) String() string {
	return fmt.Sprintf("<leader=%d> %s->%s", m.id, m.from, m.to)
}

// passOn rewrites the envelope for the next hop, keeping the candidate id.
func (m crMessage) passOn(from, to string) crMessage {
	return crMessage{from: from, to: to, id: m.id}
}

// crNode is the per-node state: the cloned graph node and its status.
type crNode struct {
	node   *core.Node
	status Status
}

// Name implements simulate.NodeState.
func (n *crNode) Name() string { return n.node.Name }

func wrapCR(gn *core.Node) *crNode {
	return &crNode{node: gn}
}

// successor returns the designated ring successor (Connections[0]).
func (n *crNode) successor() (string, error) {
	if len(n.node.Connections) == 0 {
		return "", fmt.Errorf("node %q: %w", n.Name(), ErrNoOutgoing)
	}

	return n.node.Connections[0].Other, nil
}

// initiate emits the node's own candidacy to its successor.
func (n *crNode) initiate() (crMessage, error) {
	succ, err := n.successor()
	if err != nil {
		return crMessage{}, err
	}

	return crMessage{from: n.Name(), to: succ, id: n.node.ID}, nil
}

// handle consumes one circulating candidacy.
//
// Passive relays unchanged. Active compares: a smaller id is dismissed, a
// greater id turns this node Passive and travels on, its own id makes this
// node the Leader. A Leader absorbs everything.
func (n *crNode) handle(m crMessage, tr *simulate.Trace) ([]crMessage, error) {
	if n.status == Passive {
		tr.Printf("%s=passive received %s", n.Name(), m)
	} else {
		tr.Printf("%s=%d received %s", n.Name(), n.node.ID, m)
	}

	switch n.status {
	case Passive:
		succ, err := n.successor()
		if err != nil {
			tr.Printf("%s has no successor to relay to.", n.Name())
			return nil, err
		}

		return []crMessage{m.passOn(n.Name(), succ)}, nil

	case Active:
		switch {
		case m.id < n.node.ID:
			tr.Printf("%d<%d so the message is dismissed.", m.id, n.node.ID)

		case m.id > n.node.ID:
			tr.Printf("%d>%d so %s is now passive.", m.id, n.node.ID, n.Name())
			n.status = Passive
			succ, err := n.successor()
			if err != nil {
				tr.Printf("%s has no successor to relay to.", n.Name())
				return nil, err
			}

			return []crMessage{m.passOn(n.Name(), succ)}, nil

		default:
			tr.Printf("%d=%d so %s declares itself the leader.", m.id, n.node.ID, n.Name())
			n.status = Leader
		}

	case Leader:
		// The round is already decided; stray messages die here.
	}

	return nil, nil
}

// ChangRoberts elects a leader on the ring formed by every node's
// Connections[0], appending every step to tr.
//
// All nodes initiate simultaneously. The loop stops as soon as some node
// reaches Leader or the queue drains; a drained queue without a leader is
// reported as a failed election, not an error. A node without an outgoing
// connection aborts the run with ErrNoOutgoing.
func ChangRoberts(g *core.Graph, tr *simulate.Trace, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r, err := simulate.NewRunner[*crNode, crMessage](g, wrapCR, simulate.Random, tr, simulate.WithSeed(o.Seed))
	if err != nil {
		tr.Printf("No nodes in graph.")
		return nil, fmt.Errorf("chang-roberts: %w", ErrEmptyGraph)
	}
	tr.Printf("Started Chang-Roberts election with %d nodes.", len(r.Nodes()))

	// Every node initiates; under random delivery the candidacies interleave
	// arbitrarily from the start.
	for _, n := range r.Nodes() {
		m, ierr := n.initiate()
		if ierr != nil {
			tr.Printf("Cannot initiate from %s: no outgoing connection.", n.Name())
			return nil, fmt.Errorf("chang-roberts: %w", ierr)
		}
		tr.Printf("Sent %s.", m)
		r.Push(m)
	}

	var leader *crNode
	handle := func(n *crNode, m crMessage) ([]crMessage, error) {
		out, herr := n.handle(m, tr)
		if herr == nil && n.status == Leader {
			leader = n
		}

		return out, herr
	}

	if err = r.Drain(handle, func() bool { return leader != nil }, nil); err != nil {
		return nil, fmt.Errorf("chang-roberts: %w", err)
	}

	if leader == nil {
		tr.Printf("Leader election failed.")
		return &Result{}, nil
	}
	tr.Printf("Node %s was chosen as leader.", leader.Name())

	return &Result{Elected: true, Leader: leader.Name(), LeaderID: leader.node.ID}, nil
}
