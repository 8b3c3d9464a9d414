// Package snapshot - the Chandy-Lamport marker algorithm.
package snapshot

import (
	"fmt"
	"math/rand"

	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/simulate"
)

// clMessage is a Chandy-Lamport wire message. Delivery is FIFO: the marker
// rule is only a valid cut separator when a channel preserves send order.
type clMessage struct {
	from string
	to   string
	kind Kind
	time uint64
}

// From implements simulate.Message.
func (m clMessage) From() string { return m.from }

// To implements simulate.Message.
func (m clMessage) To() string { return m.to }

// String implements simulate.Message, e.g. "<mark> a->b".
func (m clMessage) String() string {
	return fmt.Sprintf("<%s> %s->%s", m.kind, m.from, m.to)
}

// clNode is the per-node state: the cloned graph node, a running balance,
// the set of channels a <mark> has arrived on, and the local snapshot once
// taken.
type clNode struct {
	node     *core.Node
	clock    simulate.Clock
	state    int
	received map[string]bool
	snapshot *Record
}

// Name implements simulate.NodeState.
func (n *clNode) Name() string { return n.node.Name }

func wrapCL(gn *core.Node) *clNode {
	return &clNode{node: gn, received: make(map[string]bool)}
}

// cut records the local snapshot and emits a <mark> to every outgoing
// connection. Called at most once per node per run.
func (n *clNode) cut(tr *simulate.Trace) ([]clMessage, error) {
	n.snapshot = &Record{State: n.state, Timestamp: n.clock.Now()}
	tr.Printf("%s took %s", n.Name(), n.snapshot)

	outgoing := make([]clMessage, 0, len(n.node.Connections))
	for _, c := range n.node.Connections {
		t, err := n.clock.Tick()
		if err != nil {
			return nil, err
		}
		m := clMessage{from: n.Name(), to: c.Other, kind: Mark, time: t}
		outgoing = append(outgoing, m)
		tr.Printf("Sent %s.", m)
	}

	return outgoing, nil
}

// handle consumes one delivered message.
//
// Marker rule: the first <mark> triggers the local cut and a <mark> fan-out;
// every <mark> closes its channel. A transfer always applies to the running
// balance, and is additionally recorded into the snapshot when the node has
// already cut but the transfer's channel is still open - that is the traffic
// in flight across the cut.
func (n *clNode) handle(m clMessage, tr *simulate.Trace) ([]clMessage, error) {
	if _, err := n.clock.Observe(m.time); err != nil {
		return nil, err
	}
	tr.Printf("%s received %s", n.Name(), m)

	switch m.kind {
	case Mark:
		var out []clMessage
		if n.snapshot == nil {
			var err error
			if out, err = n.cut(tr); err != nil {
				return nil, err
			}
		}
		n.received[m.from] = true
		tr.Printf("%s notes it has received <mark> from %s.", n.Name(), m.from)

		return out, nil

	case Increment:
		n.record(m, tr)
		n.state++
	case Decrement:
		n.record(m, tr)
		n.state--
	}

	return nil, nil
}

// record appends the transfer to the snapshot when it crossed the cut.
func (n *clNode) record(m clMessage, tr *simulate.Trace) {
	if n.snapshot == nil || n.received[m.from] {
		return
	}
	tr.Printf("%s saves %s in snapshot.", n.Name(), m)
	n.snapshot.Messages = append(n.snapshot.Messages, RecordedMessage{From: m.from, Kind: m.kind})
}

// transfer emits one random increment/decrement to a random neighbor,
// moving the sender's balance by the opposite sign so the total stays
// conserved while the message is in flight. Nodes without outgoing
// connections have nowhere to send and report ok=false.
func (n *clNode) transfer(rng *rand.Rand, tr *simulate.Trace) (m clMessage, ok bool, err error) {
	if len(n.node.Connections) == 0 {
		return clMessage{}, false, nil
	}
	dest := n.node.Connections[rng.Intn(len(n.node.Connections))]

	kind := Increment
	if rng.Intn(2) == 0 {
		kind = Decrement
	}
	if kind == Increment {
		n.state--
	} else {
		n.state++
	}

	t, err := n.clock.Tick()
	if err != nil {
		return clMessage{}, false, err
	}
	m = clMessage{from: n.Name(), to: dest.Other, kind: kind, time: t}
	tr.Printf("%s=%d and sends %s", n.Name(), n.state, m)

	return m, true, nil
}

// ChandyLamport takes a consistent global snapshot of the diffusing
// computation over g, appending every step to tr, and returns the verdict.
//
// Protocol: a random initiator cuts immediately and floods <mark>s; every
// other node cuts on its first <mark>; FIFO delivery guarantees a channel's
// <mark> precedes everything sent after it on that channel. Background
// transfers run before, during, and after the cut per the traffic options.
//
// An incomplete snapshot (a node the <mark> flood never reached) yields
// Result.Complete == false and a nil error. A connection referencing a
// missing node aborts the run with the prior trace intact.
func ChandyLamport(g *core.Graph, tr *simulate.Trace, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r, err := simulate.NewRunner[*clNode, clMessage](g, wrapCL, simulate.FIFO, tr, simulate.WithSeed(o.Seed))
	if err != nil {
		tr.Printf("No nodes in graph.")
		return nil, fmt.Errorf("chandy-lamport: %w", ErrEmptyGraph)
	}
	tr.Printf("Started Chandy-Lamport snapshot with %d nodes.", len(r.Nodes()))

	initiator := r.ChooseInitiator()

	handle := func(n *clNode, m clMessage) ([]clMessage, error) { return n.handle(m, tr) }
	traffic := func(count int) ([]clMessage, error) {
		out := make([]clMessage, 0, count)
		for i := 0; i < count; i++ {
			m, ok, terr := r.RandomNode().transfer(r.Rand(), tr)
			if terr != nil {
				return nil, terr
			}
			if ok {
				out = append(out, m)
			}
		}

		return out, nil
	}

	// Pre-cut traffic guarantees in-flight transfers exist when the cut is taken.
	pre, err := traffic(o.PreTraffic)
	if err != nil {
		return nil, fmt.Errorf("chandy-lamport: %w", err)
	}
	r.PushAll(pre)

	marks, err := initiator.cut(tr)
	if err != nil {
		return nil, fmt.Errorf("chandy-lamport: %w", err)
	}
	r.PushAll(marks)

	post, err := traffic(o.PostTraffic)
	if err != nil {
		return nil, fmt.Errorf("chandy-lamport: %w", err)
	}
	r.PushAll(post)

	// Echo traffic keeps the system live while the marks propagate; capture
	// the first traffic error and surface it after the drain.
	var echoErr error
	err = r.Drain(handle, nil, func(int) []clMessage {
		out, terr := traffic(o.EchoTraffic)
		if terr != nil && echoErr == nil {
			echoErr = terr
		}

		return out
	})
	if err == nil {
		err = echoErr
	}
	if err != nil {
		return nil, fmt.Errorf("chandy-lamport: %w", err)
	}

	order := make([]string, 0, len(r.Nodes()))
	records := make(map[string]*Record, len(r.Nodes()))
	for _, n := range r.Nodes() {
		order = append(order, n.Name())
		if n.snapshot != nil {
			records[n.Name()] = n.snapshot
		}
	}

	return summarize(tr, order, records), nil
}
