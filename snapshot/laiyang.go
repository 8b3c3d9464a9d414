// Package snapshot - the Lai-Yang message-counting algorithm.
package snapshot

import (
	"fmt"
	"math/rand"

	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/simulate"
)

// lyMessage is a Lai-Yang wire message. Transfers carry the sender's
// post-snapshot color; <mark>s carry the sender's pre-snapshot sent count
// for the channel, so the receiver can tell when the channel owes it
// nothing more. Delivery is deliberately non-FIFO: the counters, not the
// channel order, define the cut.
type lyMessage struct {
	from string
	to   string
	kind Kind
	post bool // transfer color: sender had already cut
	count int // mark payload: sender's pre-cut sent count on this channel
	time  uint64
}

// From implements simulate.Message.
func (m lyMessage) From() string { return m.from }

// To implements simulate.Message.
func (m lyMessage) To() string { return m.to }

// String implements simulate.Message, e.g. "<mark=2> a->b" or
// "<increment post> a->b".
func (m lyMessage) String() string {
	if m.kind == Mark {
		return fmt.Sprintf("<mark=%d> %s->%s", m.count, m.from, m.to)
	}

	color := "pre"
	if m.post {
		color = "post"
	}

	return fmt.Sprintf("<%s %s> %s->%s", m.kind, color, m.from, m.to)
}

// lyNode is the per-node state: balance, per-neighbor sent counters (seeded
// to zero for every distinct neighbor at wrap time), per-channel white
// received counters, the pre-cut counts advertised by arrived <mark>s, the
// local snapshot, and the settled flag.
type lyNode struct {
	node     *core.Node
	clock    simulate.Clock
	state    int
	sent     map[string]int // messages sent, per neighbor
	received map[string]int // white transfers received, per sender
	expected map[string]int // pre-cut sent counts advertised via <mark>
	snapshot *Record
	done     bool
}

// Name implements simulate.NodeState.
func (n *lyNode) Name() string { return n.node.Name }

func wrapLY(gn *core.Node) *lyNode {
	sent := make(map[string]int, len(gn.Connections))
	for _, c := range gn.Connections {
		sent[c.Other] = 0
	}

	return &lyNode{
		node:     gn,
		sent:     sent,
		received: make(map[string]int),
		expected: make(map[string]int),
	}
}

// cut records the local snapshot and emits a <mark> per outgoing connection
// carrying the channel's current (entirely pre-cut) sent count.
func (n *lyNode) cut(tr *simulate.Trace) ([]lyMessage, error) {
	n.snapshot = &Record{State: n.state, Timestamp: n.clock.Now()}
	tr.Printf("%s took %s", n.Name(), n.snapshot)

	outgoing := make([]lyMessage, 0, len(n.node.Connections))
	for _, c := range n.node.Connections {
		t, err := n.clock.Tick()
		if err != nil {
			return nil, err
		}
		m := lyMessage{from: n.Name(), to: c.Other, kind: Mark, count: n.sent[c.Other], time: t}
		outgoing = append(outgoing, m)
		tr.Printf("Sent %s.", m)
	}

	return outgoing, nil
}

// handle consumes one delivered message.
//
// Coloring rules: a white (pre-cut) transfer always counts toward the
// sender's channel and is recorded when this node has already cut - it
// crossed the cut in flight. A red (post-cut) transfer is first contact
// with the cut for a node that has not cut yet, and is never recorded. A
// <mark> both triggers a first cut and advertises how many white transfers
// its channel carried.
func (n *lyNode) handle(m lyMessage, tr *simulate.Trace) ([]lyMessage, error) {
	if _, err := n.clock.Observe(m.time); err != nil {
		return nil, err
	}
	tr.Printf("%s received %s", n.Name(), m)

	var out []lyMessage
	var err error

	switch m.kind {
	case Mark:
		if n.snapshot == nil {
			if out, err = n.cut(tr); err != nil {
				return nil, err
			}
		}
		n.expected[m.from] = m.count
		tr.Printf("%s notes %s owed it %d pre-snapshot messages.", n.Name(), m.from, m.count)

	case Increment, Decrement:
		if m.post {
			if n.snapshot == nil {
				tr.Printf("%s cuts on first contact with a post-snapshot message.", n.Name())
				if out, err = n.cut(tr); err != nil {
					return nil, err
				}
			}
		} else {
			n.received[m.from]++
			if n.snapshot != nil {
				tr.Printf("%s saves %s in snapshot.", n.Name(), m)
				n.snapshot.Messages = append(n.snapshot.Messages, RecordedMessage{From: m.from, Kind: m.kind})
			}
		}
		if m.kind == Increment {
			n.state++
		} else {
			n.state--
		}
	}

	n.checkSettled(tr)

	return out, nil
}

// checkSettled recomputes channel completion: the node is settled once it
// has cut and every channel a <mark> arrived on delivered exactly as many
// white transfers as the <mark> advertised. A later <mark> from a new
// channel can unsettle the node again; only the transition to settled is
// logged.
func (n *lyNode) checkSettled(tr *simulate.Trace) {
	if n.snapshot == nil {
		n.done = false
		return
	}
	for from, want := range n.expected {
		if n.received[from] < want {
			n.done = false
			return
		}
	}
	if !n.done {
		n.done = true
		tr.Printf("%s has received every pre-snapshot message it was owed.", n.Name())
	}
}

// transfer emits one random colored transfer, bumping the channel's sent
// counter and moving the sender's balance by the opposite sign.
func (n *lyNode) transfer(rng *rand.Rand, tr *simulate.Trace) (m lyMessage, ok bool, err error) {
	if len(n.node.Connections) == 0 {
		return lyMessage{}, false, nil
	}
	dest := n.node.Connections[rng.Intn(len(n.node.Connections))]
	n.sent[dest.Other]++

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
		return lyMessage{}, false, err
	}
	m = lyMessage{from: n.Name(), to: dest.Other, kind: kind, post: n.snapshot != nil, time: t}
	tr.Printf("%s=%d and sends %s", n.Name(), n.state, m)

	return m, true, nil
}

// LaiYang takes a consistent global snapshot of the diffusing computation
// over g without assuming channel order, appending every step to tr.
//
// A random initiator cuts immediately; other nodes cut on the first <mark>
// or the first post-snapshot transfer, whichever arrives first. Per-channel
// counters tell each node when every pre-cut transfer has been accounted
// for. Verification mirrors ChandyLamport restricted to white transfers,
// which is exactly what the records contain.
func LaiYang(g *core.Graph, tr *simulate.Trace, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r, err := simulate.NewRunner[*lyNode, lyMessage](g, wrapLY, simulate.Random, tr, simulate.WithSeed(o.Seed))
	if err != nil {
		tr.Printf("No nodes in graph.")
		return nil, fmt.Errorf("lai-yang: %w", ErrEmptyGraph)
	}
	tr.Printf("Started Lai-Yang snapshot with %d nodes.", len(r.Nodes()))

	initiator := r.ChooseInitiator()

	handle := func(n *lyNode, m lyMessage) ([]lyMessage, error) { return n.handle(m, tr) }
	traffic := func(count int) ([]lyMessage, error) {
		out := make([]lyMessage, 0, count)
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

	pre, err := traffic(o.PreTraffic)
	if err != nil {
		return nil, fmt.Errorf("lai-yang: %w", err)
	}
	r.PushAll(pre)

	marks, err := initiator.cut(tr)
	if err != nil {
		return nil, fmt.Errorf("lai-yang: %w", err)
	}
	r.PushAll(marks)

	post, err := traffic(o.PostTraffic)
	if err != nil {
		return nil, fmt.Errorf("lai-yang: %w", err)
	}
	r.PushAll(post)

	var echoErr error
	err = r.Drain(handle, nil, func(int) []lyMessage {
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
		return nil, fmt.Errorf("lai-yang: %w", err)
	}

	order := make([]string, 0, len(r.Nodes()))
	records := make(map[string]*Record, len(r.Nodes()))
	settled := 0
	for _, n := range r.Nodes() {
		order = append(order, n.Name())
		if n.snapshot != nil {
			records[n.Name()] = n.snapshot
		}
		if n.done {
			settled++
		}
	}
	tr.Printf("%d of %d nodes settled every channel.", settled, len(order))

	return summarize(tr, order, records), nil
}
