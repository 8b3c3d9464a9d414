// Package simulate - the generic simulation driver.
package simulate

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kaerlev/distsim/core"
)

// Handler consumes one message addressed to node n and returns the messages
// it emits in response. Handlers are the only place node state mutates.
type Handler[N NodeState, M Message] func(n N, m M) ([]M, error)

// Runner owns one algorithm run: the wrapped nodes, the pending queue, the
// trace sink, and the run's random source. It is built from a read-only
// graph; every node is cloned on the way in, so the caller's graph is never
// touched.
type Runner[N NodeState, M Message] struct {
	nodes []N
	index map[string]int
	queue *Queue[M]
	trace *Trace
	rng   *rand.Rand
}

// NewRunner wraps every graph node through the per-algorithm factory wrap,
// preserving graph order, and prepares an empty queue with the given
// discipline. Returns ErrEmptyGraph when the graph is nil or has no nodes.
func NewRunner[N NodeState, M Message](
	g *core.Graph,
	wrap func(*core.Node) N,
	d Discipline,
	tr *Trace,
	opts ...Option,
) (*Runner[N, M], error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.RNG()

	r := &Runner[N, M]{
		nodes: make([]N, 0, g.Len()),
		index: make(map[string]int, g.Len()),
		queue: NewQueue[M](d, rng),
		trace: tr,
		rng:   rng,
	}
	for i, gn := range g.Nodes() {
		n := wrap(gn.Clone())
		r.nodes = append(r.nodes, n)
		r.index[n.Name()] = i
	}

	return r, nil
}

// Nodes returns the wrapped nodes in graph order.
func (r *Runner[N, M]) Nodes() []N { return r.nodes }

// Trace returns the run's trace sink (possibly nil).
func (r *Runner[N, M]) Trace() *Trace { return r.trace }

// Rand returns the run's random source, shared with the queue so one seed
// replays the whole run.
func (r *Runner[N, M]) Rand() *rand.Rand { return r.rng }

// Node returns the wrapped node with the given name. A miss means a
// connection referenced a peer that was never wrapped; the caller treats it
// as a topology failure.
func (r *Runner[N, M]) Node(name string) (N, error) {
	i, ok := r.index[name]
	if !ok {
		var zero N
		return zero, fmt.Errorf("node %q: %w", name, ErrUnknownNode)
	}

	return r.nodes[i], nil
}

// RandomNode picks one wrapped node uniformly.
func (r *Runner[N, M]) RandomNode() N {
	return r.nodes[r.rng.Intn(len(r.nodes))]
}

// ChooseInitiator picks one node uniformly and logs the choice.
func (r *Runner[N, M]) ChooseInitiator() N {
	n := r.RandomNode()
	r.trace.Printf("Chose %s as initiator.", n.Name())

	return n
}

// ChooseInitiators picks k distinct nodes uniformly (all of them when k
// exceeds the node count) and logs the chosen names.
func (r *Runner[N, M]) ChooseInitiators(k int) []N {
	if k > len(r.nodes) {
		k = len(r.nodes)
	}

	out := make([]N, 0, k)
	names := make([]string, 0, k)
	for _, i := range r.rng.Perm(len(r.nodes))[:k] {
		out = append(out, r.nodes[i])
		names = append(names, r.nodes[i].Name())
	}
	r.trace.Printf("Chose [%s] as initiators.", strings.Join(names, " "))

	return out
}

// Push enqueues one message under the run's discipline.
func (r *Runner[N, M]) Push(m M) { r.queue.Push(m) }

// PushAll enqueues a batch under the run's discipline.
func (r *Runner[N, M]) PushAll(ms []M) { r.queue.PushAll(ms) }

// Pending returns the number of undelivered messages.
func (r *Runner[N, M]) Pending() int { return r.queue.Len() }

// Drain runs the event loop: pop the front message, dispatch it to the
// destination node's handler, enqueue everything the handler emits. When the
// handler emitted anything and after is non-nil, after(len(out)) may inject
// extra messages (the snapshot algorithms use it for background traffic).
// stop, when non-nil, is consulted before each dispatch, so a predicate that
// fires mid-run halts the loop with messages still pending.
//
// Drain does not bound the loop: termination is each algorithm's own
// argument. A handler error or an unroutable destination aborts the run
// with the trace of prior steps intact.
func (r *Runner[N, M]) Drain(handle Handler[N, M], stop func() bool, after func(emitted int) []M) error {
	for r.queue.Len() > 0 {
		if stop != nil && stop() {
			return nil
		}

		m, _ := r.queue.Pop()
		dst, err := r.Node(m.To())
		if err != nil {
			r.trace.Printf("Cannot deliver %s: destination %q does not exist.", m, m.To())
			return err
		}

		out, err := handle(dst, m)
		if err != nil {
			return err
		}
		r.PushAll(out)

		if after != nil && len(out) > 0 {
			r.PushAll(after(len(out)))
		}
	}

	return nil
}
