// Package simulate - shared types, sentinel errors, and functional options.
package simulate

import (
	"errors"
	"math/rand"
)

// Sentinel errors for simulation runs.
var (
	// ErrEmptyGraph is returned when a run is started over a graph with no nodes.
	ErrEmptyGraph = errors.New("simulate: no nodes in graph")

	// ErrUnknownNode is returned when a message's destination has no wrapped
	// node state. Destinations derive from graph connections, so this marks a
	// connection referencing a peer absent from the graph.
	ErrUnknownNode = errors.New("simulate: no node for destination")

	// ErrClockOverflow is returned when a Lamport clock can no longer advance.
	// It indicates an engine bug (or an absurdly long run) and aborts the run.
	ErrClockOverflow = errors.New("simulate: lamport clock overflow")
)

// Message is the contract every simulated message satisfies: it knows its
// endpoints by node name and renders itself for the trace.
type Message interface {
	// From is the sending node's name.
	From() string

	// To is the destination node's name.
	To() string

	// String renders the message for trace lines, e.g. "<mark> a->b".
	String() string
}

// NodeState is the per-algorithm wrapper around a graph node. Each algorithm
// defines its own state type; the driver only needs the routing name.
type NodeState interface {
	// Name is the wrapped graph node's unique name.
	Name() string
}

// Discipline selects where newly enqueued messages land in the pending queue.
// The dequeue side always pops from the front; disciplines differ only in
// insertion position.
type Discipline int

const (
	// FIFO appends to the back, preserving emission order.
	FIFO Discipline = iota

	// Random inserts at a uniformly random index in [0, len], so any
	// interleaving of deliveries is possible, including same-batch reordering.
	Random
)

// String implements fmt.Stringer.
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Option configures a simulation run via functional arguments.
type Option func(*Options)

// Options holds run-level knobs shared by every algorithm driver.
type Options struct {
	// Seed feeds the run's random source. Seed 0 selects a fixed default
	// seed, so the zero value is still deterministic.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely. Used by tests that need
	// to share or pre-advance a stream.
	Rand *rand.Rand
}

// DefaultOptions returns the baseline options: default seed, no injected source.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed fixes the run's random seed. Same seed, same graph, same trace.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a random source directly, bypassing seed policy.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// RNG resolves the options into a concrete random source.
func (o Options) RNG() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
