// Package election - status machine, result, options, sentinel errors.
package election

import "errors"

// Sentinel errors for election runs.
var (
	// ErrEmptyGraph is returned when an election is started on a graph with no nodes.
	ErrEmptyGraph = errors.New("election: no nodes in graph")

	// ErrNoOutgoing is returned when a ring node has no outgoing connection
	// to forward along. The offending node is named in the wrapped error and
	// in the trace.
	ErrNoOutgoing = errors.New("election: node has no outgoing connection")
)

// Status is a node's position in the Chang-Roberts state machine.
// Transitions: Active→Passive (forwarded a greater id), Active→Leader
// (own id returned). Passive and Leader are terminal.
type Status int

const (
	// Active nodes still consider their own id a candidate.
	Active Status = iota

	// Passive nodes relay messages unchanged.
	Passive

	// Leader is the elected node; it absorbs any further messages.
	Leader
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Passive:
		return "passive"
	case Leader:
		return "leader"
	default:
		return "unknown"
	}
}

// Result is an election run's verdict.
type Result struct {
	// Elected is true when some node reached Leader.
	Elected bool

	// Leader is the winning node's name; empty when the election failed.
	Leader string

	// LeaderID is the winning node's id; meaningful only when Elected.
	LeaderID int
}

// Option configures an election run via functional arguments.
type Option func(*Options)

// Options holds the election tunables.
type Options struct {
	// Seed feeds the run's random source; 0 selects the fixed default seed.
	Seed int64
}

// DefaultOptions returns the baseline options.
func DefaultOptions() Options { return Options{} }

// WithSeed fixes the run's random seed for deterministic replay.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
