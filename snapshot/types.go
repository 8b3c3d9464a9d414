// Package snapshot - shared record/result types, options, and sentinel errors.
package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for snapshot runs.
var (
	// ErrEmptyGraph is returned when a snapshot is started on a graph with no nodes.
	ErrEmptyGraph = errors.New("snapshot: no nodes in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("snapshot: invalid option supplied")
)

// Kind tags the payload of a snapshot-algorithm message.
type Kind int

const (
	// Mark is the control message: "my snapshot is taken".
	Mark Kind = iota

	// Increment transfers +1 to the destination's balance.
	Increment

	// Decrement transfers -1 to the destination's balance.
	Decrement
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Mark:
		return "mark"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// RecordedMessage is one in-flight transfer a node decided crossed the cut.
type RecordedMessage struct {
	// From is the sending node's name (the channel the transfer arrived on).
	From string

	// Kind is Increment or Decrement; marks are never recorded.
	Kind Kind
}

// String implements fmt.Stringer.
func (m RecordedMessage) String() string {
	return fmt.Sprintf("<%s> from %s", m.Kind, m.From)
}

// Record is one node's local snapshot: its balance at the moment of the cut
// plus the ordered transfers it recorded as in flight. Created once per node
// per run; Messages is append-only while the run drains, immutable afterward.
type Record struct {
	// State is the node's balance when it took the snapshot.
	State int

	// Timestamp is the node's Lamport time at the cut.
	Timestamp uint64

	// Messages are the recorded in-flight transfers, in arrival order.
	Messages []RecordedMessage
}

// String implements fmt.Stringer, e.g. "Snapshot(2, [<increment> from b])".
func (r *Record) String() string {
	if r == nil {
		return "None"
	}

	parts := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		parts[i] = m.String()
	}

	return fmt.Sprintf("Snapshot(%d, [%s])", r.State, strings.Join(parts, ", "))
}

// Result is a snapshot run's verdict.
type Result struct {
	// Complete is true when every node took a local snapshot.
	Complete bool

	// Records maps node name to its record, for nodes that snapshotted.
	Records map[string]*Record

	// StateTotal is Σ recorded states; meaningful only when Complete.
	StateTotal int

	// MessageTotal is Σ(+1 per recorded increment, -1 per recorded
	// decrement); meaningful only when Complete.
	MessageTotal int
}

// Total is the recovered global balance: StateTotal + MessageTotal. For a
// consistent cut it equals the system's conserved total.
func (r *Result) Total() int { return r.StateTotal + r.MessageTotal }

// Default background-traffic volumes, matching the interactive application:
// five transfers before the cut is initiated, five right after, and three
// more behind every productive dispatch to keep the system live.
const (
	defaultPreTraffic  = 5
	defaultPostTraffic = 5
	defaultEchoTraffic = 3
)

// Option configures a snapshot run via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by both snapshot algorithms.
type Options struct {
	// Seed feeds the run's random source; 0 selects the fixed default seed.
	Seed int64

	// PreTraffic is the number of random transfers injected before the
	// initiator cuts.
	PreTraffic int

	// PostTraffic is the number injected immediately after the cut starts.
	PostTraffic int

	// EchoTraffic is the number injected after every dispatch that produced
	// outgoing messages.
	EchoTraffic int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the interactive defaults: seed 0 (fixed default
// stream) and 5/5/3 background traffic.
func DefaultOptions() Options {
	return Options{
		PreTraffic:  defaultPreTraffic,
		PostTraffic: defaultPostTraffic,
		EchoTraffic: defaultEchoTraffic,
	}
}

// WithSeed fixes the run's random seed for deterministic replay.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTraffic sets the three background-traffic volumes. Negative values are
// recorded as an option violation.
func WithTraffic(pre, post, echo int) Option {
	return func(o *Options) {
		if pre < 0 || post < 0 || echo < 0 {
			o.err = fmt.Errorf("WithTraffic(%d,%d,%d): %w", pre, post, echo, ErrOptionViolation)
			return
		}
		o.PreTraffic, o.PostTraffic, o.EchoTraffic = pre, post, echo
	}
}

// WithoutTraffic disables all background traffic, leaving only the cut
// protocol itself. Test harnesses use it for exact-state fixtures.
func WithoutTraffic() Option {
	return WithTraffic(0, 0, 0)
}
