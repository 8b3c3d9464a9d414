// Package distsim - the single run entry point exposed to callers.
package distsim

import (
	"errors"
	"fmt"

	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/election"
	"github.com/kaerlev/distsim/simulate"
	"github.com/kaerlev/distsim/snapshot"
)

// ErrUnknownAlgorithm is returned for an Algorithm value Run does not know.
var ErrUnknownAlgorithm = errors.New("distsim: unknown algorithm")

// Algorithm selects which simulation Run executes.
type Algorithm int

const (
	// ChandyLamport is the marker-based global snapshot (FIFO channels).
	ChandyLamport Algorithm = iota

	// LaiYang is the message-counting global snapshot (non-FIFO channels).
	LaiYang

	// ChangRoberts is the ring leader election (non-FIFO channels).
	ChangRoberts
)

// String implements fmt.Stringer with the names the CLI accepts.
func (a Algorithm) String() string {
	switch a {
	case ChandyLamport:
		return "chandy-lamport"
	case LaiYang:
		return "lai-yang"
	case ChangRoberts:
		return "chang-roberts"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a CLI/user-facing name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "chandy-lamport":
		return ChandyLamport, nil
	case "lai-yang":
		return LaiYang, nil
	case "chang-roberts":
		return ChangRoberts, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// Verdict is the final outcome of a run; exactly one field is populated,
// matching the algorithm that ran.
type Verdict struct {
	// Snapshot holds the result of a ChandyLamport or LaiYang run.
	Snapshot *snapshot.Result

	// Election holds the result of a ChangRoberts run.
	Election *election.Result
}

// Option configures a Run.
type Option func(*options)

type options struct {
	seed    int64
	traffic *[3]int
}

// WithSeed fixes the run's random seed for deterministic replay.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSnapshotTraffic overrides the snapshot algorithms' background-traffic
// volumes (pre-cut, post-cut, per-dispatch echo). Ignored by elections.
func WithSnapshotTraffic(pre, post, echo int) Option {
	return func(o *options) { o.traffic = &[3]int{pre, post, echo} }
}

// Run executes the selected algorithm over g, appending every step to tr,
// and returns the verdict. The graph is read-only: the run clones whatever
// it wraps. Failed snapshots and failed elections are verdicts, not errors;
// errors mean the run could not proceed (empty graph, broken topology,
// engine invariant violation).
func Run(alg Algorithm, g *core.Graph, tr *simulate.Trace, opts ...Option) (Verdict, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch alg {
	case ChandyLamport, LaiYang:
		sopts := []snapshot.Option{snapshot.WithSeed(o.seed)}
		if o.traffic != nil {
			sopts = append(sopts, snapshot.WithTraffic(o.traffic[0], o.traffic[1], o.traffic[2]))
		}

		run := snapshot.ChandyLamport
		if alg == LaiYang {
			run = snapshot.LaiYang
		}
		res, err := run(g, tr, sopts...)
		if err != nil {
			tr.Printf("%s did not complete.", alg)
			return Verdict{}, err
		}

		return Verdict{Snapshot: res}, nil

	case ChangRoberts:
		res, err := election.ChangRoberts(g, tr, election.WithSeed(o.seed))
		if err != nil {
			tr.Printf("%s did not complete.", alg)
			return Verdict{}, err
		}

		return Verdict{Election: res}, nil

	default:
		return Verdict{}, fmt.Errorf("%d: %w", alg, ErrUnknownAlgorithm)
	}
}
