package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaerlev/distsim/builder"
	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/simulate"
	"github.com/kaerlev/distsim/snapshot"
)

// twoNodeGraph builds the a<->b fixture from the end-to-end scenario.
func twoNodeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNode("a", 1)
	require.NoError(t, err)
	_, err = g.AddNode("b", 2)
	require.NoError(t, err)
	require.NoError(t, g.ConnectBoth("a", "b", 1))

	return g
}

// TestChandyLamport_EmptyGraph verifies the caller-input error path: logged,
// returned, no simulation attempted.
func TestChandyLamport_EmptyGraph(t *testing.T) {
	tr := simulate.NewTrace()
	_, err := snapshot.ChandyLamport(core.NewGraph(), tr)
	assert.ErrorIs(t, err, snapshot.ErrEmptyGraph)
	assert.Equal(t, []string{"No nodes in graph."}, tr.Lines())
}

// TestChandyLamport_BadTrafficOption verifies option validation.
func TestChandyLamport_BadTrafficOption(t *testing.T) {
	_, err := snapshot.ChandyLamport(twoNodeGraph(t), nil, snapshot.WithTraffic(-1, 0, 0))
	assert.ErrorIs(t, err, snapshot.ErrOptionViolation)
}

// TestChandyLamport_TwoNodesNoTraffic is the deterministic end-to-end
// scenario: with background traffic disabled the cut only circulates marks,
// so both snapshots hold the pre-run state and record nothing.
func TestChandyLamport_TwoNodesNoTraffic(t *testing.T) {
	tr := simulate.NewTrace()
	res, err := snapshot.ChandyLamport(twoNodeGraph(t), tr, snapshot.WithoutTraffic())
	require.NoError(t, err)

	require.True(t, res.Complete)
	require.Len(t, res.Records, 2)
	for name, rec := range res.Records {
		assert.Equal(t, 0, rec.State, "%s must snapshot its pre-run state", name)
		assert.Empty(t, rec.Messages, "%s must record no in-flight traffic", name)
	}
	assert.Equal(t, 0, res.StateTotal)
	assert.Equal(t, 0, res.MessageTotal)
	assert.Contains(t, tr.String(), "Snapshot completed.")
}

// TestChandyLamport_ConservationInvariant is the core cut-consistency
// property: with full background traffic, the recovered total (states plus
// recorded in-flight adjustments) must equal the conserved global total,
// which is zero since every balance starts at zero. Checked across
// topologies, sizes, and seeds.
func TestChandyLamport_ConservationInvariant(t *testing.T) {
	for n := 2; n <= 10; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := builder.Build(nil, builder.Complete(n))
			require.NoError(t, err)

			res, err := snapshot.ChandyLamport(g, nil, snapshot.WithSeed(seed))
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.True(t, res.Complete, "n=%d seed=%d: complete graph must snapshot fully", n, seed)
			assert.Equal(t, 0, res.Total(),
				"n=%d seed=%d: cut must conserve the global total", n, seed)
		}
	}
}

// TestChandyLamport_TerminatesOnRandomTopologies is the termination
// property over randomized connected topologies of size 1-20: the run must
// return, complete its snapshot, and keep the conservation invariant.
func TestChandyLamport_TerminatesOnRandomTopologies(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			g, err := builder.Build(
				[]builder.Option{builder.WithSeed(seed)},
				builder.RandomSparse(n, 0.3),
			)
			require.NoError(t, err)

			res, err := snapshot.ChandyLamport(g, nil, snapshot.WithSeed(seed))
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.True(t, res.Complete,
				"n=%d seed=%d: every node is reachable, so every node must cut", n, seed)
			assert.Equal(t, 0, res.Total(), "n=%d seed=%d", n, seed)
		}
	}
}

// TestChandyLamport_RingOfOne covers the degenerate self-loop topology: the
// node's own channel must be cut correctly and the totals conserved.
func TestChandyLamport_RingOfOne(t *testing.T) {
	g, err := builder.Build(nil, builder.Ring(1))
	require.NoError(t, err)

	res, err := snapshot.ChandyLamport(g, nil, snapshot.WithSeed(3))
	require.NoError(t, err)
	require.True(t, res.Complete)
	assert.Equal(t, 0, res.Total())
}

// TestChandyLamport_MissingPeerIsTopologyFailure verifies a connection to an
// absent node aborts the run with the offender named, without losing the
// trace of prior steps.
func TestChandyLamport_MissingPeerIsTopologyFailure(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Add(&core.Node{
		Name:        "a",
		ID:          1,
		Connections: []core.Connection{{Other: "ghost", Weight: 1}},
	}))

	tr := simulate.NewTrace()
	_, err := snapshot.ChandyLamport(g, tr, snapshot.WithSeed(1))
	require.ErrorIs(t, err, simulate.ErrUnknownNode)
	assert.Contains(t, tr.String(), "ghost")
	assert.Contains(t, tr.Lines()[0], "Started Chandy-Lamport", "prior trace must survive")
}

// TestChandyLamport_SeededRunsAreReproducible verifies the whole trace, not
// just the verdict, replays from a seed.
func TestChandyLamport_SeededRunsAreReproducible(t *testing.T) {
	run := func() []string {
		g, err := builder.Build(nil, builder.Complete(4))
		require.NoError(t, err)
		tr := simulate.NewTrace()
		_, err = snapshot.ChandyLamport(g, tr, snapshot.WithSeed(42))
		require.NoError(t, err)

		return tr.Lines()
	}

	assert.Equal(t, run(), run())
}

// TestChandyLamport_InFlightTrafficIsRecorded verifies the pre-cut transfers
// actually show up in somebody's record: with default traffic and the fixed
// seed there is in-flight traffic when the cut is taken, and everything
// recorded must be a transfer, never a mark.
func TestChandyLamport_InFlightTrafficIsRecorded(t *testing.T) {
	g, err := builder.Build(nil, builder.Complete(3))
	require.NoError(t, err)

	res, err := snapshot.ChandyLamport(g, nil, snapshot.WithSeed(7))
	require.NoError(t, err)
	require.True(t, res.Complete)

	recorded := 0
	for _, rec := range res.Records {
		for _, m := range rec.Messages {
			recorded++
			assert.Contains(t, []snapshot.Kind{snapshot.Increment, snapshot.Decrement}, m.Kind)
		}
	}
	assert.Positive(t, recorded, "pre-cut traffic must be captured as in-flight")
}
