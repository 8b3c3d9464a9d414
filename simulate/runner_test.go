package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaerlev/distsim/core"
	"github.com/kaerlev/distsim/simulate"
)

// testNode wraps a graph node with a delivery counter.
type testNode struct {
	node      *core.Node
	delivered int
}

func (n *testNode) Name() string { return n.node.Name }

func wrapTest(gn *core.Node) *testNode { return &testNode{node: gn} }

// chain builds a->b->c.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, name := range []string{"a", "b", "c"} {
		_, err := g.AddNode(name, i)
		require.NoError(t, err)
	}
	require.NoError(t, g.Connect("a", "b", 1))
	require.NoError(t, g.Connect("b", "c", 1))

	return g
}

// TestNewRunner_EmptyGraph verifies the caller-input error path.
func TestNewRunner_EmptyGraph(t *testing.T) {
	_, err := simulate.NewRunner[*testNode, testMsg](core.NewGraph(), wrapTest, simulate.FIFO, nil)
	assert.ErrorIs(t, err, simulate.ErrEmptyGraph)

	_, err = simulate.NewRunner[*testNode, testMsg](nil, wrapTest, simulate.FIFO, nil)
	assert.ErrorIs(t, err, simulate.ErrEmptyGraph)
}

// TestRunner_WrapPreservesOrderAndClones verifies wrapping keeps graph order
// and operates on clones, never the caller's nodes.
func TestRunner_WrapPreservesOrderAndClones(t *testing.T) {
	g := chain(t)
	r, err := simulate.NewRunner[*testNode, testMsg](g, wrapTest, simulate.FIFO, nil)
	require.NoError(t, err)

	var names []string
	for _, n := range r.Nodes() {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	// Mutating wrapped state must not reach the original graph.
	wrapped, err := r.Node("a")
	require.NoError(t, err)
	wrapped.node.ID = 99
	orig, err := g.NodeByName("a")
	require.NoError(t, err)
	assert.Equal(t, 0, orig.ID)
}

// TestRunner_NodeMiss verifies the internal-invariant error for unknown names.
func TestRunner_NodeMiss(t *testing.T) {
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, nil)
	require.NoError(t, err)

	_, err = r.Node("ghost")
	assert.ErrorIs(t, err, simulate.ErrUnknownNode)
}

// TestRunner_DrainDispatches verifies the event loop delivers every message
// to its destination's handler and enqueues handler output.
func TestRunner_DrainDispatches(t *testing.T) {
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, nil)
	require.NoError(t, err)

	// a's handler forwards to b, b's to c, c absorbs.
	handle := func(n *testNode, m testMsg) ([]testMsg, error) {
		n.delivered++
		if len(n.node.Connections) == 0 {
			return nil, nil
		}

		return []testMsg{{from: n.Name(), to: n.node.Connections[0].Other, seq: m.seq}}, nil
	}

	r.Push(testMsg{from: "x", to: "a", seq: 1})
	require.NoError(t, r.Drain(handle, nil, nil))

	for _, n := range r.Nodes() {
		assert.Equal(t, 1, n.delivered, "%s must see exactly one delivery", n.Name())
	}
	assert.Equal(t, 0, r.Pending())
}

// TestRunner_DrainUnknownDestination verifies a message to a peer that was
// never wrapped aborts the run and leaves the prior trace intact.
func TestRunner_DrainUnknownDestination(t *testing.T) {
	tr := simulate.NewTrace()
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, tr)
	require.NoError(t, err)

	tr.Printf("before the failure")
	r.Push(testMsg{from: "a", to: "ghost", seq: 1})

	err = r.Drain(func(n *testNode, m testMsg) ([]testMsg, error) { return nil, nil }, nil, nil)
	assert.ErrorIs(t, err, simulate.ErrUnknownNode)

	lines := tr.Lines()
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "before the failure", lines[0], "prior trace must survive the failure")
	assert.Contains(t, lines[len(lines)-1], "ghost", "failure line must name the offender")
}

// TestRunner_DrainStopPredicate verifies the loop halts with messages pending
// once the predicate fires.
func TestRunner_DrainStopPredicate(t *testing.T) {
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		r.Push(testMsg{from: "x", to: "a", seq: i})
	}

	dispatched := 0
	handle := func(n *testNode, m testMsg) ([]testMsg, error) {
		dispatched++
		return nil, nil
	}
	require.NoError(t, r.Drain(handle, func() bool { return dispatched >= 2 }, nil))

	assert.Equal(t, 2, dispatched)
	assert.Equal(t, 3, r.Pending())
}

// TestRunner_AfterHookInjectsOnlyAfterProductiveDispatch verifies the echo
// hook fires exactly when a handler emitted something.
func TestRunner_AfterHookInjectsOnlyAfterProductiveDispatch(t *testing.T) {
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, nil)
	require.NoError(t, err)

	// Only a emits; b and c absorb.
	handle := func(n *testNode, m testMsg) ([]testMsg, error) {
		if n.Name() == "a" {
			return []testMsg{{from: "a", to: "b", seq: m.seq}}, nil
		}

		return nil, nil
	}

	hookCalls := 0
	after := func(emitted int) []testMsg {
		hookCalls++
		assert.Equal(t, 1, emitted)
		return nil
	}

	r.Push(testMsg{from: "x", to: "a", seq: 1})
	require.NoError(t, r.Drain(handle, nil, after))
	assert.Equal(t, 1, hookCalls, "hook must fire for a's dispatch only")
}

// TestRunner_SeededSelectionIsDeterministic verifies that two runners with
// the same seed make identical random choices.
func TestRunner_SeededSelectionIsDeterministic(t *testing.T) {
	pick := func() []string {
		r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, nil, simulate.WithSeed(99))
		require.NoError(t, err)

		var names []string
		for i := 0; i < 10; i++ {
			names = append(names, r.RandomNode().Name())
		}

		return names
	}

	assert.Equal(t, pick(), pick())
}

// TestRunner_ChooseInitiatorsLogsAndDedupes verifies selection without
// replacement and the trace line.
func TestRunner_ChooseInitiatorsLogsAndDedupes(t *testing.T) {
	tr := simulate.NewTrace()
	r, err := simulate.NewRunner[*testNode, testMsg](chain(t), wrapTest, simulate.FIFO, tr, simulate.WithSeed(5))
	require.NoError(t, err)

	picked := r.ChooseInitiators(3)
	require.Len(t, picked, 3)
	seen := make(map[string]bool)
	for _, n := range picked {
		assert.False(t, seen[n.Name()], "%s picked twice", n.Name())
		seen[n.Name()] = true
	}

	// Asking for more than exists caps at the node count.
	assert.Len(t, r.ChooseInitiators(10), 3)

	require.NotZero(t, tr.Len())
	assert.Contains(t, tr.Lines()[0], "initiators")
}
