package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaerlev/distsim/simulate"
)

// TestTrace_AppendOnly verifies ordering, Blank, and the joined rendering.
func TestTrace_AppendOnly(t *testing.T) {
	tr := simulate.NewTrace()
	tr.Printf("first %d", 1)
	tr.Blank()
	tr.Printf("second")

	assert.Equal(t, []string{"first 1", "", "second"}, tr.Lines())
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, "first 1\n\nsecond", tr.String())
}

// TestTrace_LinesIsACopy verifies callers cannot mutate the trace through
// the returned slice.
func TestTrace_LinesIsACopy(t *testing.T) {
	tr := simulate.NewTrace()
	tr.Printf("original")

	lines := tr.Lines()
	lines[0] = "tampered"
	assert.Equal(t, "original", tr.Lines()[0])
}

// TestTrace_NilIsDiscard verifies a nil trace accepts writes and reports empty.
func TestTrace_NilIsDiscard(t *testing.T) {
	var tr *simulate.Trace
	tr.Printf("dropped")
	tr.Blank()

	assert.Nil(t, tr.Lines())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, "", tr.String())
}
