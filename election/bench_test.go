package election_test

import (
	"testing"

	"github.com/kaerlev/distsim/builder"
	"github.com/kaerlev/distsim/election"
)

// BenchmarkChangRoberts_Ring measures an election on a large ring; message
// count is O(n²) worst case when ids ascend along the ring.
func BenchmarkChangRoberts_Ring(b *testing.B) {
	g, err := builder.Build(nil, builder.Ring(64))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = election.ChangRoberts(g, nil, election.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
