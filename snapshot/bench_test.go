package snapshot_test

import (
	"testing"

	"github.com/kaerlev/distsim/builder"
	"github.com/kaerlev/distsim/snapshot"
)

// BenchmarkChandyLamport_Complete measures a full snapshot with default
// traffic on a dense graph, the worst case for marker fan-out.
func BenchmarkChandyLamport_Complete(b *testing.B) {
	g, err := builder.Build(nil, builder.Complete(8))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = snapshot.ChandyLamport(g, nil, snapshot.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLaiYang_Complete measures the colored variant on the same graph;
// the random queue discipline dominates the delta over Chandy-Lamport.
func BenchmarkLaiYang_Complete(b *testing.B) {
	g, err := builder.Build(nil, builder.Complete(8))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = snapshot.LaiYang(g, nil, snapshot.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
