// Package builder - RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1, p in [0,1].
//   - A directed ring backbone keeps the graph strongly connected (snapshot
//     floods must reach every node), then every remaining ordered pair gets
//     a connection independently with probability p.
//   - Deterministic for a fixed seed: pairs are examined in ascending (i,j)
//     order, one rng draw per pair.
package builder

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
)

const minSparseNodes = 1

// RandomSparse returns a Constructor that builds a connected random directed
// graph: a ring backbone plus each non-ring ordered pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}

		if err := Ring(n)(g, cfg); err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || j == (i+1)%n {
					continue // self and backbone edges already settled
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.Connect(cfg.nameFn(i), cfg.nameFn(j), cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
