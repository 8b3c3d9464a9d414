// Package builder - Path(n) constructor.
//
// Contract:
//   - n ≥ 1.
//   - Directed edges i→i+1 for i=0..n-2: a chain, connected from p0 but with
//     a sink end. Useful for exercising one-way reachability.
package builder

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
)

const minPathNodes = 1

// Path returns a Constructor that builds a directed n-node path.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.nameFn(i), cfg.idFn(i)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		for i := 0; i+1 < n; i++ {
			if err := g.Connect(cfg.nameFn(i), cfg.nameFn(i+1), cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}
