// Package builder - Ring(n) constructor.
//
// Contract:
//   - n ≥ 1. A one-node ring is legal: the node's successor is itself, which
//     is exactly the degenerate case the election algorithms exercise.
//   - Vertices added in ascending index order; edge i→(i+1)%n for each i, so
//     Connections[0] of every node is its ring successor.
package builder

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
)

const minRingNodes = 1

// Ring returns a Constructor that builds a directed n-node ring.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRingNodes {
			return fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.nameFn(i), cfg.idFn(i)); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}

		for i := 0; i < n; i++ {
			from, to := cfg.nameFn(i), cfg.nameFn((i+1)%n)
			if err := g.Connect(from, to, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}

		return nil
	}
}
