// Package builder - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (a single node with no connections is a legal, if dull, graph).
//   - Every ordered pair (i,j), i≠j, gets a directed connection, emitted in
//     ascending (i,j) order, so the graph is strongly connected and every
//     snapshot flood reaches every node in one hop.
package builder

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.nameFn(i), cfg.idFn(i)); err != nil {
				return fmt.Errorf("Complete: %w", err)
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.Connect(cfg.nameFn(i), cfg.nameFn(j), cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}
