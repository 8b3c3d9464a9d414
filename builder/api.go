// Package builder - public entry point and topology factories.
//
// Factories are declared here and implemented in impl_*.go.
package builder

import (
	"fmt"

	"github.com/kaerlev/distsim/core"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved configuration. Constructors must validate early, return sentinel
// errors, and never panic.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a new graph, resolves the options, and applies all
// constructors in order. The first constructor error aborts the build; no
// partial cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := resolve(opts)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
