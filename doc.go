// Package distsim simulates classic distributed algorithms over an
// in-memory graph of named nodes, producing a step-by-step textual trace
// and a final verdict.
//
// What's inside:
//
//	core/     — the graph model: named nodes owning ordered weighted
//	            connection lists, collected into an ordered Graph
//	simulate/ — the generic engine: node wrapping, FIFO/random queue
//	            disciplines, the dispatch loop, trace sink, Lamport clock
//	snapshot/ — Chandy-Lamport and Lai-Yang global snapshots over a
//	            conserved increment/decrement computation
//	election/ — Chang-Roberts ring leader election
//	builder/  — deterministic topology fixtures (ring, complete, path,
//	            random sparse)
//
// The engine is single-threaded and runs to completion inside one call: a
// run is a bounded computation over an in-memory queue, deterministic up to
// the seed you pass. It never touches files or the terminal; its only output
// is the trace and the returned verdict.
//
// Quick start:
//
//	g, _ := builder.Build(nil, builder.Ring(5))
//	tr := simulate.NewTrace()
//	v, err := distsim.Run(distsim.ChangRoberts, g, tr, distsim.WithSeed(42))
//	if err != nil {
//	    // empty graph or broken topology
//	}
//	fmt.Println(v.Election.Leader)
//	fmt.Println(tr)
package distsim
