// Package builder constructs deterministic core.Graph topologies for
// simulations, tests, and examples: rings, complete graphs, paths, and
// random sparse graphs.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves
//     the configuration, runs constructors in order.
//   - Determinism: same options, seed, and constructor order ⇒ identical
//     graph (node order, ids, connections, weights).
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
//
// Node names come from the configured id scheme (default "p0", "p1", ...),
// numeric ids from the configured id function (default: the index), so ring
// fixtures get pairwise-unique ids out of the box.
package builder
