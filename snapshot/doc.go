// Package snapshot implements two classic global-snapshot algorithms over a
// core.Graph: the Chandy-Lamport marker algorithm and the Lai-Yang
// message-counting algorithm.
//
// Both run the same diffusing computation: nodes hold an abstract integer
// balance and exchange increment/decrement messages whose grand total is
// conserved. A sender moves its own balance by the opposite sign the moment
// it sends, so while a message is in flight its value belongs to no node -
// exactly the traffic a consistent cut must account for. A correct snapshot
// therefore satisfies
//
//	Σ recorded states + Σ recorded increments - Σ recorded decrements
//	    = the global total before the run injected any traffic.
//
// Chandy-Lamport relies on FIFO channels: a <mark> on a channel separates
// pre-cut from post-cut traffic, and a node records incoming transfers from
// every channel it has not yet seen a <mark> on. Lai-Yang instead colors
// messages with a post-snapshot flag and piggybacks per-channel send
// counters, so it tolerates arbitrary (non-FIFO) delivery: a node knows from
// the counters alone how many pre-snapshot messages each channel still owes
// it.
//
// Runs are randomized (initiator, background traffic, Lai-Yang delivery
// order) but fully replayable from a seed via WithSeed. WithoutTraffic
// disables the background transfers for deterministic fixtures.
//
// An incomplete snapshot (some node never cut) is a reported outcome -
// Result.Complete is false - not an error. Errors are reserved for empty
// graphs, invalid options, and topology failures such as a connection to a
// node that does not exist.
package snapshot
