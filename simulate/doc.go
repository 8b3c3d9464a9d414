// Package simulate provides the generic machinery shared by every
// distributed-algorithm simulation: a pending-message queue with explicit
// delivery disciplines, a driver that wraps graph nodes into per-algorithm
// state and drains the queue, an append-only trace sink, and a Lamport
// logical clock.
//
// A simulation run is a pure, bounded, single-threaded computation: the
// driver pops one message at a time, dispatches it to the destination node's
// handler (the only place node state mutates), and enqueues whatever the
// handler emits. Delivery order is governed by the queue's Discipline:
//
//   - FIFO    — messages land at the back; per-run total order equals
//     emission order. Required by marker-based snapshot cuts.
//   - Random  — each message lands at a uniformly random index, modeling
//     arbitrary reordering across logically-fused channels.
//
// Randomness (node selection, insertion position) always flows from an
// explicit seeded source supplied via options; there is no global generator,
// so a run is replayable from its seed.
//
// Errors:
//
//	ErrEmptyGraph    - a simulation was started on a graph with no nodes.
//	ErrUnknownNode   - a message addressed a node with no wrapped state.
//	ErrClockOverflow - the Lamport clock exceeded its range (fatal).
package simulate
