// Package election implements the Chang-Roberts leader election on a
// unidirectional ring: every node forwards to its designated successor
// (Connections[0]) and candidates are compared by unique numeric id.
//
// Every node starts Active and circulates its own id. An Active node drops
// smaller ids, turns Passive while forwarding larger ones, and declares
// itself Leader when its own id comes back around. Passive nodes are pure
// relays. With pairwise-unique ids on a well-formed ring exactly one node -
// the maximum id - wins.
//
// Delivery deliberately uses the random (non-FIFO) discipline: correctness
// depends only on id uniqueness and ring topology, never on message order,
// and randomized delivery exercises exactly that.
//
// A drained queue without a leader (duplicate ids, malformed ring) is a
// reported outcome, Result.Elected == false, not an error.
package election
