// Package simulate - the pending-message queue and its delivery disciplines.
package simulate

import "math/rand"

// Queue is the ordered sequence of messages awaiting delivery. Insertion
// position depends on the Discipline; Pop always takes the front, so the
// front of the queue is always "next to be delivered".
type Queue[M Message] struct {
	items      []M
	discipline Discipline
	rng        *rand.Rand
}

// NewQueue returns an empty queue with the given discipline. The random
// source is only consulted under the Random discipline.
func NewQueue[M Message](d Discipline, rng *rand.Rand) *Queue[M] {
	return &Queue[M]{discipline: d, rng: rng}
}

// Push enqueues one message. FIFO appends to the back; Random inserts at an
// index drawn uniformly from [0, len], i.e. anywhere including the current
// front or past the current back.
func (q *Queue[M]) Push(m M) {
	if q.discipline == FIFO || len(q.items) == 0 {
		q.items = append(q.items, m)
		return
	}

	i := q.rng.Intn(len(q.items) + 1)
	q.items = append(q.items, m) // grow by one; the value is overwritten below
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = m
}

// PushAll enqueues a batch. Under FIFO the batch keeps its relative order;
// under Random each message is inserted independently, so relative order
// within the batch is not preserved either.
func (q *Queue[M]) PushAll(ms []M) {
	for _, m := range ms {
		q.Push(m)
	}
}

// Pop removes and returns the front message. The second return is false when
// the queue is empty.
func (q *Queue[M]) Pop() (M, bool) {
	var zero M
	if len(q.items) == 0 {
		return zero, false
	}

	m := q.items[0]
	q.items[0] = zero // release the reference
	q.items = q.items[1:]

	return m, true
}

// Len returns the number of pending messages.
func (q *Queue[M]) Len() int { return len(q.items) }

// Discipline returns the queue's delivery discipline.
func (q *Queue[M]) Discipline() Discipline { return q.discipline }
