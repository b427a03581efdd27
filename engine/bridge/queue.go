package bridge

import "sync"

// Queue is an unbounded FIFO safe for one producer and one consumer on
// different goroutines. Push never blocks, which is the property the event
// goroutine depends on: a slow consumer must never stall the window's event
// pump.
//
// Go channels are bounded, so a channel either blocks the producer when full
// or drops events; neither is acceptable here. The queue trades that for
// growth under backlog, which the receiving side bounds by draining every
// iteration.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

// NewQueue creates an empty open queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an item without blocking.
//
// Returns:
//   - bool: false if the queue is closed and the item was dropped
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, v)
	q.cond.Signal()
	return true
}

// Pop removes and returns the oldest item, blocking while the queue is empty.
//
// Returns:
//   - T: the item, or the zero value once the queue is drained and closed
//   - bool: false once the queue is drained and closed
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// TryPop removes and returns the oldest item without blocking.
//
// Returns:
//   - T: the item, or the zero value if none was available
//   - bool: true if an item was returned
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Close marks the queue closed and wakes any blocked Pop. Items already
// queued remain poppable; further pushes are dropped. Closing twice is a
// no-op.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}
