package sched

import (
	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/pkg/errors"
)

// ReadyQueue is a bounded FIFO of tasks that have arrived but not finished.
// Unlike the underlying circular buffer it never overwrites the oldest entry:
// enqueueing into a full queue fails.
type ReadyQueue struct {
	buf *circularbuffer.Queue
	cap int
}

// NewReadyQueue creates a queue holding at most capacity tasks.
// Capacity is clamped to at least one slot.
func NewReadyQueue(capacity int) *ReadyQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &ReadyQueue{
		buf: circularbuffer.New(capacity),
		cap: capacity,
	}
}

// Enqueue appends t at the tail.
func (q *ReadyQueue) Enqueue(t *Task) error {
	if q.buf.Full() {
		return errors.Wrapf(ErrQueueFull, "enqueue %q (capacity %d)", t.Name, q.cap)
	}
	q.buf.Enqueue(t)
	return nil
}

// Dequeue removes and returns the head. ok is false when the queue is empty.
func (q *ReadyQueue) Dequeue() (t *Task, ok bool) {
	v, ok := q.buf.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*Task), true
}

// Empty reports whether the queue holds no tasks.
func (q *ReadyQueue) Empty() bool { return q.buf.Empty() }

// Len returns the number of queued tasks.
func (q *ReadyQueue) Len() int { return q.buf.Size() }

// Cap returns the fixed capacity.
func (q *ReadyQueue) Cap() int { return q.cap }
