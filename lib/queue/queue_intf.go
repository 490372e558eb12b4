package queue

import "iter"

// Queue is a FIFO sequence.
// Dequeue, Front and Back return false on an empty queue instead
// of a sentinel value.
type Queue[E any] interface {
	Len() int64
	IsEmpty() bool
	Enqueue(e E)
	Dequeue() (E, bool)
	Front() (E, bool)
	Back() (E, bool)
	// Values yields from front to back.
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, e E) bool)
}

// PriorityQueue dequeues the maximum first.
// Front is the maximum and Back is the last slot in heap order.
type PriorityQueue[E any] interface {
	Queue[E]
}
