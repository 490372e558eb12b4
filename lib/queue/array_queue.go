package queue

import (
	"iter"
)

const defaultArrayQueueCapacity = 8

var _ Queue[int] = (*arrayQueue[int])(nil)

// arrayQueue is a ring buffer. The elements live in
// arr[head], arr[head+1], ... arr[head+size-1], modulo len(arr).
// len(arr) is always a power of 2.
type arrayQueue[E any] struct {
	arr         []E
	head        int
	size        int
	minCapacity int
}

func (q *arrayQueue[E]) Len() int64 {
	return int64(q.size)
}

func (q *arrayQueue[E]) IsEmpty() bool {
	return q.size == 0
}

func (q *arrayQueue[E]) mask() int {
	return len(q.arr) - 1
}

func (q *arrayQueue[E]) resize(capacity int) {
	arr := make([]E, capacity)
	if q.head+q.size <= len(q.arr) {
		copy(arr, q.arr[q.head:q.head+q.size])
	} else {
		n := copy(arr, q.arr[q.head:])
		copy(arr[n:], q.arr[:q.size-n])
	}
	q.arr, q.head = arr, 0
}

func (q *arrayQueue[E]) Enqueue(e E) {
	if q.size == len(q.arr) {
		q.resize(len(q.arr) << 1)
	}
	q.arr[(q.head+q.size)&q.mask()] = e
	q.size++
}

func (q *arrayQueue[E]) Dequeue() (e E, ok bool) {
	if q.size == 0 {
		return e, false
	}
	e = q.arr[q.head]
	q.arr[q.head] = *new(E) // release the reference
	q.head = (q.head + 1) & q.mask()
	q.size--
	if l := len(q.arr); l > q.minCapacity && q.size < l>>2 {
		q.resize(l >> 1)
	}
	return e, true
}

func (q *arrayQueue[E]) Front() (e E, ok bool) {
	if q.size == 0 {
		return e, false
	}
	return q.arr[q.head], true
}

func (q *arrayQueue[E]) Back() (e E, ok bool) {
	if q.size == 0 {
		return e, false
	}
	return q.arr[(q.head+q.size-1)&q.mask()], true
}

func (q *arrayQueue[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.arr[(q.head+i)&q.mask()]) {
				return
			}
		}
	}
}

func (q *arrayQueue[E]) Foreach(fn func(idx int64, e E) bool) {
	for i := 0; i < q.size; i++ {
		if !fn(int64(i), q.arr[(q.head+i)&q.mask()]) {
			return
		}
	}
}

type ArrayQueueOption[E any] func(*arrayQueue[E])

// WithArrayQueueCapacity presets the ring capacity, rounded up to a
// power of 2. The ring never shrinks below it.
func WithArrayQueueCapacity[E any](capacity int) ArrayQueueOption[E] {
	return func(q *arrayQueue[E]) {
		if capacity <= 0 {
			capacity = defaultArrayQueueCapacity
		}
		q.minCapacity = roundupPowOf2(capacity)
	}
}

func roundupPowOf2(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}

func NewArrayQueue[E any](opts ...ArrayQueueOption[E]) Queue[E] {
	q := &arrayQueue[E]{
		minCapacity: defaultArrayQueueCapacity,
	}
	for _, o := range opts {
		if o != nil {
			o(q)
		}
	}
	q.arr = make([]E, q.minCapacity)
	return q
}
