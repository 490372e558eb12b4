package queue

import (
	"iter"

	"github.com/benz9527/xds/lib/heap"
	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

var _ PriorityQueue[int] = (*arrayPQ[int])(nil)

type arrayPQ[E any] struct {
	heap heap.MaxHeap[E]
}

func (pq *arrayPQ[E]) Len() int64 {
	return pq.heap.Len()
}

func (pq *arrayPQ[E]) IsEmpty() bool {
	return pq.heap.IsEmpty()
}

func (pq *arrayPQ[E]) Enqueue(e E) {
	pq.heap.Insert(e)
}

func (pq *arrayPQ[E]) Dequeue() (E, bool) {
	return pq.heap.Remove()
}

func (pq *arrayPQ[E]) Front() (E, bool) {
	return pq.heap.Top()
}

func (pq *arrayPQ[E]) Back() (E, bool) {
	return pq.heap.Last()
}

func (pq *arrayPQ[E]) Values() iter.Seq[E] {
	return pq.heap.Values()
}

func (pq *arrayPQ[E]) Foreach(fn func(idx int64, e E) bool) {
	pq.heap.Foreach(fn)
}

type arrayPQCfg[E any] struct {
	capacity   int
	comparator infra.OrderedKeyComparator[E]
	logger     xlog.XLogger
}

type ArrayPriorityQueueOption[E any] func(*arrayPQCfg[E])

func WithArrayPriorityQueueCapacity[E any](capacity int) ArrayPriorityQueueOption[E] {
	return func(cfg *arrayPQCfg[E]) {
		cfg.capacity = capacity
	}
}

// WithArrayPriorityQueueComparator replaces the natural order.
// The greatest element by fn is dequeued first. A nil fn keeps the
// natural order.
func WithArrayPriorityQueueComparator[E any](fn infra.OrderedKeyComparator[E]) ArrayPriorityQueueOption[E] {
	return func(cfg *arrayPQCfg[E]) {
		if fn != nil {
			cfg.comparator = fn
		}
	}
}

func WithArrayPriorityQueueLogger[E any](logger xlog.XLogger) ArrayPriorityQueueOption[E] {
	return func(cfg *arrayPQCfg[E]) {
		cfg.logger = logger
	}
}

func NewArrayPriorityQueue[E infra.OrderedKey](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	cfg := &arrayPQCfg[E]{
		comparator: infra.Compare[E],
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &arrayPQ[E]{
		heap: heap.NewMaxHeapFunc[E](
			cfg.comparator,
			heap.WithMaxHeapCapacity[E](cfg.capacity),
			heap.WithMaxHeapLogger[E](cfg.logger),
		),
	}
}
