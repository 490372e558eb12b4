package heap

import (
	"iter"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

// HeapNode is a node record owned by the NodeHeap.
// The value is fixed after creation.
type HeapNode[E any] struct {
	value E
	inOp  bool
}

func (node *HeapNode[E]) Value() (v E) {
	if node == nil {
		return
	}
	return node.value
}

func (node *HeapNode[E]) InOperation() bool {
	return node != nil && node.inOp
}

var _ NodeHeap[int] = (*nodeHeap[int])(nil)

type nodeHeap[E any] struct {
	base   *maxHeap[*HeapNode[E]]
	marked []*HeapNode[E]
}

func (h *nodeHeap[E]) mark(idx int) {
	node := h.base.arr[idx]
	if node.inOp {
		return
	}
	node.inOp = true
	h.marked = append(h.marked, node)
}

func (h *nodeHeap[E]) resetMarks() {
	for i := range h.marked {
		h.marked[i].inOp = false
		h.marked[i] = nil
	}
	h.marked = h.marked[:0]
}

func (h *nodeHeap[E]) Len() int64 {
	return h.base.Len()
}

func (h *nodeHeap[E]) IsEmpty() bool {
	return h.base.IsEmpty()
}

// Insert marks the new node and every node it displaced on its way up.
func (h *nodeHeap[E]) Insert(v E) {
	h.resetMarks()
	h.base.Insert(&HeapNode[E]{value: v})
}

// Remove marks the former last node moved to the root and every node
// displaced while sifting it down.
func (h *nodeHeap[E]) Remove() (v E, ok bool) {
	h.resetMarks()
	node, ok := h.base.Remove()
	if !ok {
		return v, false
	}
	v = node.value
	node.inOp = false
	return v, true
}

func (h *nodeHeap[E]) Root() (ReadOnlyHeapNode[E], bool) {
	node, ok := h.base.Top()
	if !ok {
		return nil, false
	}
	return node, true
}

func (h *nodeHeap[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for node := range h.base.Values() {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (h *nodeHeap[E]) Foreach(fn func(idx int64, node ReadOnlyHeapNode[E]) bool) {
	h.base.Foreach(func(idx int64, node *HeapNode[E]) bool {
		return fn(idx, node)
	})
}

type NodeHeapOption[E any] func(*nodeHeapCfg[E])

type nodeHeapCfg[E any] struct {
	logger   xlog.XLogger
	capacity int
}

func WithNodeHeapLogger[E any](logger xlog.XLogger) NodeHeapOption[E] {
	return func(cfg *nodeHeapCfg[E]) {
		cfg.logger = logger
	}
}

func WithNodeHeapCapacity[E any](capacity int) NodeHeapOption[E] {
	return func(cfg *nodeHeapCfg[E]) {
		cfg.capacity = capacity
	}
}

func NewNodeHeap[E infra.OrderedKey](opts ...NodeHeapOption[E]) NodeHeap[E] {
	cfg := &nodeHeapCfg[E]{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	h := &nodeHeap[E]{}
	h.base = newMaxHeap[*HeapNode[E]](
		func(i, j *HeapNode[E]) int64 {
			return infra.Compare(i.value, j.value)
		},
		WithMaxHeapCapacity[*HeapNode[E]](cfg.capacity),
		WithMaxHeapLogger[*HeapNode[E]](cfg.logger),
		WithMaxHeapPlaceListener[*HeapNode[E]](h.mark),
	)
	return h
}
