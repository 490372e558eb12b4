package heap

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

const defaultMaxHeapCapacity = 16

var _ MaxHeap[int] = (*maxHeap[int])(nil)

type maxHeap[E any] struct {
	arr      []E
	cmp      infra.OrderedKeyComparator[E]
	onPlace  func(idx int)
	logger   xlog.XLogger
	capacity int
}

func (h *maxHeap[E]) Len() int64 {
	return int64(len(h.arr))
}

func (h *maxHeap[E]) IsEmpty() bool {
	return len(h.arr) == 0
}

func (h *maxHeap[E]) placed(idx int) {
	if h.onPlace != nil {
		h.onPlace(idx)
	}
}

func (h *maxHeap[E]) swap(i, j int) {
	h.arr[i], h.arr[j] = h.arr[j], h.arr[i]
	h.placed(i)
	h.placed(j)
}

func (h *maxHeap[E]) Insert(e E) {
	h.arr = append(h.arr, e)
	from := len(h.arr) - 1
	h.placed(from)
	to := h.siftUp(from)
	h.logger.Debug("max-heap insert",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("len", len(h.arr)),
	)
}

// siftUp climbs while the node is strictly greater than its parent.
func (h *maxHeap[E]) siftUp(idx int) int {
	for idx > 0 {
		p := ParentIndex(idx)
		if h.cmp(h.arr[idx], h.arr[p]) <= 0 {
			break
		}
		h.swap(idx, p)
		idx = p
	}
	return idx
}

// siftDown swaps the node with its larger child that is strictly
// greater, until the node is not less than both children or has none.
func (h *maxHeap[E]) siftDown(idx int) int {
	n := len(h.arr)
	for {
		l, r, largest := LeftIndex(idx), RightIndex(idx), idx
		if l < n && h.cmp(h.arr[l], h.arr[largest]) > 0 {
			largest = l
		}
		if r < n && h.cmp(h.arr[r], h.arr[largest]) > 0 {
			largest = r
		}
		if largest == idx {
			return idx
		}
		h.swap(idx, largest)
		idx = largest
	}
}

func (h *maxHeap[E]) Remove() (e E, ok bool) {
	n := len(h.arr)
	if n == 0 {
		h.logger.Debug("max-heap remove on empty heap")
		return e, false
	}

	e, last := h.arr[0], n-1
	h.arr[0] = h.arr[last]
	h.arr[last] = *new(E) // release the reference
	h.arr = h.arr[:last]
	if last > 0 {
		h.placed(0)
		to := h.siftDown(0)
		h.logger.Debug("max-heap remove",
			zap.Int("to", to),
			zap.Int("len", len(h.arr)),
		)
	}
	h.shrink()
	return e, true
}

func (h *maxHeap[E]) shrink() {
	if c := cap(h.arr); c > h.capacity && len(h.arr) < c>>2 {
		arr := make([]E, len(h.arr), c>>1)
		copy(arr, h.arr)
		h.arr = arr
	}
}

func (h *maxHeap[E]) Top() (e E, ok bool) {
	return h.At(0)
}

func (h *maxHeap[E]) Last() (e E, ok bool) {
	return h.At(len(h.arr) - 1)
}

func (h *maxHeap[E]) At(idx int) (e E, ok bool) {
	if idx < 0 || idx >= len(h.arr) {
		return e, false
	}
	return h.arr[idx], true
}

func (h *maxHeap[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(h.arr); i++ {
			if !yield(h.arr[i]) {
				return
			}
		}
	}
}

func (h *maxHeap[E]) Foreach(fn func(idx int64, e E) bool) {
	for i := 0; i < len(h.arr); i++ {
		if !fn(int64(i), h.arr[i]) {
			return
		}
	}
}

type MaxHeapOption[E any] func(*maxHeap[E])

// WithMaxHeapCapacity presets the slice capacity. The heap still grows
// beyond it.
func WithMaxHeapCapacity[E any](capacity int) MaxHeapOption[E] {
	return func(h *maxHeap[E]) {
		if capacity <= 0 {
			capacity = defaultMaxHeapCapacity
		}
		h.capacity = capacity
	}
}

// WithMaxHeapPlaceListener observes every slot an element is placed
// into, by Insert, by a sift swap or by the root overwrite of Remove.
func WithMaxHeapPlaceListener[E any](fn func(idx int)) MaxHeapOption[E] {
	return func(h *maxHeap[E]) {
		h.onPlace = fn
	}
}

func WithMaxHeapLogger[E any](logger xlog.XLogger) MaxHeapOption[E] {
	return func(h *maxHeap[E]) {
		if logger != nil {
			h.logger = logger.Named("max-heap")
		}
	}
}

func newMaxHeap[E any](cmp infra.OrderedKeyComparator[E], opts ...MaxHeapOption[E]) *maxHeap[E] {
	if cmp == nil {
		panic( /* debug assertion */ "[max-heap] nil comparator")
	}
	h := &maxHeap[E]{
		cmp:      cmp,
		capacity: defaultMaxHeapCapacity,
	}
	for _, o := range opts {
		if o != nil {
			o(h)
		}
	}
	if h.logger == nil {
		h.logger = xlog.NewNopXLogger()
	}
	h.arr = make([]E, 0, h.capacity)
	return h
}

func NewMaxHeap[E infra.OrderedKey](opts ...MaxHeapOption[E]) MaxHeap[E] {
	return newMaxHeap[E](infra.Compare[E], opts...)
}

// NewMaxHeapFunc orders the elements by cmp. The greatest element by cmp
// is the root.
func NewMaxHeapFunc[E any](cmp infra.OrderedKeyComparator[E], opts ...MaxHeapOption[E]) MaxHeap[E] {
	return newMaxHeap[E](cmp, opts...)
}
