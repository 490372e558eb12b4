package heap

import "iter"

// MaxHeap is a binary max-heap over a dense slice.
// The element at index i is not less than the elements at
// LeftIndex(i) and RightIndex(i).
// Not thread safe.
type MaxHeap[E any] interface {
	Len() int64
	IsEmpty() bool
	// Insert appends e, then sifts it up in O(log n).
	Insert(e E)
	// Remove evicts the maximum. It returns false and leaves the heap untouched
	// if the heap is empty.
	Remove() (E, bool)
	// Top peeks the maximum.
	Top() (E, bool)
	// Last peeks the last slot in heap order.
	Last() (E, bool)
	At(idx int) (E, bool)
	// Values yields the elements in heap (array) order. Each call starts
	// a new traversal.
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, e E) bool)
}

// ReadOnlyHeapNode is the presentation view of a heap node record.
type ReadOnlyHeapNode[E any] interface {
	Value() E
	// InOperation reports whether the node was moved or placed by the
	// latest Insert or Remove.
	InOperation() bool
}

// NodeHeap is a max-heap over owned node records carrying presentation
// metadata.
type NodeHeap[E any] interface {
	Len() int64
	IsEmpty() bool
	Insert(v E)
	Remove() (E, bool)
	Root() (ReadOnlyHeapNode[E], bool)
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, node ReadOnlyHeapNode[E]) bool)
}

func ParentIndex(idx int) int {
	return (idx - 1) >> 1
}

func LeftIndex(idx int) int {
	return idx<<1 + 1
}

func RightIndex(idx int) int {
	return idx<<1 + 2
}
