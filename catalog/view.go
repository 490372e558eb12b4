package catalog

import (
	"iter"

	"github.com/benz9527/xds/lib/heap"
	"github.com/benz9527/xds/lib/list"
	"github.com/benz9527/xds/lib/tree"
)

// Read-only views handed to the presentation layer. None of them
// exposes a mutation.

type LinkedListView[E any] interface {
	Len() int64
	Head() list.ListNode[E]
	Tail() list.ListNode[E]
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, v E) bool)
}

type BSTView[E any] interface {
	Len() int64
	Height() int
	Root() tree.BSTNode[E]
	InOrder() iter.Seq[E]
	Foreach(fn func(idx int64, v E) bool)
}

type RBTreeView[E any] interface {
	Len() int64
	Height() int
	Root() tree.RBNode[E]
	InOrder() iter.Seq[E]
	Foreach(fn func(idx int64, color tree.RBColor, v E) bool)
}

type HeapView[E any] interface {
	Len() int64
	IsEmpty() bool
	Root() (heap.ReadOnlyHeapNode[E], bool)
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, node heap.ReadOnlyHeapNode[E]) bool)
}

type StackView[E any] interface {
	Len() int64
	IsEmpty() bool
	Top() (E, bool)
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, e E) bool)
}

// QueueView also serves the priority queue.
type QueueView[E any] interface {
	Len() int64
	IsEmpty() bool
	Front() (E, bool)
	Back() (E, bool)
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, e E) bool)
}
