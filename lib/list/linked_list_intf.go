package list

import "iter"

// Note that the singly linked list is not thread safe.

// ListNode is the read-only view of a list node.
type ListNode[E any] interface {
	Value() E
	HasNext() bool
	// Next returns nil after the last node.
	Next() ListNode[E]
}

// SinglyLinkedList is an append-only singly linked list.
type SinglyLinkedList[E any] interface {
	Len() int64
	// Insert appends the value v at the tail.
	Insert(v E)
	// Head returns nil if the list is empty.
	Head() ListNode[E]
	// Tail returns nil if the list is empty.
	Tail() ListNode[E]
	// Values follows the next links from the head.
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, v E) bool)
	// Release unlinks every node and resets the list to empty.
	Release()
}
