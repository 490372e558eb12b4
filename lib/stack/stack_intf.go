package stack

import "iter"

// Stack is a LIFO sequence.
// Pop and Top return false on an empty stack.
type Stack[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	Pop() (E, bool)
	Top() (E, bool)
	// Values yields from bottom to top.
	Values() iter.Seq[E]
	Foreach(fn func(idx int64, e E) bool)
}
