package stack

import (
	"iter"
)

var _ Stack[int] = (*arrayStack[int])(nil)

type arrayStack[E any] struct {
	arr []E
}

func (s *arrayStack[E]) Len() int64 {
	return int64(len(s.arr))
}

func (s *arrayStack[E]) IsEmpty() bool {
	return len(s.arr) == 0
}

func (s *arrayStack[E]) Push(e E) {
	s.arr = append(s.arr, e)
}

func (s *arrayStack[E]) Pop() (e E, ok bool) {
	n := len(s.arr)
	if n == 0 {
		return e, false
	}
	e = s.arr[n-1]
	s.arr[n-1] = *new(E) // release the reference
	s.arr = s.arr[:n-1]
	return e, true
}

func (s *arrayStack[E]) Top() (e E, ok bool) {
	if len(s.arr) == 0 {
		return e, false
	}
	return s.arr[len(s.arr)-1], true
}

func (s *arrayStack[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(s.arr); i++ {
			if !yield(s.arr[i]) {
				return
			}
		}
	}
}

func (s *arrayStack[E]) Foreach(fn func(idx int64, e E) bool) {
	for i := 0; i < len(s.arr); i++ {
		if !fn(int64(i), s.arr[i]) {
			return
		}
	}
}

type ArrayStackOption[E any] func(*arrayStack[E])

func WithArrayStackCapacity[E any](capacity int) ArrayStackOption[E] {
	return func(s *arrayStack[E]) {
		if capacity > 0 {
			s.arr = make([]E, 0, capacity)
		}
	}
}

func NewArrayStack[E any](opts ...ArrayStackOption[E]) Stack[E] {
	s := &arrayStack[E]{}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}
