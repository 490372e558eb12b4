package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xds/xlog"
)

var _ SinglyLinkedList[int] = (*singlyLinkedList[int])(nil)

type singlyLinkedList[E any] struct {
	head   *listNode[E]
	tail   *listNode[E] // Cached, so append is O(1).
	len    int64
	logger xlog.XLogger
}

func (l *singlyLinkedList[E]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[E]) Insert(v E) {
	node := &listNode[E]{value: v}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.len++
	l.logger.Debug("linked-list append", zap.Int64("len", l.len))
}

func (l *singlyLinkedList[E]) Head() ListNode[E] {
	if l.head == nil {
		return nil
	}
	return l.head
}

func (l *singlyLinkedList[E]) Tail() ListNode[E] {
	if l.tail == nil {
		return nil
	}
	return l.tail
}

func (l *singlyLinkedList[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (l *singlyLinkedList[E]) Foreach(fn func(idx int64, v E) bool) {
	var idx int64
	for node := l.head; node != nil; node = node.next {
		if !fn(idx, node.value) {
			return
		}
		idx++
	}
}

// Release unlinks the nodes from the tail side first, a successor is
// always released before its predecessor.
func (l *singlyLinkedList[E]) Release() {
	nodes := make([]*listNode[E], 0, l.len)
	for node := l.head; node != nil; node = node.next {
		nodes = append(nodes, node)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].next = nil
		nodes[i].value = *new(E)
		nodes[i] = nil
	}
	l.logger.Debug("linked-list release", zap.Int64("released", l.len))
	l.head, l.tail, l.len = nil, nil, 0
}

type SinglyLinkedListOption[E any] func(*singlyLinkedList[E])

func WithSinglyLinkedListLogger[E any](logger xlog.XLogger) SinglyLinkedListOption[E] {
	return func(l *singlyLinkedList[E]) {
		if logger != nil {
			l.logger = logger.Named("linked-list")
		}
	}
}

func NewSinglyLinkedList[E any](opts ...SinglyLinkedListOption[E]) SinglyLinkedList[E] {
	l := &singlyLinkedList[E]{}
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	if l.logger == nil {
		l.logger = xlog.NewNopXLogger()
	}
	return l
}
