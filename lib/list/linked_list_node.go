package list

type listNode[E any] struct {
	next  *listNode[E]
	value E // The value is fixed after creation.
}

func (node *listNode[E]) Value() (v E) {
	if node == nil {
		return
	}
	return node.value
}

func (node *listNode[E]) HasNext() bool {
	return node != nil && node.next != nil
}

func (node *listNode[E]) Next() ListNode[E] {
	if node == nil || node.next == nil {
		// Avoid a non-nil interface holding a nil pointer.
		return nil
	}
	return node.next
}
