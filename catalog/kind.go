package catalog

// Kind is one menu entry of the engine.
type Kind uint8

const (
	LinkedList Kind = iota
	BinarySearchTree
	Heap
	RedBlackTree
	Stack
	Queue
	PriorityQueue
	_kindMax
)

var kindLabels = [_kindMax]string{
	LinkedList:       "Linked List",
	BinarySearchTree: "Binary Search Tree",
	Heap:             "Heap",
	RedBlackTree:     "Red-Black Tree",
	Stack:            "Stack",
	Queue:            "Queue",
	PriorityQueue:    "Priority Queue",
}

func (k Kind) String() string {
	if k >= _kindMax {
		return "Unknown"
	}
	return kindLabels[k]
}

// Removable reports whether the container of k supports removal.
func (k Kind) Removable() bool {
	switch k {
	case Heap, Stack, Queue, PriorityQueue:
		return true
	default:
	}
	return false
}

// Kinds lists the kinds in menu order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, _kindMax)
	for k := LinkedList; k < _kindMax; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
