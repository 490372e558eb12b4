package tree

import "iter"

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "Unknown"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "Unknown"
}

// RBNode is the read-only view of a red-black tree node.
// Any absent link is a nil interface.
type RBNode[E any] interface {
	Value() E
	Color() RBColor
	Left() RBNode[E]
	Right() RBNode[E]
	Parent() RBNode[E]
}

// RBTree is an insertion-only red-black tree. Equal values are kept and
// placed to the right.
type RBTree[E any] interface {
	Len() int64
	// Height counts the nodes on the longest root-to-leaf path.
	Height() int
	// Root returns nil if the tree is empty.
	Root() RBNode[E]
	Insert(v E)
	// InOrder yields the values in non-decreasing order.
	InOrder() iter.Seq[E]
	Foreach(fn func(idx int64, color RBColor, v E) bool)
	Release()
}

type BSTNode[E any] interface {
	Value() E
	Left() BSTNode[E]
	Right() BSTNode[E]
}

// BST is an unbalanced, insertion-only binary search tree.
// Smaller values go left, equal or greater values go right.
type BST[E any] interface {
	Len() int64
	Height() int
	Root() BSTNode[E]
	Insert(v E)
	InOrder() iter.Seq[E]
	Foreach(fn func(idx int64, v E) bool)
	Release()
}
