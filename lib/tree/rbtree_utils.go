package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xds/lib/infra"
)

var (
	ErrRBTreeRootViolation       = errors.New("rbtree root violation")
	ErrRBTreeRedViolation        = errors.New("rbtree red violation")
	ErrRBTreeBlackViolation      = errors.New("rbtree black violation")
	ErrRBTreeOrderViolation      = errors.New("rbtree order violation")
	ErrRBTreeParentLinkViolation = errors.New("rbtree parent link violation")
	ErrBSTOrderViolation         = errors.New("bst order violation")
)

func isBlack[E any](node RBNode[E]) bool {
	return node == nil || node.Color() == Black
}

func isRed[E any](node RBNode[E]) bool {
	return node != nil && node.Color() == Red
}

func blackDepthTo[E any](target, to RBNode[E]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[E](aux) {
			depth++
		}
	}
	return depth
}

// inorder walks the tree with an explicit stack, stops if fn returns false.
func inorder[E any](tree RBTree[E], fn func(node RBNode[E]) bool) {
	stack := make([]RBNode[E], 0, tree.Height())
	defer func() {
		clear(stack)
	}()

	for aux := tree.Root(); aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		if !fn(aux) {
			return
		}
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

func RootColorValidate[E any](tree RBTree[E]) error {
	if root := tree.Root(); root != nil && root.Color() != Black {
		return fmt.Errorf("%w: root %v is %s", ErrRBTreeRootViolation, root.Value(), root.Color())
	}
	return nil
}

// Inorder traversal to validate that no red node has a red child.
func RedViolationValidate[E any](tree RBTree[E]) (err error) {
	inorder[E](tree, func(aux RBNode[E]) bool {
		if isRed[E](aux) && (isRed[E](aux.Left()) || isRed[E](aux.Right())) {
			err = fmt.Errorf("%w: red node %v has a red child", ErrRBTreeRedViolation, aux.Value())
			return false
		}
		return true
	})
	return err
}

// BFS traversal to load all nodes with at least one nil child.
func bfsLeaves[E any](tree RBTree[E]) []RBNode[E] {
	aux := tree.Root()
	if aux == nil {
		return nil
	}

	leaves := make([]RBNode[E], 0, tree.Len()>>1+1)
	queue := make([]RBNode[E], 0, tree.Len()>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[E any](tree RBTree[E]) error {
	leaves := bfsLeaves[E](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[E](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if d := blackDepthTo[E](leaves[i], tree.Root()); d != blackDepth {
			return fmt.Errorf("%w: black depth %d to %v, expected %d",
				ErrRBTreeBlackViolation, d, leaves[i].Value(), blackDepth)
		}
	}
	return nil
}

// OrderViolationValidate checks that the inorder values are non-decreasing.
// Rotations may move an equal value into a left subtree, so it is the
// sequence that is checked, not each link.
func OrderViolationValidate[E infra.OrderedKey](tree RBTree[E]) (err error) {
	var (
		prev    E
		hasPrev bool
	)
	inorder[E](tree, func(aux RBNode[E]) bool {
		v := aux.Value()
		if hasPrev && v < prev {
			err = fmt.Errorf("%w: %v after %v", ErrRBTreeOrderViolation, v, prev)
			return false
		}
		prev, hasPrev = v, true
		return true
	})
	return err
}

func ParentLinkValidate[E any](tree RBTree[E]) (err error) {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrRBTreeParentLinkViolation, root.Value())
	}
	inorder[E](tree, func(aux RBNode[E]) bool {
		for _, child := range []RBNode[E]{aux.Left(), aux.Right()} {
			if child != nil && child.Parent() != aux {
				err = fmt.Errorf("%w: child %v of %v", ErrRBTreeParentLinkViolation, child.Value(), aux.Value())
				return false
			}
		}
		return true
	})
	return err
}

// Validate reports every violated red-black tree property.
func Validate[E infra.OrderedKey](tree RBTree[E]) error {
	return multierr.Combine(
		RootColorValidate[E](tree),
		RedViolationValidate[E](tree),
		BlackViolationValidate[E](tree),
		OrderViolationValidate[E](tree),
		ParentLinkValidate[E](tree),
	)
}

// BSTViolationValidate checks that every left subtree is less than its
// root and every right subtree is not less than its root.
func BSTViolationValidate[E infra.OrderedKey](tree BST[E]) error {
	var validate func(node BSTNode[E], lo, hi *E) error
	validate = func(node BSTNode[E], lo, hi *E) error {
		if node == nil {
			return nil
		}
		v := node.Value()
		if (lo != nil && v < *lo) || (hi != nil && v >= *hi) {
			return fmt.Errorf("%w: %v out of range", ErrBSTOrderViolation, v)
		}
		return multierr.Append(
			validate(node.Left(), lo, &v),
			validate(node.Right(), &v, hi),
		)
	}
	return validate(tree.Root(), nil, nil)
}
