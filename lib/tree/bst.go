package tree

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

type bstNode[E any] struct {
	left  *bstNode[E]
	right *bstNode[E]
	value E
}

func (node *bstNode[E]) Value() (v E) {
	if node == nil {
		return
	}
	return node.value
}

func (node *bstNode[E]) Left() BSTNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[E]) Right() BSTNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *bstNode[E]) height() int {
	if node == nil {
		return 0
	}
	return 1 + max(node.left.height(), node.right.height())
}

var _ BST[int] = (*bst[int])(nil)

type bst[E any] struct {
	root   *bstNode[E]
	count  int64
	cmp    infra.OrderedKeyComparator[E]
	logger xlog.XLogger
}

func (tree *bst[E]) Len() int64 {
	return tree.count
}

func (tree *bst[E]) Height() int {
	return tree.root.height()
}

func (tree *bst[E]) Root() BSTNode[E] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bst[E]) Insert(v E) {
	tree.root = tree.insert(tree.root, v, 0)
	tree.count++
}

// insert returns the root of the subtree after v has been linked into it.
func (tree *bst[E]) insert(node *bstNode[E], v E, depth int) *bstNode[E] {
	if node == nil {
		tree.logger.Debug("bst insert leaf", zap.Int("depth", depth))
		return &bstNode[E]{value: v}
	}
	if tree.cmp(v, node.value) < 0 {
		node.left = tree.insert(node.left, v, depth+1)
	} else {
		node.right = tree.insert(node.right, v, depth+1)
	}
	return node
}

func (tree *bst[E]) InOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		tree.Foreach(func(_ int64, v E) bool {
			return yield(v)
		})
	}
}

func (tree *bst[E]) Foreach(action func(idx int64, v E) bool) {
	stack := make([]*bstNode[E], 0, 16)
	defer func() {
		clear(stack)
	}()

	for aux := tree.root; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		if !action(idx, aux.value) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// Release unlinks the nodes in post-order, children before the parent.
func (tree *bst[E]) Release() {
	var release func(node *bstNode[E]) int
	release = func(node *bstNode[E]) int {
		if node == nil {
			return 0
		}
		n := release(node.left) + release(node.right) + 1
		node.left, node.right = nil, nil
		return n
	}
	n := release(tree.root)
	tree.root, tree.count = nil, 0
	tree.logger.Debug("bst release", zap.Int("released", n))
}

type BSTOption[E any] func(*bst[E])

func WithBSTLogger[E any](logger xlog.XLogger) BSTOption[E] {
	return func(tree *bst[E]) {
		if logger != nil {
			tree.logger = logger.Named("bst")
		}
	}
}

func NewBST[E infra.OrderedKey](opts ...BSTOption[E]) BST[E] {
	tree := &bst[E]{
		cmp: infra.Compare[E],
	}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	if tree.logger == nil {
		tree.logger = xlog.NewNopXLogger()
	}
	return tree
}
