package tree

import (
	"iter"
	"math/bits"

	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

type rbNode[E any] struct {
	parent *rbNode[E]
	left   *rbNode[E]
	right  *rbNode[E]
	value  E
	color  RBColor
}

func (node *rbNode[E]) Color() RBColor {
	if node == nil {
		return Black
	}
	return node.color
}

func (node *rbNode[E]) Value() (v E) {
	if node == nil {
		return
	}
	return node.value
}

func (node *rbNode[E]) Left() RBNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[E]) Parent() RBNode[E] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[E]) Right() RBNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Nil leaves are black.
func (node *rbNode[E]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[E]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[E]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[E]) sibling() *rbNode[E] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:
	}
	return nil
}

func (node *rbNode[E]) uncle() *rbNode[E] {
	return node.parent.sibling()
}

func (node *rbNode[E]) grandpa() *rbNode[E] {
	return node.parent.parent
}

func (node *rbNode[E]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[E]) height() int {
	if node == nil {
		return 0
	}
	return 1 + max(node.left.height(), node.right.height())
}

type rbTree[E any] struct {
	root   *rbNode[E]
	count  int64
	cmp    infra.OrderedKeyComparator[E]
	logger xlog.XLogger
}

func (tree *rbTree[E]) Len() int64 {
	return tree.count
}

func (tree *rbTree[E]) Height() int {
	return tree.root.height()
}

func (tree *rbTree[E]) Root() RBNode[E] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[E]) leftRotate(x *rbNode[E]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[E]) rightRotate(x *rbNode[E]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// i1: Empty rbtree, the new node becomes the root and is painted black.
// i2: Otherwise descend as a BST, ties to the right, and link a red leaf.
func (tree *rbTree[E]) Insert(v E) {
	z := &rbNode[E]{
		value: v,
		color: Red,
	}
	tree.count++

	if /* i1 */ tree.root == nil {
		z.color = Black
		tree.root = z
		tree.logger.Debug("rbtree insert root")
		return
	}

	/* i2 */
	var x, y = tree.root, (*rbNode[E])(nil)
	for x != nil {
		y = x
		if tree.cmp(v, x.value) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	if tree.cmp(v, y.value) < 0 {
		y.left = z
	} else {
		y.right = z
	}
	tree.insertRebalance(z)
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

The loop goes on while X is red and its parent P is red. A red parent is
never the root, so the grandpa G exists. The cases below show P as the left
child of G, the right side is the mirror.

im1: Both the parent P and the uncle U are red, grandpa G is black.
Repaint G into red, P and U into black. G may be in red-violation now,
continue from G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im2: The uncle U is black and X is opposite direction to P (zig-zag).
Rotate at P toward the side of P. The former parent becomes X and
falls into im3.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im3: The uncle U is black and X is the same direction as P (straight line).
Rotate G to the opposite direction and swap the colors of P and G.
P is black now, the loop terminates.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

At last the root is painted black.
*/
func (tree *rbTree[E]) insertRebalance(x *rbNode[E]) {
	for !x.isRoot() && x.isRed() && x.parent.isRed() {
		p, gp := x.parent, x.grandpa()
		side := p.Direction()

		if u := x.uncle(); /* im1 */ u.isRed() {
			p.color, u.color, gp.color = Black, Black, Red
			tree.logger.Debug("rbtree insert rebalance",
				zap.String("case", "red-uncle"),
				zap.Stringer("side", side),
			)
			x = gp
			continue
		}

		if /* im2 */ x.Direction() != side {
			switch side {
			case Left:
				tree.leftRotate(p)
			case Right:
				tree.rightRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im2)")
			}
			tree.logger.Debug("rbtree insert rebalance",
				zap.String("case", "zig-zag"),
				zap.Stringer("side", side),
			)
			x, p = p, x
		}

		switch /* im3 */ side {
		case Left:
			tree.rightRotate(gp)
		case Right:
			tree.leftRotate(gp)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert violate (im3)")
		}
		p.color, gp.color = gp.color, p.color
		tree.logger.Debug("rbtree insert rebalance",
			zap.String("case", "straight-line"),
			zap.Stringer("side", side),
		)
		x = p
	}
	tree.root.color = Black
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[E]) InOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		tree.Foreach(func(_ int64, _ RBColor, v E) bool {
			return yield(v)
		})
	}
}

func (tree *rbTree[E]) Foreach(action func(idx int64, color RBColor, v E) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	// The height is at most 2*log2(n+1).
	stack := make([]*rbNode[E], 0, bits.Len64(uint64(tree.count))<<1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.value) {
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
func (tree *rbTree[E]) Release() {
	aux := tree.root
	tree.root, tree.count = nil, 0
	if aux == nil {
		return
	}

	// Reversed root-right-left preorder is the post-order.
	stack := []*rbNode[E]{aux}
	order := make([]*rbNode[E], 0, 16)
	for size := len(stack); size > 0; size = len(stack) {
		aux, stack = stack[size-1], stack[:size-1]
		order = append(order, aux)
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		aux = order[i]
		aux.left, aux.right, aux.parent = nil, nil, nil
		order[i] = nil
	}
	tree.logger.Debug("rbtree release", zap.Int("released", len(order)))
}

type RBTreeOption[E any] func(*rbTree[E])

func WithRBTreeLogger[E any](logger xlog.XLogger) RBTreeOption[E] {
	return func(tree *rbTree[E]) {
		if logger != nil {
			tree.logger = logger.Named("rbtree")
		}
	}
}

func NewRBTree[E infra.OrderedKey](opts ...RBTreeOption[E]) RBTree[E] {
	tree := &rbTree[E]{
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
