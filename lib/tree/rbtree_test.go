package tree

import (
	"math/bits"
	randv2 "math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xds/xlog"
)

type checkData struct {
	color RBColor
	value uint64
}

func requireRBTree(t *testing.T, tree RBTree[uint64], expected []checkData) {
	t.Helper()
	require.Equal(t, int64(len(expected)), tree.Len())
	tree.Foreach(func(idx int64, color RBColor, v uint64) bool {
		require.Equal(t, expected[idx].color, color, "idx", idx)
		require.Equal(t, expected[idx].value, v, "idx", idx)
		return true
	})
	require.NoError(t, Validate[uint64](tree))
}

func TestNilNode(t *testing.T) {
	var nilNode RBNode[uint64] = nil
	require.True(t, nilNode == nil)

	var nilNode2 *rbNode[uint64] = nil
	nilNode = nilNode2
	require.True(t, nilNode != nil)
	require.Nil(t, nilNode)
	require.Nil(t, nilNode.Left())
	require.Nil(t, nilNode.Right())
	require.Nil(t, nilNode.Parent())
	require.Equal(t, Black, nilNode.Color())
	require.Equal(t, uint64(0), nilNode.Value())
}

func TestRBColorAndDirectionString(t *testing.T) {
	require.Equal(t, "Black", Black.String())
	require.Equal(t, "Red", Red.String())
	require.Equal(t, "Unknown", RBColor(9).String())
	require.Equal(t, "Left", Left.String())
	require.Equal(t, "Root", Root.String())
	require.Equal(t, "Right", Right.String())
	require.Equal(t, "Unknown", RBDirection(7).String())
}

func TestRbtreeLeftAndRightRotate(t *testing.T) {
	tree := NewRBTree[uint64]()
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Height())

	tree.Insert(52)
	requireRBTree(t, tree, []checkData{
		{Black, 52},
	})

	tree.Insert(47)
	requireRBTree(t, tree, []checkData{
		{Red, 47}, {Black, 52},
	})

	// straight line, rotate right at 52
	tree.Insert(3)
	requireRBTree(t, tree, []checkData{
		{Red, 3}, {Black, 47}, {Red, 52},
	})
	require.Equal(t, uint64(47), tree.Root().Value())

	// red uncle, recolor
	tree.Insert(35)
	requireRBTree(t, tree, []checkData{
		{Black, 3},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	// zig-zag, rotate right at 35 then left at 3
	tree.Insert(24)
	requireRBTree(t, tree, []checkData{
		{Red, 3},
		{Black, 24},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})
	root := tree.Root()
	require.Equal(t, uint64(47), root.Value())
	require.Equal(t, uint64(24), root.Left().Value())
	require.Equal(t, uint64(3), root.Left().Left().Value())
	require.Equal(t, uint64(35), root.Left().Right().Value())
	require.Equal(t, root, root.Left().Parent())
	require.Equal(t, 3, tree.Height())
}

func TestRbtree_MirrorCases(t *testing.T) {
	tree := NewRBTree[uint64]()
	for _, v := range []uint64{3, 24, 52} {
		tree.Insert(v)
	}
	// straight line, rotate left at 3
	requireRBTree(t, tree, []checkData{
		{Red, 3}, {Black, 24}, {Red, 52},
	})

	tree.Insert(47)
	requireRBTree(t, tree, []checkData{
		{Black, 3}, {Black, 24}, {Red, 47}, {Black, 52},
	})

	// zig-zag, rotate left at 47 then right at 52
	tree.Insert(50)
	requireRBTree(t, tree, []checkData{
		{Black, 3}, {Black, 24}, {Red, 47}, {Black, 50}, {Red, 52},
	})
	require.Equal(t, uint64(50), tree.Root().Right().Value())
}

func TestRbtree_ReferenceData(t *testing.T) {
	tree := NewRBTree[uint64]()
	for _, v := range []uint64{50, 30, 70, 20, 40} {
		tree.Insert(v)
	}
	require.Equal(t, []uint64{20, 30, 40, 50, 70}, slices.Collect(tree.InOrder()))
	requireRBTree(t, tree, []checkData{
		{Red, 20}, {Black, 30}, {Red, 40}, {Black, 50}, {Black, 70},
	})
	require.Equal(t, uint64(50), tree.Root().Value())
	require.Equal(t, Black, tree.Root().Color())
	require.Nil(t, tree.Root().Parent())
}

func TestRbtree_Duplicates(t *testing.T) {
	tree := NewRBTree[int]()
	for i := 0; i < 32; i++ {
		tree.Insert(i % 3)
		require.NoError(t, Validate[int](tree))
	}
	got := slices.Collect(tree.InOrder())
	require.Len(t, got, 32)
	require.True(t, sort.IntsAreSorted(got))
}

func TestRbtree_ForeachStop(t *testing.T) {
	tree := NewRBTree[int]()
	for _, v := range lo.Range(10) {
		tree.Insert(v)
	}
	got := make([]int, 0, 3)
	tree.Foreach(func(idx int64, color RBColor, v int) bool {
		got = append(got, v)
		return idx < 2
	})
	require.Equal(t, []int{0, 1, 2}, got)

	got = got[:0]
	for v := range tree.InOrder() {
		if v > 4 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func sameShape(t *testing.T, expected *redblacktree.Node, actual RBNode[int]) {
	t.Helper()
	if expected == nil {
		require.Nil(t, actual)
		return
	}
	require.NotNil(t, actual)
	require.Equal(t, expected.Key, actual.Value())
	sameShape(t, expected.Left, actual.Left())
	sameShape(t, expected.Right, actual.Right())
}

func TestRbtree_CompareWithGodsRedBlackTree(t *testing.T) {
	testcases := []struct {
		name  string
		input []int
	}{
		{"sequential", lo.Range(1024)},
		{"reverse sequential", lo.Reverse(lo.Range(1024))},
		{"random permutation", randv2.Perm(2048)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTree[int]()
			oracle := redblacktree.NewWithIntComparator()
			for _, v := range tc.input {
				tree.Insert(v)
				oracle.Put(v, struct{}{})
			}
			require.NoError(tt, Validate[int](tree))
			require.Equal(tt, int64(oracle.Size()), tree.Len())
			keys := lo.Map(oracle.Keys(), func(k interface{}, _ int) int {
				return k.(int)
			})
			require.Equal(tt, keys, slices.Collect(tree.InOrder()))
			sameShape(tt, oracle.Root, tree.Root())

			n := uint64(len(tc.input))
			require.LessOrEqual(tt, tree.Height(), 2*bits.Len64(n+1))
		})
	}
}

func TestRbtree_RandomValues(t *testing.T) {
	tree := NewRBTree[float64]()
	values := make([]float64, 0, 2000)
	for i := 0; i < 2000; i++ {
		v := float64(randv2.IntN(500)) / 4
		values = append(values, v)
		tree.Insert(v)
		if i%100 == 0 {
			require.NoError(t, Validate[float64](tree))
		}
	}
	require.NoError(t, Validate[float64](tree))
	sort.Float64s(values)
	require.Equal(t, values, slices.Collect(tree.InOrder()))
}

func TestRbtree_Release(t *testing.T) {
	tree := NewRBTree[int]()
	for _, v := range randv2.Perm(100) {
		tree.Insert(v)
	}
	root := tree.Root()
	require.NotNil(t, root.Left())
	tree.Release()
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Height())
	require.Nil(t, root.Left())
	require.Nil(t, root.Right())
	require.Empty(t, slices.Collect(tree.InOrder()))

	tree.Insert(1)
	require.Equal(t, []int{1}, slices.Collect(tree.InOrder()))
	require.NoError(t, Validate[int](tree))
}

func TestRbtree_DebugLog(t *testing.T) {
	var out strings.Builder
	tree := NewRBTree[uint64](WithRBTreeLogger[uint64](xlog.NewXLogger(
		xlog.WithXLoggerWriter(zapcore.AddSync(&out)),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)))
	for _, v := range []uint64{52, 47, 3, 35, 24} {
		tree.Insert(v)
	}
	logs := out.String()
	require.Contains(t, logs, "straight-line")
	require.Contains(t, logs, "red-uncle")
	require.Contains(t, logs, "zig-zag")
}

func linkRBNode[E any](node *rbNode[E], left, right *rbNode[E]) *rbNode[E] {
	node.left, node.right = left, right
	node.fixLink()
	return node
}

func TestRbtreeViolationValidate(t *testing.T) {
	testcases := []struct {
		name     string
		root     *rbNode[int]
		expected []error
	}{
		{
			name:     "red root and red child",
			root:     linkRBNode(&rbNode[int]{value: 10, color: Red}, &rbNode[int]{value: 5, color: Red}, nil),
			expected: []error{ErrRBTreeRootViolation, ErrRBTreeRedViolation},
		},
		{
			name: "red red",
			root: linkRBNode(
				&rbNode[int]{value: 10, color: Black},
				linkRBNode(&rbNode[int]{value: 5, color: Red}, &rbNode[int]{value: 3, color: Red}, nil),
				nil,
			),
			expected: []error{ErrRBTreeRedViolation},
		},
		{
			name:     "black depth",
			root:     linkRBNode(&rbNode[int]{value: 10, color: Black}, &rbNode[int]{value: 5, color: Black}, nil),
			expected: []error{ErrRBTreeBlackViolation},
		},
		{
			name: "order",
			root: linkRBNode(
				&rbNode[int]{value: 10, color: Black},
				&rbNode[int]{value: 20, color: Red},
				&rbNode[int]{value: 30, color: Red},
			),
			expected: []error{ErrRBTreeOrderViolation},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := &rbTree[int]{root: tc.root, count: 3, logger: xlog.NewNopXLogger()}
			err := Validate[int](tree)
			require.Len(tt, multierr.Errors(err), len(tc.expected))
			for _, e := range tc.expected {
				require.ErrorIs(tt, err, e)
			}
		})
	}
}

func TestParentLinkValidate(t *testing.T) {
	root := &rbNode[int]{value: 10, color: Black}
	root.left = &rbNode[int]{value: 5, color: Red}
	tree := &rbTree[int]{root: root, count: 2}
	require.ErrorIs(t, ParentLinkValidate[int](tree), ErrRBTreeParentLinkViolation)

	root.fixLink()
	require.NoError(t, ParentLinkValidate[int](tree))

	root.parent = root.left
	require.ErrorIs(t, ParentLinkValidate[int](tree), ErrRBTreeParentLinkViolation)
}
