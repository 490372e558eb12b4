package queue

import (
	randv2 "math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xds/lib/heap"
)

func TestPriorityQueue_MaxValueAsHighPriority(t *testing.T) {
	pq := NewArrayPriorityQueue[int](
		WithArrayPriorityQueueCapacity[int](32),
	)
	for _, v := range []int{10, 20, 30, 40, 50} {
		pq.Enqueue(v)
	}
	require.Equal(t, int64(5), pq.Len())
	front, ok := pq.Front()
	require.True(t, ok)
	require.Equal(t, 50, front)
	// 10 -> [10]; 20 -> [20 10]; 30 -> [30 10 20];
	// 40 -> [40 30 20 10]; 50 -> [50 40 20 10 30].
	require.Equal(t, []int{50, 40, 20, 10, 30}, slices.Collect(pq.Values()))
	back, ok := pq.Back()
	require.True(t, ok)
	require.Equal(t, 30, back)

	expected := []int{50, 40, 30, 20, 10}
	for i, e := range expected {
		peek, ok := pq.Front()
		require.True(t, ok)
		v, ok := pq.Dequeue()
		require.True(t, ok)
		assert.Equal(t, peek, v)
		assert.Equal(t, e, v, "dequeue", i)
	}
	require.True(t, pq.IsEmpty())
}

func TestPriorityQueue_MinValueAsHighPriority(t *testing.T) {
	pq := NewArrayPriorityQueue[int64](
		WithArrayPriorityQueueComparator[int64](func(i, j int64) int64 {
			return j - i
		}),
	)
	for _, v := range []int64{1, 101, 10, 200, 3, 1, 5} {
		pq.Enqueue(v)
	}
	expected := []int64{1, 1, 3, 5, 10, 101, 200}
	for i, e := range expected {
		v, ok := pq.Dequeue()
		require.True(t, ok)
		assert.Equal(t, e, v, "priority", i)
	}
}

func TestPriorityQueue_NilComparatorKeepsNaturalOrder(t *testing.T) {
	pq := NewArrayPriorityQueue[string](
		WithArrayPriorityQueueComparator[string](nil),
		WithArrayPriorityQueueLogger[string](nil),
	)
	pq.Enqueue("b")
	pq.Enqueue("c")
	pq.Enqueue("a")
	v, ok := pq.Dequeue()
	require.True(t, ok)
	require.Equal(t, "c", v)
}

func TestPriorityQueue_Empty(t *testing.T) {
	pq := NewArrayPriorityQueue[int]()
	for i := 0; i < 3; i++ {
		_, ok := pq.Dequeue()
		require.False(t, ok)
		require.Equal(t, int64(0), pq.Len())
	}
	_, ok := pq.Front()
	require.False(t, ok)
	_, ok = pq.Back()
	require.False(t, ok)
}

func TestPriorityQueue_Random(t *testing.T) {
	pq := NewArrayPriorityQueue[int]()
	values := make([]int, 0, 512)
	for i := 0; i < 512; i++ {
		v := randv2.IntN(1000)
		values = append(values, v)
		pq.Enqueue(v)
	}
	require.NoError(t, heap.ViolationValidate(pq.Values()))

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	got := make([]int, 0, 512)
	pq.Foreach(func(idx int64, e int) bool {
		require.Equal(t, int64(0), idx)
		require.Equal(t, values[0], e)
		return false
	})
	for v, ok := pq.Dequeue(); ok; v, ok = pq.Dequeue() {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}
