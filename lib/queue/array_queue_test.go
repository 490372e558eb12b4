package queue

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := NewArrayQueue[int]()
	for _, v := range []int{10, 20, 30, 40, 50} {
		q.Enqueue(v)
	}
	require.Equal(t, int64(5), q.Len())
	require.Equal(t, []int{10, 20, 30, 40, 50}, slices.Collect(q.Values()))

	front, ok := q.Front()
	require.True(t, ok)
	require.Equal(t, 10, front)
	back, ok := q.Back()
	require.True(t, ok)
	require.Equal(t, 50, back)

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 10, v)
	front, _ = q.Front()
	require.Equal(t, 20, front)
	require.Equal(t, []int{20, 30, 40, 50}, slices.Collect(q.Values()))
}

func TestArrayQueue_Empty(t *testing.T) {
	q := NewArrayQueue[string]()
	for i := 0; i < 3; i++ {
		v, ok := q.Dequeue()
		require.False(t, ok)
		require.Equal(t, "", v)
		require.Equal(t, int64(0), q.Len())
		require.True(t, q.IsEmpty())
	}
	_, ok := q.Front()
	require.False(t, ok)
	_, ok = q.Back()
	require.False(t, ok)
	require.Empty(t, slices.Collect(q.Values()))
}

func TestArrayQueue_WrapAround(t *testing.T) {
	q := NewArrayQueue[int](WithArrayQueueCapacity[int](4)).(*arrayQueue[int])
	require.Len(t, q.arr, 4)
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 2; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	// head at 2, the next enqueues wrap over the end of the ring.
	for i := 3; i < 6; i++ {
		q.Enqueue(i)
	}
	require.Len(t, q.arr, 4)
	require.Equal(t, 2, q.head)
	require.Equal(t, []int{2, 3, 4, 5}, slices.Collect(q.Values()))
	back, _ := q.Back()
	require.Equal(t, 5, back)

	// Full and wrapped, the resize unrolls the ring.
	q.Enqueue(6)
	require.Len(t, q.arr, 8)
	require.Equal(t, 0, q.head)
	require.Equal(t, []int{2, 3, 4, 5, 6}, slices.Collect(q.Values()))
}

func TestArrayQueue_GrowAndShrink(t *testing.T) {
	q := NewArrayQueue[int](WithArrayQueueCapacity[int](5)).(*arrayQueue[int])
	require.Equal(t, 8, q.minCapacity)
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	require.Len(t, q.arr, 128)

	got := make([]int, 0, 100)
	for v, ok := q.Dequeue(); ok; v, ok = q.Dequeue() {
		got = append(got, v)
		assert.GreaterOrEqual(t, len(q.arr), q.minCapacity)
	}
	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
	require.Len(t, q.arr, 8)
}

func TestArrayQueue_Foreach(t *testing.T) {
	q := NewArrayQueue[int](WithArrayQueueCapacity[int](-1))
	for _, v := range []int{1, 2, 3, 4} {
		q.Enqueue(v)
	}
	idxs := make([]int64, 0, 4)
	q.Foreach(func(idx int64, e int) bool {
		idxs = append(idxs, idx)
		return e < 3
	})
	require.Equal(t, []int64{0, 1, 2}, idxs)
}
