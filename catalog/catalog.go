package catalog

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/heap"
	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/lib/list"
	"github.com/benz9527/xds/lib/queue"
	"github.com/benz9527/xds/lib/stack"
	"github.com/benz9527/xds/lib/tree"
	"github.com/benz9527/xds/observability"
	"github.com/benz9527/xds/xlog"
)

// Number is the element constraint of the catalog. The reference data
// are numeric literals.
type Number interface {
	infra.Integer | infra.Float
}

const (
	opInsert  = "insert"
	opPush    = "push"
	opEnqueue = "enqueue"
	opRemove  = "remove"
	opPop     = "pop"
	opDequeue = "dequeue"
)

var (
	seedSequential = []int{10, 20, 30, 40, 50}
	seedTree       = []int{50, 30, 70, 20, 40}
)

// Catalog owns one container of each kind. It is not thread safe.
type Catalog[E Number] struct {
	list   list.SinglyLinkedList[E]
	bst    tree.BST[E]
	heap   heap.NodeHeap[E]
	rbtree tree.RBTree[E]
	stack  stack.Stack[E]
	queue  queue.Queue[E]
	pq     queue.PriorityQueue[E]
	logger xlog.XLogger
	stats  *observability.EngineStats
}

func (c *Catalog[E]) record(kind Kind, op string, delta int64) {
	c.stats.Record(context.Background(), kind.String(), op, delta)
}

// Seed appends the reference data to the containers.
func (c *Catalog[E]) Seed() {
	for _, v := range seedSequential {
		e := E(v)
		c.list.Insert(e)
		c.record(LinkedList, opInsert, 1)
		c.stack.Push(e)
		c.record(Stack, opPush, 1)
		c.queue.Enqueue(e)
		c.record(Queue, opEnqueue, 1)
		c.pq.Enqueue(e)
		c.record(PriorityQueue, opEnqueue, 1)
	}
	for _, v := range seedTree {
		e := E(v)
		c.bst.Insert(e)
		c.record(BinarySearchTree, opInsert, 1)
		c.heap.Insert(e)
		c.record(Heap, opInsert, 1)
		c.rbtree.Insert(e)
		c.record(RedBlackTree, opInsert, 1)
	}
	c.logger.Debug("catalog seeded",
		zap.Ints("sequential", seedSequential),
		zap.Ints("tree", seedTree),
	)
}

// Add inserts v into every container.
func (c *Catalog[E]) Add(v E) {
	c.list.Insert(v)
	c.record(LinkedList, opInsert, 1)
	c.bst.Insert(v)
	c.record(BinarySearchTree, opInsert, 1)
	c.heap.Insert(v)
	c.record(Heap, opInsert, 1)
	c.rbtree.Insert(v)
	c.record(RedBlackTree, opInsert, 1)
	c.stack.Push(v)
	c.record(Stack, opPush, 1)
	c.queue.Enqueue(v)
	c.record(Queue, opEnqueue, 1)
	c.pq.Enqueue(v)
	c.record(PriorityQueue, opEnqueue, 1)
	c.logger.Debug("catalog add", zap.Any("value", v))
}

// Remove takes one element out of the container of kind.
// It returns false if the kind has no removal or the container is empty.
func (c *Catalog[E]) Remove(kind Kind) (e E, ok bool) {
	var op string
	switch kind {
	case Heap:
		op = opRemove
		e, ok = c.heap.Remove()
	case Stack:
		op = opPop
		e, ok = c.stack.Pop()
	case Queue:
		op = opDequeue
		e, ok = c.queue.Dequeue()
	case PriorityQueue:
		op = opDequeue
		e, ok = c.pq.Dequeue()
	default:
		c.logger.Debug("catalog remove unsupported", zap.Stringer("kind", kind))
		return e, false
	}
	if !ok {
		c.logger.Debug("catalog remove on empty container", zap.Stringer("kind", kind))
		c.record(kind, op, 0)
		return e, false
	}
	c.record(kind, op, -1)
	c.logger.Debug("catalog remove",
		zap.Stringer("kind", kind),
		zap.Any("value", e),
	)
	return e, true
}

// Values collects the inspection sequence of the container of kind.
// The trees yield in ascending order, the heaps in array order.
func (c *Catalog[E]) Values(kind Kind) []E {
	switch kind {
	case LinkedList:
		return slices.Collect(c.list.Values())
	case BinarySearchTree:
		return slices.Collect(c.bst.InOrder())
	case Heap:
		return slices.Collect(c.heap.Values())
	case RedBlackTree:
		return slices.Collect(c.rbtree.InOrder())
	case Stack:
		return slices.Collect(c.stack.Values())
	case Queue:
		return slices.Collect(c.queue.Values())
	case PriorityQueue:
		return slices.Collect(c.pq.Values())
	default:
	}
	return nil
}

func (c *Catalog[E]) Len(kind Kind) int64 {
	switch kind {
	case LinkedList:
		return c.list.Len()
	case BinarySearchTree:
		return c.bst.Len()
	case Heap:
		return c.heap.Len()
	case RedBlackTree:
		return c.rbtree.Len()
	case Stack:
		return c.stack.Len()
	case Queue:
		return c.queue.Len()
	case PriorityQueue:
		return c.pq.Len()
	default:
	}
	return 0
}

func (c *Catalog[E]) LinkedList() LinkedListView[E] {
	return c.list
}

func (c *Catalog[E]) BST() BSTView[E] {
	return c.bst
}

func (c *Catalog[E]) RBTree() RBTreeView[E] {
	return c.rbtree
}

func (c *Catalog[E]) Heap() HeapView[E] {
	return c.heap
}

func (c *Catalog[E]) Stack() StackView[E] {
	return c.stack
}

func (c *Catalog[E]) Queue() QueueView[E] {
	return c.queue
}

func (c *Catalog[E]) PriorityQueue() QueueView[E] {
	return c.pq
}

// SelfCheck validates the ordering invariants of the trees and heaps.
func (c *Catalog[E]) SelfCheck() error {
	err := multierr.Combine(
		tree.Validate[E](c.rbtree),
		tree.BSTViolationValidate[E](c.bst),
		heap.ViolationValidate[E](c.heap.Values()),
		heap.ViolationValidate[E](c.pq.Values()),
	)
	if err != nil {
		err = infra.WrapErrorStackWithMessage(err, "[catalog] self check")
		c.logger.ErrorStack(err, "catalog self check failed")
	}
	return err
}

// Release unlinks the nodes of the list and the trees.
func (c *Catalog[E]) Release() {
	c.record(LinkedList, opRemove, -c.list.Len())
	c.list.Release()
	c.record(BinarySearchTree, opRemove, -c.bst.Len())
	c.bst.Release()
	c.record(RedBlackTree, opRemove, -c.rbtree.Len())
	c.rbtree.Release()
	c.logger.Debug("catalog released")
}

type catalogCfg struct {
	logger xlog.XLogger
	meter  metric.Meter
}

type Option func(*catalogCfg)

func WithCatalogLogger(logger xlog.XLogger) Option {
	return func(cfg *catalogCfg) {
		cfg.logger = logger
	}
}

// WithCatalogMeter records the operations to meter instead of the
// global one.
func WithCatalogMeter(meter metric.Meter) Option {
	return func(cfg *catalogCfg) {
		cfg.meter = meter
	}
}

func New[E Number](opts ...Option) *Catalog[E] {
	cfg := &catalogCfg{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = xlog.NewNopXLogger()
	}
	return &Catalog[E]{
		list:   list.NewSinglyLinkedList[E](list.WithSinglyLinkedListLogger[E](logger)),
		bst:    tree.NewBST[E](tree.WithBSTLogger[E](logger)),
		heap:   heap.NewNodeHeap[E](heap.WithNodeHeapLogger[E](logger)),
		rbtree: tree.NewRBTree[E](tree.WithRBTreeLogger[E](logger)),
		stack:  stack.NewArrayStack[E](),
		queue:  queue.NewArrayQueue[E](),
		pq:     queue.NewArrayPriorityQueue[E](queue.WithArrayPriorityQueueLogger[E](logger)),
		logger: logger.Named("catalog"),
		stats:  lo.Must(observability.NewEngineStats(cfg.meter)),
	}
}
