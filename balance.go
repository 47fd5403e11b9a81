package bst

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Height returns the height of the tree. A single node has height 0 and an
// empty tree -1.
func (t *tree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.height()
}

// NodeCount counts the values reachable from the root. Unlike Size it
// walks the whole tree on every call.
func (t *tree[T]) NodeCount() int {
	return len(t.PreOrder())
}

// IsBalanced reports whether Height() < 2*ln(NodeCount()+1) - 1. An empty
// tree is balanced.
func (t *tree[T]) IsBalanced() bool {
	if t.root == nil {
		return true
	}
	return float64(t.Height()) < 2*math.Log(float64(t.NodeCount()+1))-1
}

func (t *tree[T]) RangeFind(low, high T) []T {
	var values []T
	for _, v := range t.InOrder() {
		if t.compare(v, low) >= 0 && t.compare(v, high) <= 0 {
			values = append(values, v)
		}
	}
	return values
}

// Successor returns the smallest value strictly greater than item.
func (t *tree[T]) Successor(item T) (T, bool) {
	for _, v := range t.InOrder() {
		if t.less(item, v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Predecessor returns the largest value strictly less than item.
func (t *tree[T]) Predecessor(item T) (T, bool) {
	values := t.InOrder()
	for i := len(values) - 1; i >= 0; i-- {
		if t.less(values[i], item) {
			return values[i], true
		}
	}
	var zero T
	return zero, false
}

func (t *tree[T]) Minimum() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.minimum().value, true
}

func (t *tree[T]) Maximum() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.maximum().value, true
}

// Rebalance discards every node and rebuilds the tree from its sorted
// values, taking the middle of each run as the subtree root. The result
// has height at most ceil(log2(n+1)) - 1.
func (t *tree[T]) Rebalance() {
	values := t.InOrder()
	before := 0
	if debugEnabled() {
		before = t.Height()
	}

	t.root = build(values)
	t.size = len(values)

	if debugEnabled() {
		Log.WithFields(logrus.Fields{
			"op":     "rebalance",
			"size":   t.size,
			"before": before,
			"after":  t.Height(),
		}).Debug("rebuilt")
	}
}

// build links sorted values into a minimal height tree. Recursion depth is
// log2(len(values)).
func build[T any](values []T) *node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) >> 1
	n := newNode(values[mid])
	n.left = build(values[:mid])
	n.right = build(values[mid+1:])
	return n
}
