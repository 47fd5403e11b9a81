package bst

import "golang.org/x/exp/constraints"

// Tree is an ordered collection backed by a linked, unbalanced binary search
// tree. Values less than a node go to its left subtree, values greater than
// or equal to it go to its right subtree, so duplicates are kept and routed
// right. Balance is only restored by an explicit call to Rebalance.
//
// A Tree is not safe for concurrent use. Iterators returned by Iterator and
// InOrderIterator hold links into the live structure: the tree must not be
// modified while one of them is in use.
type Tree[T any] interface {
	// Insert adds item by walking down from the root.
	Insert(item T)
	// InsertRecursive adds item using recursive descent. Same placement as Insert.
	InsertRecursive(item T)
	// Find returns the stored value equal to item, recursively.
	Find(item T) (T, bool)
	// FindIterative returns the stored value equal to item.
	FindIterative(item T) (T, bool)
	Contains(item T) bool
	// Remove deletes the first node equal to item met on the search path
	// and returns its value. It fails with ErrNotFound if item is absent.
	Remove(item T) (T, error)
	// Replace overwrites the value equal to item with newItem in place and
	// returns the old value. newItem must keep the node's ordering position,
	// it is not checked.
	Replace(item, newItem T) (T, bool)
	Clear()
	Size() int
	IsEmpty() bool

	PreOrder() []T
	InOrder() []T
	PostOrder() []T
	// LevelOrder is not supported and always returns nil.
	LevelOrder() []T
	// Iterator walks the tree in preorder.
	Iterator() Iterator[T]
	InOrderIterator() Iterator[T]

	Height() int
	NodeCount() int
	IsBalanced() bool
	// RangeFind returns the values v with low <= v <= high in sorted order.
	RangeFind(low, high T) []T
	Successor(item T) (T, bool)
	Predecessor(item T) (T, bool)
	Minimum() (T, bool)
	Maximum() (T, bool)
	// Rebalance rebuilds the tree into a minimal height shape.
	Rebalance()

	String() string
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Compare returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Compare[T any] func(a, b T) int

// New returns a tree ordered by the natural order of T, seeded with items
// inserted one by one in the given order.
func New[T constraints.Ordered](items ...T) Tree[T] {
	return NewFunc[T](compareOrdered[T], items...)
}

// NewFunc returns a tree ordered by compare, seeded with items.
func NewFunc[T any](compare Compare[T], items ...T) Tree[T] {
	t := &tree[T]{compare: compare}
	for _, item := range items {
		t.Insert(item)
	}
	return t
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
