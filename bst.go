package bst

import (
	"errors"
)

const (
	sideLeft side = iota
	sideRight
)

var (
	ErrNotFound    = errors.New("item not in tree")
	ErrNoMoreNodes = errors.New("there are no more nodes in the tree")

	errEmptyStack = errors.New("stack is empty")
)

type (
	tree[T any] struct {
		root    *node[T]
		size    int
		compare Compare[T]
	}

	// node owns its two subtrees. There are no parent links; walks that
	// need to climb back use a stack.
	node[T any] struct {
		value       T
		left, right *node[T]
	}

	// side records which link of its parent a node hangs from.
	side uint8

	preOrderIterator[T any] struct {
		nodes *stack[*node[T]]
	}

	inOrderIterator[T any] struct {
		nodes *stack[*node[T]]
		next  *node[T]
	}

	// heightFrame is a pending node and its depth below the walk's start.
	heightFrame[T any] struct {
		node  *node[T]
		depth int
	}
)

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

func (s side) String() string {
	return []string{"left", "right"}[s]
}

func (t *tree[T]) less(a, b T) bool {
	return t.compare(a, b) < 0
}

func (t *tree[T]) equal(a, b T) bool {
	return t.compare(a, b) == 0
}
