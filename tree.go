package bst

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) IsEmpty() bool {
	return t.Size() == 0
}

func (t *tree[T]) Clear() {
	if debugEnabled() {
		Log.WithFields(logrus.Fields{"op": "clear", "size": t.size}).Debug("dropping all nodes")
	}
	t.root = nil
	t.size = 0
}

func (t *tree[T]) Insert(item T) {
	n := newNode(item)
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if t.less(item, cur.value) {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

func (t *tree[T]) InsertRecursive(item T) {
	if t.root == nil {
		t.root = newNode(item)
	} else {
		t.recursiveInsert(t.root, item)
	}
	t.size++
}

func (t *tree[T]) recursiveInsert(curr *node[T], item T) {
	if t.less(item, curr.value) {
		if curr.left == nil {
			curr.left = newNode(item)
			return
		}
		t.recursiveInsert(curr.left, item)
		return
	}
	// equal values fall through to the right
	if curr.right == nil {
		curr.right = newNode(item)
		return
	}
	t.recursiveInsert(curr.right, item)
}

func (t *tree[T]) Find(item T) (T, bool) {
	n := t.recursiveFind(t.root, item)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (t *tree[T]) recursiveFind(curr *node[T], item T) *node[T] {
	if curr == nil {
		return nil
	}
	switch c := t.compare(item, curr.value); {
	case c == 0:
		return curr
	case c < 0:
		return t.recursiveFind(curr.left, item)
	default:
		return t.recursiveFind(curr.right, item)
	}
}

func (t *tree[T]) FindIterative(item T) (T, bool) {
	n := t.search(item)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// search returns the first node equal to item on the path from the root.
func (t *tree[T]) search(item T) *node[T] {
	for cur := t.root; cur != nil; {
		c := t.compare(item, cur.value)
		if c == 0 {
			return cur
		}
		cur = cur.child(sideOf(c))
	}
	return nil
}

func (t *tree[T]) Contains(item T) bool {
	_, ok := t.Find(item)
	return ok
}

func (t *tree[T]) Remove(item T) (T, error) {
	// pre stands in as the root's parent, so removing the root rewires
	// pre.left like any other child link.
	pre := &node[T]{left: t.root}
	parent, dir := pre, sideLeft

	cur := t.root
	for cur != nil && !t.equal(item, cur.value) {
		parent = cur
		dir = sideOf(t.compare(item, cur.value))
		cur = cur.child(dir)
	}
	if cur == nil {
		var zero T
		return zero, fmt.Errorf("remove %v: %w", item, ErrNotFound)
	}

	removed := cur.value
	if cur.left != nil && cur.right != nil {
		liftMaxInLeftSubtree(cur)
		if debugEnabled() {
			Log.WithFields(logrus.Fields{"op": "remove", "item": item, "lifted": cur.value}).Debug("two children")
		}
	} else {
		child := cur.left
		if child == nil {
			child = cur.right
		}
		parent.setChild(dir, child)
		if debugEnabled() {
			Log.WithFields(logrus.Fields{"op": "remove", "item": item, "side": dir}).Debug("spliced")
		}
	}

	t.size--
	t.root = pre.left
	return removed, nil
}

func (t *tree[T]) Replace(item, newItem T) (T, bool) {
	n := t.search(item)
	if n == nil {
		var zero T
		return zero, false
	}
	old := n.value
	n.value = newItem
	return old, true
}
