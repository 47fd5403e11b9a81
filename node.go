package bst

// sideOf maps a comparison of an item against a node's value to the
// subtree the item belongs in. Ties go right.
func sideOf(c int) side {
	if c < 0 {
		return sideLeft
	}
	return sideRight
}

func (n *node[T]) child(s side) *node[T] {
	if s == sideLeft {
		return n.left
	}
	return n.right
}

func (n *node[T]) setChild(s side, c *node[T]) {
	if s == sideLeft {
		n.left = c
	} else {
		n.right = c
	}
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// liftMaxInLeftSubtree overwrites top's value with the largest value of
// its left subtree and unlinks the node that held it. top must have a
// left child.
func liftMaxInLeftSubtree[T any](top *node[T]) {
	parent := top
	cur := top.left
	for cur.right != nil {
		parent = cur
		cur = cur.right
	}
	top.value = cur.value
	// cur has no right child, its left subtree takes its place
	if parent == top {
		top.left = cur.left
	} else {
		parent.right = cur.left
	}
}

// height returns the number of edges on the longest path from n down to a
// leaf. A leaf has height 0.
func (n *node[T]) height() int {
	frames := newStack[heightFrame[T]](16)
	frames.push(heightFrame[T]{node: n})

	h := 0
	for !frames.isEmpty() {
		f, _ := frames.pop()
		if f.node.isLeaf() {
			h = max(h, f.depth)
			continue
		}
		if f.node.left != nil {
			frames.push(heightFrame[T]{node: f.node.left, depth: f.depth + 1})
		}
		if f.node.right != nil {
			frames.push(heightFrame[T]{node: f.node.right, depth: f.depth + 1})
		}
	}
	return h
}
