package bst

func (t *tree[T]) Iterator() Iterator[T] {
	it := &preOrderIterator[T]{nodes: newStack[*node[T]](16)}
	if t.root != nil {
		it.nodes.push(t.root)
	}
	return it
}

func (it *preOrderIterator[T]) HasNext() bool {
	return it != nil && !it.nodes.isEmpty()
}

// Next pops the next node and queues its children, right first so the
// left subtree is visited before it.
func (it *preOrderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	cur, err := it.nodes.pop()
	if err != nil {
		var zero T
		return zero, err
	}
	if cur.right != nil {
		it.nodes.push(cur.right)
	}
	if cur.left != nil {
		it.nodes.push(cur.left)
	}
	return cur.value, nil
}

func (t *tree[T]) InOrderIterator() Iterator[T] {
	return &inOrderIterator[T]{
		nodes: newStack[*node[T]](16),
		next:  t.root,
	}
}

func (it *inOrderIterator[T]) HasNext() bool {
	return it != nil && (it.next != nil || !it.nodes.isEmpty())
}

func (it *inOrderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	for ; it.next != nil; it.next = it.next.left {
		it.nodes.push(it.next)
	}
	cur, err := it.nodes.pop()
	if err != nil {
		var zero T
		return zero, err
	}
	it.next = cur.right
	return cur.value, nil
}

func collect[T any](it Iterator[T], capacity int) []T {
	values := make([]T, 0, capacity)
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		values = append(values, v)
	}
	return values
}

func (t *tree[T]) PreOrder() []T {
	return collect(t.Iterator(), t.Size())
}

func (t *tree[T]) InOrder() []T {
	return collect(t.InOrderIterator(), t.Size())
}

func (t *tree[T]) PostOrder() []T {
	values := make([]T, 0, t.Size())
	var recurse func(n *node[T])
	recurse = func(n *node[T]) {
		if n == nil {
			return
		}
		recurse(n.left)
		recurse(n.right)
		values = append(values, n.value)
	}
	recurse(t.root)
	return values
}

func (t *tree[T]) LevelOrder() []T {
	return nil
}
