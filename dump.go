package bst

import (
	"fmt"
	"strings"
)

// String draws the tree rotated 90 degrees counter-clockwise: the right
// subtree above its parent, the left subtree below, one value per line
// indented by "| " per level.
func (t *tree[T]) String() string {
	var sb strings.Builder
	dumpNode(&sb, t.root, 0)
	return sb.String()
}

func dumpNode[T any](sb *strings.Builder, n *node[T], level int) {
	if n == nil {
		return
	}
	dumpNode(sb, n.right, level+1)
	sb.WriteString(strings.Repeat("| ", level))
	fmt.Fprintf(sb, "%v\n", n.value)
	dumpNode(sb, n.left, level+1)
}
