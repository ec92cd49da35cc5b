package binary

import (
	"math/bits"

	"go.lepak.sg/bstviz/tree"
)

// Height returns the number of edges on the longest path from the
// root to a leaf. An empty tree has height -1, a single node has
// height 0.
func (t *Tree[T]) Height() int {
	return t.HeightOf(t.root)
}

// HeightOf returns the height of the subtree rooted at n.
// The height of a nil subtree is -1.
func (t *Tree[T]) HeightOf(n *tree.Node[T]) int {
	if n == nil {
		return -1
	}

	left, right := t.HeightOf(n.Left), t.HeightOf(n.Right)
	if left > right {
		return left + 1
	}
	return right + 1
}

// IdealHeight returns the smallest height any binary tree holding
// Len() nodes can have, floor(log2(Len())). It is -1 for an empty tree.
func (t *Tree[T]) IdealHeight() int {
	return bits.Len(uint(t.size)) - 1
}

// Depth returns the number of edges between the root and the node
// holding k, or -1 if k is not in the tree.
func (t *Tree[T]) Depth(k T) int {
	n, depth := t.root, 0

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return depth
		default:
			panic("unreachable")
		}
		depth++
	}

	return -1
}

// DepthOf is Depth for the key held by n. A nil n has depth -1.
func (t *Tree[T]) DepthOf(n *tree.Node[T]) int {
	if n == nil {
		return -1
	}
	return t.Depth(n.Key)
}

// Balanced returns true if the heights of the root's two subtrees
// differ by at most one. Only the root is checked, so a tree can be
// Balanced while a deeper subtree is lopsided. An empty tree is Balanced.
func (t *Tree[T]) Balanced() bool {
	if t.root == nil {
		return true
	}

	diff := t.HeightOf(t.root.Left) - t.HeightOf(t.root.Right)
	return diff >= -1 && diff <= 1
}
