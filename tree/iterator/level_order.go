package iterator

import (
	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*LevelOrder[int])(nil)

// LevelOrder is a breadth-first iterator over a binary tree.
// Each call to Next dequeues one node and enqueues its children
// (left, then right), so nodes are yielded level by level and
// left to right within a level.
type LevelOrder[T constraints.Ordered] struct {
	queue []*tree.Node[T]
	at    *tree.Node[T]
}

// NewLevelOrder returns a new LevelOrder iterator over the tree
// rooted at root.
func NewLevelOrder[T constraints.Ordered](root *tree.Node[T]) *LevelOrder[T] {
	i := &LevelOrder[T]{}
	if root != nil {
		i.queue = append(i.queue, root)
	}
	return i
}

func (i *LevelOrder[T]) Next() bool {
	if i == nil || len(i.queue) == 0 {
		if i != nil {
			i.at = nil
		}
		return false
	}

	i.at = i.queue[0]
	// don't keep the visited node alive through the backing array
	i.queue[0] = nil
	i.queue = i.queue[1:]

	if i.at.Left != nil {
		i.queue = append(i.queue, i.at.Left)
	}
	if i.at.Right != nil {
		i.queue = append(i.queue, i.at.Right)
	}

	return true
}

func (i *LevelOrder[T]) Item() T {
	return i.at.Key
}

func (i *LevelOrder[T]) Node() *tree.Node[T] {
	return i.at
}
