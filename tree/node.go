package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. A Node owns its Left and Right subtrees
// exclusively: there are no parent pointers, so a subtree can be detached
// or replaced without fixing up back references.
//
// X and Y are layout coordinates. They are only meaningful after the
// owning tree has laid itself out.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]

	X, Y float64
}

func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) Min() *Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[T]) Max() *Node[T] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
