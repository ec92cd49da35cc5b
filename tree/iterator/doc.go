// Package iterator provides tree iterators for use
// by tree implementations. Nodes carry no parent pointers,
// so every iterator keeps its own frontier (a stack or a queue).
package iterator

import (
	"go.lepak.sg/bstviz/chops"
	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
)

// Iterator walks a tree one node at a time. Call Next before every
// Item or Node, including the first. Once Next returns false, Item and
// Node must not be called. Abandoning an iterator part way is fine:
//
//	it := iterator.NewLevelOrder(root)
//	for it.Next() {
//		visit(it.Node())
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
	Node() *tree.Node[T]
}

// Trees hand these to chops.CoIterate.
var _ chops.Iterator[int] = (Iterator[int])(nil)
