package binary

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/bstviz/chops"
	"go.lepak.sg/bstviz/tree"
	"go.lepak.sg/bstviz/tree/iterator"
	"golang.org/x/exp/constraints"
)

// ErrEmptyTree is returned by operations that need at least one node.
var ErrEmptyTree = errors.New("tree is empty")

// Traversal names a traversal order.
type Traversal int

const (
	TraversalLevelOrder Traversal = iota
	TraversalInOrder
	TraversalPreOrder
	TraversalPostOrder
)

func (tv Traversal) String() string {
	switch tv {
	case TraversalLevelOrder:
		return "levelorder"
	case TraversalInOrder:
		return "inorder"
	case TraversalPreOrder:
		return "preorder"
	case TraversalPostOrder:
		return "postorder"
	default:
		return "<invalid binary.Traversal>"
	}
}

// ParseTraversal parses the output of Traversal.String. The short
// forms "level", "in", "pre" and "post" are accepted too, and case
// and dashes are ignored.
func ParseTraversal(s string) (Traversal, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	switch norm {
	case "levelorder", "level":
		return TraversalLevelOrder, nil
	case "inorder", "in":
		return TraversalInOrder, nil
	case "preorder", "pre":
		return TraversalPreOrder, nil
	case "postorder", "post":
		return TraversalPostOrder, nil
	default:
		return 0, errors.Newf("unknown traversal %q", s)
	}
}

// Traverse runs the traversal named by tv. See LevelOrder etc.
func (t *Tree[T]) Traverse(tv Traversal, visit func(n *tree.Node[T])) []T {
	switch tv {
	case TraversalLevelOrder:
		return t.LevelOrder(visit)
	case TraversalInOrder:
		return t.InOrder(visit)
	case TraversalPreOrder:
		return t.PreOrder(visit)
	case TraversalPostOrder:
		return t.PostOrder(visit)
	default:
		panic("unhandled traversal " + tv.String())
	}
}

// RecordTraversal runs the traversal named by tv and records every
// visited key in visiting order. It returns ErrEmptyTree, and records
// nothing, if the tree has no nodes.
func (t *Tree[T]) RecordTraversal(tv Traversal) ([]T, error) {
	if t.root == nil {
		return nil, errors.Wrapf(ErrEmptyTree, "cannot traverse %s", tv)
	}

	return t.Traverse(tv, func(n *tree.Node[T]) {
		t.record(n.Key)
	}), nil
}

// LevelOrder visits every node breadth first: each node is visited
// and then its children are queued. visit may be nil.
// The visited keys are returned in order.
func (t *Tree[T]) LevelOrder(visit func(n *tree.Node[T])) []T {
	keys := make([]T, 0, t.size)

	i := iterator.NewLevelOrder(t.root)
	for i.Next() {
		if visit != nil {
			visit(i.Node())
		}
		keys = append(keys, i.Item())
	}

	return keys
}

// InOrder visits every node Left-Root-Right. visit may be nil.
// The visited keys are returned in order.
func (t *Tree[T]) InOrder(visit func(n *tree.Node[T])) []T {
	return visitInOrder(t.root, visit, make([]T, 0, t.size))
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T]), keys []T) []T {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrderStack which is not recursive
	if n == nil {
		return keys
	}

	keys = visitInOrder(n.Left, visit, keys)
	if visit != nil {
		visit(n)
	}
	keys = append(keys, n.Key)
	return visitInOrder(n.Right, visit, keys)
}

// PreOrder visits every node Root-Left-Right. visit may be nil.
// The visited keys are returned in order.
func (t *Tree[T]) PreOrder(visit func(n *tree.Node[T])) []T {
	return visitPreOrder(t.root, visit, make([]T, 0, t.size))
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T]), keys []T) []T {
	if n == nil {
		return keys
	}

	if visit != nil {
		visit(n)
	}
	keys = append(keys, n.Key)
	keys = visitPreOrder(n.Left, visit, keys)
	return visitPreOrder(n.Right, visit, keys)
}

// PostOrder visits every node Left-Right-Root. visit may be nil.
// The visited keys are returned in order.
func (t *Tree[T]) PostOrder(visit func(n *tree.Node[T])) []T {
	return visitPostOrder(t.root, visit, make([]T, 0, t.size))
}

func visitPostOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T]), keys []T) []T {
	if n == nil {
		return keys
	}

	keys = visitPostOrder(n.Left, visit, keys)
	keys = visitPostOrder(n.Right, visit, keys)
	if visit != nil {
		visit(n)
	}
	return append(keys, n.Key)
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.root, t.Height())
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}
