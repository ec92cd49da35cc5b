package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/bstviz/display"
	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree that can lay itself out for drawing
// and records the keys it touches so that an animation can replay
// them. It is not safe for concurrent use.
//
// The zero Tree may be used immediately, with display.DefaultLayout.
// Tree should not be passed around as a value (ie. just use &Tree{}
// or New when creating one).
//
// This tree is not self-balancing. Call Rebalance to rebuild it
// with minimal height.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - records is empty except between a record-producing operation
//     (Insert, Find, Delete, RecordTraversal) and whoever consumes it
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	root *tree.Node[T]
	size int

	layout display.Layout
	pos    display.Point
	bounds display.BoundingBox

	records []T
}

type options struct {
	layout display.Layout
}

// Option configures a Tree created with New.
type Option func(*options)

// WithLayout sets the layout scale. The default is display.DefaultLayout.
func WithLayout(l display.Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// New creates an empty tree.
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	o := options{layout: display.DefaultLayout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[T]{layout: o.layout}
}

// NewFrom creates a tree and builds it from keys, see Build.
func NewFrom[T constraints.Ordered](keys []T, opts ...Option) *Tree[T] {
	t := New[T](opts...)
	t.Build(keys)
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Root returns the root node, or nil if the tree is empty.
// Callers must not modify the tree through it.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.root
}

// Clear removes every node and any pending records.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.ClearRecords()
	t.UpdateLayout()
}

// Contains searches for k in the tree and returns true if it was found.
// Unlike Find, Contains does not record the search path.
func (t *Tree[T]) Contains(k T) bool {
	return t.search(k) != nil
}

func (t *Tree[T]) search(k T) *tree.Node[T] {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Find returns the node holding k, or nil if k is not in the tree.
// Every node on the search path is recorded, including the
// found node itself.
func (t *Tree[T]) Find(k T) *tree.Node[T] {
	return t.find(t.root, k)
}

func (t *Tree[T]) find(n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return nil
	}

	t.record(n.Key)

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		return t.find(n.Left, k)
	case tree.Greater:
		return t.find(n.Right, k)
	case tree.Equal:
		return n
	default:
		panic("unreachable")
	}
}

// Insert inserts k into the binary tree as a new leaf.
// If k is already in the tree, Insert returns false and the
// tree is unchanged.
// The keys of the existing nodes visited on the way down are recorded.
func (t *Tree[T]) Insert(k T) bool {
	var inserted bool
	t.root = t.insert(t.root, k, &inserted)

	if inserted {
		t.size++
		t.UpdateLayout()
	}

	return inserted
}

func (t *Tree[T]) insert(n *tree.Node[T], k T, inserted *bool) *tree.Node[T] {
	if n == nil {
		*inserted = true
		return tree.NodeOf(k)
	}

	t.record(n.Key)

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left = t.insert(n.Left, k, inserted)
	case tree.Greater:
		n.Right = t.insert(n.Right, k, inserted)
	case tree.Equal:
		// duplicate
	default:
		panic("unreachable")
	}

	return n
}

// Delete removes k from the tree and returns true if it was present.
//
// A node with two children takes the key of its in-order successor
// (the minimum of its right subtree), and the successor is then
// deleted from the right subtree instead.
//
// The search path is recorded, followed by the walk down to the
// successor if there was one.
func (t *Tree[T]) Delete(k T) bool {
	var deleted bool
	t.root = t.delete(t.root, k, true, &deleted)

	if deleted {
		t.size--
		t.UpdateLayout()
	}

	return deleted
}

func (t *Tree[T]) delete(n *tree.Node[T], k T, record bool, deleted *bool) *tree.Node[T] {
	if n == nil {
		return nil
	}

	if record {
		t.record(n.Key)
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left = t.delete(n.Left, k, record, deleted)
		return n
	case tree.Greater:
		n.Right = t.delete(n.Right, k, record, deleted)
		return n
	case tree.Equal:
		// this is the node to be deleted
	default:
		panic("unreachable")
	}

	*deleted = true

	// leaf, or a single child takes our place
	if n.Left == nil {
		return n.Right
	}
	if n.Right == nil {
		return n.Left
	}

	// two children
	succ := n.Right
	if record {
		t.record(succ.Key)
	}
	for succ.Left != nil {
		succ = succ.Left
		if record {
			t.record(succ.Key)
		}
	}

	n.Key = succ.Key
	var ignored bool
	n.Right = t.delete(n.Right, succ.Key, false, &ignored)

	return n
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
