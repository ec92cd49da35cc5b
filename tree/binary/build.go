package binary

import (
	"fmt"
	"math/rand"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Build replaces the whole tree with a minimal-height tree holding
// keys. Duplicate keys are dropped and keys does not need to be sorted.
// keys is not modified.
func (t *Tree[T]) Build(keys []T) {
	sorted := sortedUnique(keys)
	t.root = buildBalanced(sorted, 0, len(sorted)-1)
	t.size = len(sorted)
	t.UpdateLayout()
}

// Rebalance rebuilds the tree with minimal height. The in-order
// sequence of keys is unchanged.
func (t *Tree[T]) Rebalance() {
	keys := t.InOrder(nil)
	t.root = buildBalanced(keys, 0, len(keys)-1)
	t.UpdateLayout()
}

func sortedUnique[T constraints.Ordered](keys []T) []T {
	s := slices.Clone(keys)
	slices.Sort(s)
	return slices.Compact(s)
}

// buildBalanced builds a subtree from sorted[start:end+1] by rooting
// it at the middle element and recursing into both halves.
func buildBalanced[T constraints.Ordered](sorted []T, start, end int) *tree.Node[T] {
	if start > end {
		return nil
	}

	mid := (start + end) / 2
	n := tree.NodeOf(sorted[mid])
	n.Left = buildBalanced(sorted, start, mid-1)
	n.Right = buildBalanced(sorted, mid+1, end)

	return n
}

// RandomKeys returns n distinct keys in the range [0, max), in
// random order. The seed makes the result repeatable.
func RandomKeys(n, max int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, errors.Newf("cannot pick %d keys", n)
	}
	if n > max {
		return nil, errors.Newf("cannot pick %d distinct keys below %d", n, max)
	}

	rd := rand.New(rand.NewSource(seed))
	return rd.Perm(max)[:n], nil
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order,
// so the tree is usually not balanced.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64, opts ...Option) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	tr := New[int](opts...)

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for _, n := range nodes {
		tr.Insert(n)
	}
	tr.ClearRecords()

	return tr
}

// BuildRandomBalanced is like BuildRandom, but keeps shuffling
// until the insertion order happens to produce a Balanced tree.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
func BuildRandomBalanced(num int, seed int64, opts ...Option) (*Tree[int], int) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = New[int](opts...)
		for _, n := range nodes {
			tr.Insert(n)
		}
		tr.ClearRecords()
	}

	return tr, attempts
}

// BuildFromTraversals recursively rebuilds a binary search tree
// from its pre- and in-order traversals. Since the result must be a
// search tree, in must be strictly increasing.
func BuildFromTraversals[S ~[]T, T constraints.Ordered](
	pre, in S, opts ...Option) (tr *Tree[T], err error) {
	// Recursive method. Time O(N log N) Space O(N) (stack frames)
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.Newf("pre- and in-order traversals have different lengths (%d != %d)",
			len(pre), len(in))
	}

	for i := 1; i < len(in); i++ {
		if in[i-1] >= in[i] {
			return nil, errors.Newf("in-order traversal is not strictly increasing at index %d", i)
		}
	}

	seen := make(map[T]struct{}, len(pre))
	for _, k := range pre {
		if _, ok := seen[k]; ok {
			return nil, errors.Newf("duplicated key %v in pre-order traversal", k)
		}
		seen[k] = struct{}{}
	}

	defer func() {
		if r := recover(); r != nil {
			tr, err = nil, errors.Newf("traversals do not describe the same tree: %v", r)
		}
	}()

	tr = New[T](opts...)
	tr.root = buildFromTraversalsVisit(pre, in)
	tr.size = len(in)
	tr.UpdateLayout()

	return tr, nil
}

func buildFromTraversalsVisit[S ~[]T, T constraints.Ordered](pre, in S) *tree.Node[T] {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil
	}

	x := pre[0]
	// in is sorted, so the root's position can be found by bisection
	xi, ok := slices.BinarySearch(in, x)
	if !ok {
		panic(fmt.Sprintf("key %v in pre-order traversal not found in in-order traversal", x))
	}

	inleft, inright := in[0:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x)
	n.Left = buildFromTraversalsVisit(preleft, inleft)
	n.Right = buildFromTraversalsVisit(preright, inright)

	return n
}
