package binary

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bstviz/tree"
)

// assertSearchTree checks the search tree invariant on every node, and
// that no node is shared between two parents.
func assertSearchTree(t *testing.T, tr *Tree[int]) {
	t.Helper()

	seen := make(map[*tree.Node[int]]struct{})
	var check func(n *tree.Node[int], lo, hi *int)
	check = func(n *tree.Node[int], lo, hi *int) {
		if n == nil {
			return
		}
		_, dup := seen[n]
		require.False(t, dup, "node %d reachable twice", n.Key)
		seen[n] = struct{}{}

		if lo != nil {
			require.Greater(t, n.Key, *lo)
		}
		if hi != nil {
			require.Less(t, n.Key, *hi)
		}
		check(n.Left, lo, &n.Key)
		check(n.Right, &n.Key, hi)
	}
	check(tr.root, nil, nil)

	require.Equal(t, tr.Len(), len(seen), "size does not match node count")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		keys    []int
		inOrder []int
		height  int
	}{
		{
			name:    "empty",
			inOrder: []int{},
			height:  -1,
		},
		{
			name:    "one",
			keys:    []int{42},
			inOrder: []int{42},
			height:  0,
		},
		{
			name:    "unsorted",
			keys:    []int{9, 1, 5, 3, 7, 8, 4},
			inOrder: []int{1, 3, 4, 5, 7, 8, 9},
			height:  2,
		},
		{
			name:    "duplicates",
			keys:    []int{3, 1, 3, 2, 1},
			inOrder: []int{1, 2, 3},
			height:  1,
		},
		{
			name:    "eight",
			keys:    []int{1, 2, 3, 4, 5, 6, 7, 8},
			inOrder: []int{1, 2, 3, 4, 5, 6, 7, 8},
			height:  3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]int(nil), tt.keys...)

			tr := NewFrom(tt.keys)

			assert.Equal(t, orig, tt.keys, "keys were mutated")
			assert.Equal(t, tt.inOrder, tr.InOrder(nil))
			assert.Equal(t, tt.height, tr.Height())
			assert.Equal(t, tr.IdealHeight(), tr.Height())
			assert.Equal(t, 0, tr.RecordLen())
			assertSearchTree(t, tr)
		})
	}
}

func TestBuild_SevenKeys(t *testing.T) {
	tr := NewFrom([]int{1, 3, 4, 5, 7, 8, 9})

	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 9}, tr.LevelOrder(nil))
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, tr.PreOrder(nil))
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, tr.PostOrder(nil))
}

func TestBuild_MinimalHeight(t *testing.T) {
	for n := 1; n <= 130; n++ {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i * 2
		}

		tr := NewFrom(keys)
		require.Equal(t, bits.Len(uint(n))-1, tr.Height(), "n=%d", n)
		require.True(t, tr.Balanced(), "n=%d", n)
	}
}

func TestRebalance(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x5eed))

	for i := 0; i < 20; i++ {
		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			tr := BuildRandom(50, int64(seedrd.Uint64()))
			before := tr.InOrder(nil)

			tr.Rebalance()

			assert.Equal(t, before, tr.InOrder(nil))
			assert.Equal(t, 50, tr.Len())
			assert.Equal(t, tr.IdealHeight(), tr.Height())
			assertSearchTree(t, tr)
		})
	}
}

func TestRebalance_Empty(t *testing.T) {
	tr := New[int]()
	tr.Rebalance()

	assert.Nil(t, tr.Root())
	assert.Equal(t, -1, tr.Height())
}

func TestRandomInsertDelete(t *testing.T) {
	rd := rand.New(rand.NewSource(0xb57))
	tr := New[int]()
	present := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		k := rd.Intn(200)
		if rd.Intn(3) == 0 {
			assert.Equal(t, present[k], tr.Delete(k), "delete %d", k)
			delete(present, k)
		} else {
			assert.Equal(t, !present[k], tr.Insert(k), "insert %d", k)
			present[k] = true
		}
		tr.ClearRecords()
	}

	assertSearchTree(t, tr)
	assert.Equal(t, len(present), tr.Len())
	for k := range present {
		assert.True(t, tr.Contains(k), "missing %d", k)
	}
}

func TestRandomKeys(t *testing.T) {
	keys, err := RandomKeys(20, 100, 1)
	require.NoError(t, err)
	assert.Len(t, keys, 20)

	seen := make(map[int]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %d", k)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 100)
		seen[k] = true
	}

	again, err := RandomKeys(20, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, keys, again, "same seed gave different keys")

	_, err = RandomKeys(101, 100, 1)
	assert.Error(t, err)
	_, err = RandomKeys(-1, 100, 1)
	assert.Error(t, err)
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts := BuildRandomBalanced(31, 7)

	assert.True(t, tr.Balanced())
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Equal(t, 31, tr.Len())
	assert.Equal(t, 0, tr.RecordLen())
	assertSearchTree(t, tr)
}

func TestBuildFromTraversals(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 100
	const size = 100

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		tr := BuildRandom(size, seed)
		origStr := tr.String()

		inOrder, preOrder := tr.InOrder(nil), tr.PreOrder(nil)
		require.Equal(t, len(inOrder), len(preOrder), "different traversal length")

		origInOrder, origPreOrder := make([]int, len(inOrder)), make([]int, len(preOrder))
		copy(origInOrder, inOrder)
		copy(origPreOrder, preOrder)

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			trNew, err := BuildFromTraversals(preOrder, inOrder)
			require.NoError(t, err)
			assert.Equal(t, origStr, trNew.String(), "different tree was recreated")
			assert.Equal(t, size, trNew.Len())
			assert.Equal(t, origInOrder, inOrder, "inOrder was mutated")
			assert.Equal(t, origPreOrder, preOrder, "preOrder was mutated")
		})
	}
}

func TestBuildFromTraversals_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pre, in []int
	}{
		{
			name: "empty",
		},
		{
			name: "length mismatch",
			pre:  []int{2, 1},
			in:   []int{1, 2, 3},
		},
		{
			name: "in not sorted",
			pre:  []int{2, 1, 3},
			in:   []int{1, 3, 2},
		},
		{
			name: "duplicate in pre",
			pre:  []int{2, 2, 3},
			in:   []int{1, 2, 3},
		},
		{
			name: "key missing from in",
			pre:  []int{2, 1, 4},
			in:   []int{1, 2, 3},
		},
		{
			name: "not the same tree",
			pre:  []int{2, 3, 1},
			in:   []int{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := BuildFromTraversals(tt.pre, tt.in)
			assert.Error(t, err)
			assert.Nil(t, tr)
		})
	}
}

func TestShape(t *testing.T) {
	tr := insertAll([]int{5, 3, 8, 1, 4, 9, 10})

	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, 2, tr.IdealHeight())
	assert.Equal(t, 0, tr.Depth(5))
	assert.Equal(t, 2, tr.Depth(4))
	assert.Equal(t, 3, tr.Depth(10))
	assert.Equal(t, -1, tr.Depth(6))
	assert.Equal(t, 1, tr.DepthOf(tr.root.Right))
	assert.Equal(t, -1, tr.DepthOf(nil))
	assert.Equal(t, 1, tr.HeightOf(tr.root.Left))
	assert.True(t, tr.Balanced())

	lopsided := insertAll([]int{1, 2, 3})
	assert.False(t, lopsided.Balanced())
	assert.Equal(t, 2, lopsided.Height())

	assert.True(t, New[int]().Balanced())
	assert.Equal(t, -1, New[int]().IdealHeight())
}

var trForBench *Tree[int]

func BenchmarkBuildFromTraversals(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		tr := BuildRandom(size, int64(seedrd.Uint64()))
		inOrder, preOrder := tr.InOrder(nil), tr.PreOrder(nil)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trForBench, _ = BuildFromTraversals(preOrder, inOrder)
			}
		})
	}
}

func BenchmarkRebalance(b *testing.B) {
	for _, size := range []int{100, 1000} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			tr := BuildRandom(size, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr.Rebalance()
			}
		})
	}
}
