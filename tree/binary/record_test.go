package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bstviz/display"
	"go.uber.org/goleak"
)

func TestRecords(t *testing.T) {
	tr := NewFrom([]int{5, 3, 8, 1, 4, 7, 9})
	require.NotNil(t, tr.Find(4))
	require.Equal(t, 3, tr.RecordLen())

	k, ok := tr.LastRecord()
	assert.True(t, ok)
	assert.Equal(t, 4, k)

	k, ok = tr.NextRecord()
	assert.True(t, ok)
	assert.Equal(t, 5, k)

	assert.Equal(t, []int{3}, tr.Records())

	tr.ClearRecords()
	_, ok = tr.NextRecord()
	assert.False(t, ok)
	_, ok = tr.LastRecord()
	assert.False(t, ok)
	assert.Nil(t, tr.Records())
}

func TestRecords_CopyIsolated(t *testing.T) {
	tr := NewFrom([]int{2, 1, 3})
	tr.Find(1)

	recs := tr.Records()
	recs[0] = 100

	k, _ := tr.NextRecord()
	assert.Equal(t, 2, k)
}

func TestParseTraversal(t *testing.T) {
	tests := []struct {
		in   string
		want Traversal
		err  bool
	}{
		{in: "inorder", want: TraversalInOrder},
		{in: "In-Order", want: TraversalInOrder},
		{in: "pre", want: TraversalPreOrder},
		{in: " postorder ", want: TraversalPostOrder},
		{in: "level", want: TraversalLevelOrder},
		{in: "sideways", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTraversal(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseTraversal(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestRecordTraversal_Empty(t *testing.T) {
	tr := New[int]()

	keys, err := tr.RecordTraversal(TraversalPreOrder)
	assert.ErrorIs(t, err, ErrEmptyTree)
	assert.Nil(t, keys)
	assert.Equal(t, 0, tr.RecordLen())
}

func TestInOrderIterator(t *testing.T) {
	tr := BuildRandom(64, 3)
	want := tr.InOrder(nil)

	var got []int
	i := tr.InOrderIterator()
	for i.Next() {
		got = append(got, i.Item())
	}
	assert.Equal(t, want, got)
}

func TestInOrderCoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := BuildRandom(64, 4)

	var got []int
	co := tr.InOrderCoroutine()
	for k := range co.Items() {
		got = append(got, k)
		if k == 31 {
			co.Stop()
			break
		}
	}

	want := make([]int, 32)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestLayout(t *testing.T) {
	l := display.Layout{ScaleX: 10, ScaleY: 20, NodeRadius: 5}
	tr := New[int](WithLayout(l))
	for _, k := range []int{2, 1, 3} {
		tr.Insert(k)
	}

	s := tr.Snapshot()
	require.Len(t, s.Positions.Nodes, 3)
	assert.Equal(t, display.NodeState[int]{Key: 2, X: 10, Y: 0}, s.Positions.Nodes[0])
	assert.Equal(t, display.NodeState[int]{Key: 1, X: 0, Y: 20}, s.Positions.Nodes[1])
	assert.Equal(t, display.NodeState[int]{Key: 3, X: 20, Y: 20}, s.Positions.Nodes[2])
	assert.Equal(t, []display.Edge[int]{
		{From: 2, To: 1, Left: true},
		{From: 2, To: 3},
	}, s.Positions.Edges)

	assert.Equal(t, display.BoundingBox{MinX: -5, MinY: -5, MaxX: 25, MaxY: 25, Area: 900}, tr.Bounds())
	assert.Equal(t, display.Point{X: 10, Y: 0}, tr.Position())

	// the snapshot is a copy
	s.Positions.Nodes[0].Highlighted = true
	assert.False(t, tr.Snapshot().Positions.Nodes[0].Highlighted)
}

func TestLayout_ZeroTreeUsesDefault(t *testing.T) {
	var tr Tree[int]
	tr.Insert(1)
	tr.Insert(2)

	assert.Equal(t, display.DefaultLayout.ScaleX, tr.Root().Right.X)
	assert.Equal(t, display.DefaultLayout.ScaleY, tr.Root().Right.Y)
}

func TestLayout_UniqueX(t *testing.T) {
	tr := BuildRandom(100, 9)

	s := tr.Snapshot()
	xs := make(map[float64]int)
	prev := -1.0
	for _, n := range s.Positions.Nodes {
		if other, ok := xs[n.X]; ok {
			t.Fatalf("nodes %d and %d share x=%g", other, n.Key, n.X)
		}
		xs[n.X] = n.Key
	}
	for _, k := range tr.InOrder(nil) {
		n := s.Find(k)
		require.NotNil(t, n)
		assert.Greater(t, n.X, prev)
		prev = n.X
	}
}
