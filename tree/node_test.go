package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int] {
	return &Node[int]{
		Left: &Node[int]{
			Left: &Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int]{
			Left: &Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int]{
				Key: 7,
			},
		},
	}
}

func TestNode_MinMax(t *testing.T) {
	tr := newCompleteTree_2Tall()

	assert.Equal(t, 1, tr.Min().Key)
	assert.Equal(t, 7, tr.Max().Key)
	assert.Equal(t, 5, tr.Right.Min().Key)
	assert.Equal(t, 3, tr.Left.Max().Key)

	leaf := NodeOf(9)
	assert.Same(t, leaf, leaf.Min())
	assert.Same(t, leaf, leaf.Max())
}

func TestNode_IsLeaf(t *testing.T) {
	tr := newCompleteTree_2Tall()

	assert.False(t, tr.IsLeaf())
	assert.False(t, tr.Left.IsLeaf())
	assert.True(t, tr.Left.Left.IsLeaf())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		l, r int
		want Order
	}{
		{"less", 1, 2, Less},
		{"equal", 2, 2, Equal},
		{"greater", 3, 2, Greater},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.l, tt.r))
		})
	}

	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "<invalid tree.Order>", Order(5).String())
}
