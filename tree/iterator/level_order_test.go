package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bstviz/tree"
)

func TestLevelOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		want   []int
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return tree.NodeOf(1)
			},
			want: []int{1},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			want:   []int{4, 2, 6, 1, 3, 5, 7},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			want:   []int{8, 5, 9, 1, 7, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewLevelOrder(tt.create())
			assert.Equal(t, tt.want, drain(t, i))
			assert.False(t, i.Next(), "exhausted")
		})
	}
}
