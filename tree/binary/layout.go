package binary

import (
	"go.lepak.sg/bstviz/display"
	"go.lepak.sg/bstviz/tree"
	"go.lepak.sg/bstviz/tree/iterator"
)

func (t *Tree[T]) scale() display.Layout {
	if t.layout == (display.Layout{}) {
		return display.DefaultLayout
	}
	return t.layout
}

// UpdateLayout recomputes node coordinates, the bounding box and the
// tree position. Every mutating operation calls it.
func (t *Tree[T]) UpdateLayout() {
	t.AssignNodePositions()
	t.UpdateBoundingBox()
	t.UpdatePosition()
}

// AssignNodePositions gives every node an x equal to its in-order
// index times ScaleX and a y equal to its depth times ScaleY.
// No two nodes share an x, and x increases with key.
func (t *Tree[T]) AssignNodePositions() {
	l := t.scale()
	x := 0

	var assign func(n *tree.Node[T], depth int)
	assign = func(n *tree.Node[T], depth int) {
		if n == nil {
			return
		}
		assign(n.Left, depth+1)
		n.X = float64(x) * l.ScaleX
		n.Y = float64(depth) * l.ScaleY
		x++
		assign(n.Right, depth+1)
	}

	assign(t.root, 0)
}

// UpdateBoundingBox recomputes the extents of the laid out tree from
// its leftmost, rightmost, top (root) and deepest nodes, padded by
// the node radius. An empty tree has a zero bounding box.
func (t *Tree[T]) UpdateBoundingBox() {
	if t.root == nil {
		t.bounds = display.BoundingBox{}
		return
	}

	r := t.scale().NodeRadius
	leftMost, rightMost, top := t.root.Min(), t.root.Max(), t.root

	// the last node in level order is on the deepest level
	var bottom *tree.Node[T]
	i := iterator.NewLevelOrder(t.root)
	for i.Next() {
		bottom = i.Node()
	}

	b := display.BoundingBox{
		MinX: leftMost.X - r,
		MinY: top.Y - r,
		MaxX: rightMost.X + r,
		MaxY: bottom.Y + r,
	}
	b.Area = b.Width() * b.Height()
	t.bounds = b
}

// UpdatePosition sets the tree's nominal position to its root's.
func (t *Tree[T]) UpdatePosition() {
	if t.root == nil {
		t.pos = display.Point{}
		return
	}
	t.pos = display.Point{X: t.root.X, Y: t.root.Y}
}

// Bounds returns the bounding box computed by the last UpdateLayout.
func (t *Tree[T]) Bounds() display.BoundingBox {
	return t.bounds
}

// Position returns the tree's nominal position, which is its root's.
func (t *Tree[T]) Position() display.Point {
	return t.pos
}

// Snapshot returns a copy of the current layout for rendering.
// Nodes are listed in level order.
func (t *Tree[T]) Snapshot() *display.Snapshot[T] {
	s := &display.Snapshot[T]{
		BoundingBox: t.bounds,
	}
	if t.root == nil {
		return s
	}

	s.Positions.Nodes = make([]display.NodeState[T], 0, t.size)
	t.LevelOrder(func(n *tree.Node[T]) {
		s.Positions.Nodes = append(s.Positions.Nodes, display.NodeState[T]{
			Key: n.Key,
			X:   n.X,
			Y:   n.Y,
		})
		if n.Left != nil {
			s.Positions.Edges = append(s.Positions.Edges,
				display.Edge[T]{From: n.Key, To: n.Left.Key, Left: true})
		}
		if n.Right != nil {
			s.Positions.Edges = append(s.Positions.Edges,
				display.Edge[T]{From: n.Key, To: n.Right.Key})
		}
	})

	return s
}
