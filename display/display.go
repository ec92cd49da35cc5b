// Package display holds the renderer-facing view of a tree: point-in-time
// snapshots of node positions, the frames an animation emits, and the
// Renderer interface that consumes them.
//
// Snapshots are copies. Marking a NodeState highlighted or deleted never
// touches the live tree.
package display

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains returns true if p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// BoundingBox is the world-space extent of a laid out tree,
// padded by the node radius.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	Area                   float64
}

func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Layout controls how tree coordinates are assigned.
type Layout struct {
	// ScaleX is the horizontal distance between consecutive in-order nodes.
	ScaleX float64
	// ScaleY is the vertical distance between tree levels.
	ScaleY float64
	// NodeRadius pads the bounding box.
	NodeRadius float64
}

// DefaultLayout matches the canvas the visualizer was designed for.
var DefaultLayout = Layout{
	ScaleX:     28,
	ScaleY:     70,
	NodeRadius: 22,
}

type NodeState[T constraints.Ordered] struct {
	Key         T
	X, Y        float64
	Highlighted bool
	Deleted     bool
}

func (n NodeState[T]) Pos() Point {
	return Point{X: n.X, Y: n.Y}
}

// Edge joins a parent key to a child key.
type Edge[T constraints.Ordered] struct {
	From, To T
	// Left is true if To is the left child of From.
	Left bool
}

type Positions[T constraints.Ordered] struct {
	// Nodes are in level order, so Nodes[0] is the root.
	Nodes []NodeState[T]
	Edges []Edge[T]
}

type Snapshot[T constraints.Ordered] struct {
	Positions   Positions[T]
	BoundingBox BoundingBox
}

// Clone returns a deep copy of s. Clone of a nil Snapshot is nil.
func (s *Snapshot[T]) Clone() *Snapshot[T] {
	if s == nil {
		return nil
	}
	c := &Snapshot[T]{
		BoundingBox: s.BoundingBox,
	}
	if s.Positions.Nodes != nil {
		c.Positions.Nodes = make([]NodeState[T], len(s.Positions.Nodes))
		copy(c.Positions.Nodes, s.Positions.Nodes)
	}
	if s.Positions.Edges != nil {
		c.Positions.Edges = make([]Edge[T], len(s.Positions.Edges))
		copy(c.Positions.Edges, s.Positions.Edges)
	}
	return c
}

// Find returns the state of the node with key k, or nil.
// The returned pointer aliases s, so changes to it are visible
// in later clones.
func (s *Snapshot[T]) Find(k T) *NodeState[T] {
	if s == nil {
		return nil
	}
	for i := range s.Positions.Nodes {
		if s.Positions.Nodes[i].Key == k {
			return &s.Positions.Nodes[i]
		}
	}
	return nil
}

// Empty returns true if there is nothing to draw.
func (s *Snapshot[T]) Empty() bool {
	return s == nil || len(s.Positions.Nodes) == 0
}

// Focus describes a node the renderer should call out, for example
// the result of a find.
type Focus[T constraints.Ordered] struct {
	Key    T
	Height int
	Depth  int
}

// Frame is one render request.
type Frame[T constraints.Ordered] struct {
	State *Snapshot[T]
	// Target is where a camera should center, if set.
	Target *Point
	Focus  *Focus[T]
	// Recenter asks a camera to return to its home position.
	Recenter bool
	// View is the visible world rectangle. Renderers that
	// have a camera fill this in for the renderers they wrap.
	View *Rect
}

// Renderer paints frames. Render is called from the animation
// goroutine, and implementations must not call back into the driver.
type Renderer[T constraints.Ordered] interface {
	Render(f Frame[T]) error
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc[T constraints.Ordered] func(f Frame[T]) error

func (rf RendererFunc[T]) Render(f Frame[T]) error {
	return rf(f)
}

// Multi fans a frame out to several renderers. It stops at the first error.
type Multi[T constraints.Ordered] []Renderer[T]

func (m Multi[T]) Render(f Frame[T]) error {
	for _, r := range m {
		if err := r.Render(f); err != nil {
			return err
		}
	}
	return nil
}
