package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/emicklei/dot"
	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// DOT writes every frame as a Graphviz digraph. Node positions are
// pinned, so `neato -n` draws the tree the way it was laid out.
type DOT[T constraints.Ordered] struct {
	mu sync.Mutex
	w  io.Writer
}

func NewDOT[T constraints.Ordered](w io.Writer) *DOT[T] {
	return &DOT[T]{w: w}
}

func (r *DOT[T]) Render(f display.Frame[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.w, Graph(f).String()+"\n"); err != nil {
		return errors.Wrap(err, "writing graph")
	}
	return nil
}

// Graph converts a frame into a graph. Graphviz has y pointing up,
// so y is negated.
func Graph[T constraints.Ordered](f display.Frame[T]) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("splines", "false")

	if f.State.Empty() {
		return g
	}

	nodes := make(map[T]dot.Node, len(f.State.Positions.Nodes))
	for _, n := range f.State.Positions.Nodes {
		id := fmt.Sprint(n.Key)
		dn := g.Node(id).
			Label(id).
			Attr("shape", "circle").
			Attr("pos", fmt.Sprintf("%g,%g!", n.X, -n.Y))

		switch {
		case n.Deleted:
			dn.Attr("style", "dashed").Attr("color", "red")
		case n.Highlighted:
			dn.Attr("style", "filled").Attr("fillcolor", "orange")
		}

		if f.Target != nil && n.Pos() == *f.Target {
			dn.Attr("penwidth", "3")
		}
		if f.Focus != nil && f.Focus.Key == n.Key {
			dn.Attr("xlabel", fmt.Sprintf("h=%d d=%d", f.Focus.Height, f.Focus.Depth))
		}

		nodes[n.Key] = dn
	}

	for _, e := range f.State.Positions.Edges {
		side := "R"
		if e.Left {
			side = "L"
		}
		g.Edge(nodes[e.From], nodes[e.To]).Attr("label", side)
	}

	return g
}
