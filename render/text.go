// Package render has display.Renderer implementations for terminals
// and files, plus a camera-aware wrapper that fills in Frame.View.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// Text draws every frame as a block of text, one row per tree level
// and one column per in-order position.
// Highlighted keys are drawn as *k* and deleted keys as ~k~.
type Text[T constraints.Ordered] struct {
	mu     sync.Mutex
	w      io.Writer
	layout display.Layout
	n      int
}

func NewText[T constraints.Ordered](w io.Writer, layout display.Layout) *Text[T] {
	return &Text[T]{w: w, layout: layout}
}

func (r *Text[T]) Render(f display.Frame[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++

	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d", r.n)
	if f.Target != nil {
		fmt.Fprintf(&sb, " target %s", *f.Target)
	}
	if f.Recenter {
		sb.WriteString(" recenter")
	}
	sb.WriteByte('\n')

	sb.WriteString(Draw(f.State, r.layout, f.View))

	if f.Focus != nil {
		fmt.Fprintf(&sb, "found %v: height %d, depth %d\n", f.Focus.Key, f.Focus.Height, f.Focus.Depth)
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return errors.Wrapf(err, "writing frame %d", r.n)
	}
	return nil
}

func label[T constraints.Ordered](n display.NodeState[T]) string {
	switch {
	case n.Deleted:
		return fmt.Sprintf("~%v~", n.Key)
	case n.Highlighted:
		return fmt.Sprintf("*%v*", n.Key)
	default:
		return fmt.Sprintf(" %v ", n.Key)
	}
}

// Draw lays out the nodes of s on a character grid. Only nodes inside
// view are drawn, unless view is nil.
func Draw[T constraints.Ordered](s *display.Snapshot[T], l display.Layout, view *display.Rect) string {
	if s.Empty() {
		return "(empty)\n"
	}
	if l.ScaleX == 0 || l.ScaleY == 0 {
		l = display.DefaultLayout
	}

	type cell struct {
		row, col int
		text     string
	}

	var cells []cell
	minRow, minCol := math.MaxInt, math.MaxInt
	maxRow, maxCol := math.MinInt, math.MinInt
	width := 0

	for _, n := range s.Positions.Nodes {
		if view != nil && !view.Contains(n.Pos()) {
			continue
		}

		c := cell{
			row:  int(math.Round(n.Y / l.ScaleY)),
			col:  int(math.Round(n.X / l.ScaleX)),
			text: label(n),
		}
		cells = append(cells, c)

		if c.row < minRow {
			minRow = c.row
		}
		if c.row > maxRow {
			maxRow = c.row
		}
		if c.col < minCol {
			minCol = c.col
		}
		if c.col > maxCol {
			maxCol = c.col
		}
		if len(c.text) > width {
			width = len(c.text)
		}
	}

	if len(cells) == 0 {
		return "(nothing in view)\n"
	}

	grid := make([][]string, maxRow-minRow+1)
	for i := range grid {
		grid[i] = make([]string, maxCol-minCol+1)
	}
	for _, c := range cells {
		grid[c.row-minRow][c.col-minCol] = c.text
	}

	var sb strings.Builder
	for _, row := range grid {
		var line strings.Builder
		for _, text := range row {
			fmt.Fprintf(&line, "%*s", width, text)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
