package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// Table writes every frame as a table of nodes in level order.
type Table[T constraints.Ordered] struct {
	mu sync.Mutex
	w  io.Writer
	n  int
}

func NewTable[T constraints.Ordered](w io.Writer) *Table[T] {
	return &Table[T]{w: w}
}

func (r *Table[T]) Render(f display.Frame[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "frame %d\n", r.n)

	if f.State.Empty() {
		buf.WriteString("(empty)\n")
	} else {
		tbl := tablewriter.NewWriter(&buf)
		tbl.SetHeader([]string{"Key", "X", "Y", "State", "Target"})
		for _, n := range f.State.Positions.Nodes {
			tbl.Append(row(n, f))
		}
		tbl.Render()
	}

	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "writing frame %d", r.n)
	}
	return nil
}

func row[T constraints.Ordered](n display.NodeState[T], f display.Frame[T]) []string {
	state := ""
	switch {
	case n.Deleted:
		state = "deleted"
	case n.Highlighted:
		state = "highlighted"
	}
	if f.Focus != nil && f.Focus.Key == n.Key {
		state = fmt.Sprintf("found (h=%d d=%d)", f.Focus.Height, f.Focus.Depth)
	}

	target := ""
	if f.Target != nil && n.Pos() == *f.Target {
		target = "*"
	}

	return []string{
		fmt.Sprint(n.Key),
		fmt.Sprintf("%g", n.X),
		fmt.Sprintf("%g", n.Y),
		state,
		target,
	}
}
