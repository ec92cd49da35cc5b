package main

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/bstviz/animate"
	"go.lepak.sg/bstviz/app"
	"go.lepak.sg/bstviz/tree/binary"
)

// op is one step of a play script, written name[:arg] on the command line.
type op struct {
	name string
	keys []int
	n    int
	tv   binary.Traversal
}

func (o op) String() string {
	switch o.name {
	case "insert", "find", "delete", "random":
		return o.name + ":" + strconv.Itoa(o.n)
	case "traverse":
		return o.name + ":" + o.tv.String()
	case "build":
		parts := make([]string, len(o.keys))
		for i, k := range o.keys {
			parts[i] = strconv.Itoa(k)
		}
		return o.name + ":" + strings.Join(parts, ",")
	default:
		return o.name
	}
}

// parseInts parses keys separated by commas or spaces.
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad key %q", f)
		}
		out = append(out, k)
	}
	return out, nil
}

func parseOp(s string) (op, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	o := op{name: strings.ToLower(name)}

	var err error
	switch o.name {
	case "insert", "find", "delete", "random":
		if !hasArg {
			return op{}, errors.Newf("%s needs a number, like %s:5", o.name, o.name)
		}
		o.n, err = strconv.Atoi(arg)
		if err != nil {
			return op{}, errors.Wrapf(err, "bad number in %q", s)
		}
		if o.name == "random" && o.n < 0 {
			return op{}, errors.Newf("cannot create %d nodes", o.n)
		}
	case "traverse":
		if !hasArg {
			return op{}, errors.New("traverse needs an order, like traverse:inorder")
		}
		o.tv, err = binary.ParseTraversal(arg)
		if err != nil {
			return op{}, err
		}
	case "build":
		o.keys, err = parseInts(arg)
		if err != nil {
			return op{}, errors.Wrapf(err, "in %q", s)
		}
	case "balance", "clear", "recenter", "print":
		if hasArg {
			return op{}, errors.Newf("%s takes no argument", o.name)
		}
	default:
		return op{}, errors.Newf("unknown operation %q", name)
	}

	return o, nil
}

func parseScript(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, s := range args {
		o, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// controller is the part of *app.App that a script drives.
type controller interface {
	BuildTree(keys []int) error
	CreateRandom(n int, seed int64) error
	InsertNumber(k int) (*animate.Animation, error)
	FindNumber(k int) (*animate.Animation, error)
	DeleteNumber(k int) (*animate.Animation, error)
	Traverse(tv binary.Traversal) (*animate.Animation, error)
	Balance() error
	Clear() error
	Recenter() error
	String() string
}

var _ controller = (*app.App)(nil)

// apply runs o. Operations that animate return their animation.
func (o op) apply(c controller, seed int64) (*animate.Animation, error) {
	switch o.name {
	case "insert":
		return c.InsertNumber(o.n)
	case "find":
		return c.FindNumber(o.n)
	case "delete":
		return c.DeleteNumber(o.n)
	case "traverse":
		return c.Traverse(o.tv)
	case "build":
		return nil, c.BuildTree(o.keys)
	case "random":
		return nil, c.CreateRandom(o.n, seed)
	case "balance":
		return nil, c.Balance()
	case "clear":
		return nil, c.Clear()
	case "recenter":
		return nil, c.Recenter()
	default:
		panic("unhandled operation " + o.name)
	}
}

// recoverable errors are reported and the script goes on.
func recoverable(err error) bool {
	return errors.Is(err, app.ErrNotFound) ||
		errors.Is(err, app.ErrCapacityExceeded) ||
		errors.Is(err, binary.ErrEmptyTree)
}
