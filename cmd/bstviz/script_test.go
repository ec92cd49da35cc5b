package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bstviz/app"
	"go.lepak.sg/bstviz/must"
	"go.lepak.sg/bstviz/render"
	"go.lepak.sg/bstviz/tree/binary"
	"go.uber.org/goleak"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", []int{}, false},
		{"1", []int{1}, false},
		{"1,2,3", []int{1, 2, 3}, false},
		{"1, 2  3", []int{1, 2, 3}, false},
		{"-4,,5", []int{-4, 5}, false},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInts(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want op
	}{
		{"insert:5", op{name: "insert", n: 5}},
		{"FIND:-1", op{name: "find", n: -1}},
		{"delete:0", op{name: "delete", n: 0}},
		{"random:20", op{name: "random", n: 20}},
		{"traverse:postorder", op{name: "traverse", tv: binary.TraversalPostOrder}},
		{"build:3,1,2", op{name: "build", keys: []int{3, 1, 2}}},
		{"balance", op{name: "balance"}},
		{"print", op{name: "print"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower(tt.in), got.String())
		})
	}
}

func TestParseOp_Invalid(t *testing.T) {
	for _, s := range []string{
		"insert",
		"insert:five",
		"random:-1",
		"traverse",
		"traverse:sideways",
		"build:1,a",
		"clear:now",
		"rotate:3",
	} {
		_, err := parseOp(s)
		assert.Error(t, err, s)
	}

	_, err := parseScript([]string{"insert:1", "oops"})
	assert.Error(t, err)
}

func TestRebuild(t *testing.T) {
	tr := must.Get(rebuild("4,2,1,3,6,5,7", ""))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, tr.PostOrder(nil))

	tr = must.Get(rebuild("1,2", "1,2"))
	assert.Equal(t, "1\n└─R─2\n", tr.String())

	_, err := rebuild("1,2", "2,1")
	assert.Error(t, err)

	_, err = rebuild("1,b", "")
	assert.Error(t, err)
}

func TestDescribeRandom(t *testing.T) {
	var buf bytes.Buffer
	describeRandom(&buf, 15, 1, true)

	out := buf.String()
	assert.Contains(t, out, "preorder:")
	assert.Contains(t, out, "inorder:")
	assert.Contains(t, out, "balanced: true")
	assert.Contains(t, out, "attempts:")

	buf.Reset()
	describeRandom(&buf, 5, 1, false)
	assert.NotContains(t, buf.String(), "attempts:")
}

func newTestApp(t *testing.T) (*app.App, *render.Recorder[int]) {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.TickInterval = time.Millisecond

	rec := &render.Recorder[int]{}
	a := app.New(cfg, rec)
	require.NoError(t, a.BuildTree([]int{5, 3, 8, 1, 4, 7, 9}))
	return a, rec
}

func TestPlay(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, rec := newTestApp(t)
	rec.Reset()

	ops := must.Get(parseScript([]string{
		"find:4",
		"delete:5",
		"find:5",
		"insert:6",
		"traverse:inorder",
		"print",
	}))

	var buf bytes.Buffer
	require.NoError(t, play(context.Background(), a, ops, &buf, 1))

	want := `7
├─L─3
│   ├─L─1
│   └─R─4
│       └─R─6
└─R─8
    └─R─9
`
	assert.Equal(t, want, buf.String())
	assert.NotZero(t, rec.Len())
	assert.False(t, a.IsAnimating())
}

func TestPlay_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	ops := must.Get(parseScript([]string{"clear", "print"}))
	require.NoError(t, play(ctx, a, ops, &buf, 1))

	assert.Equal(t, 7, a.Len())
	assert.Empty(t, buf.String())
}

func TestNewRenderer(t *testing.T) {
	layout := app.DefaultConfig().Layout
	for _, f := range []string{"text", "dot", "table"} {
		r, err := newRenderer(f, &bytes.Buffer{}, layout)
		assert.NoError(t, err, f)
		assert.NotNil(t, r, f)
	}

	_, err := newRenderer("svg", &bytes.Buffer{}, layout)
	assert.Error(t, err)
}
