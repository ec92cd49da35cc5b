package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/bstviz/tree/binary"
)

var randomConfig struct {
	seed     int64
	num      int
	balanced bool
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "build a tree by inserting keys in random order and describe it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if randomConfig.seed == 0 {
			randomConfig.seed = time.Now().UnixNano()
		}
		describeRandom(cmd.OutOrStdout(), randomConfig.num, randomConfig.seed, randomConfig.balanced)
		return nil
	},
}

func initRandomFlags() {
	randomCmd.Flags().Int64VarP(
		&randomConfig.seed, "seed", "s", 0, "seed (default current unix time in ns)")
	randomCmd.Flags().IntVarP(
		&randomConfig.num, "num", "n", 10, "number of nodes in the tree")
	randomCmd.Flags().BoolVarP(
		&randomConfig.balanced, "balanced", "b", false,
		"keep building the tree until it is balanced")
}

func describeRandom(w io.Writer, num int, seed int64, balanced bool) {
	var tr *binary.Tree[int]
	attempts := 0

	if balanced {
		tr, attempts = binary.BuildRandomBalanced(num, seed)
	} else {
		tr = binary.BuildRandom(num, seed)
	}

	inorder := make([]int, 0, num)
	for k := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, k)
	}

	fmt.Fprintln(w, "preorder:", tr.PreOrder(nil))
	fmt.Fprintln(w, "inorder:", inorder)

	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())

	fmt.Fprintln(w, "height:", tr.Height(), "ideal:", tr.IdealHeight(), "balanced:", tr.Balanced())

	if balanced {
		fmt.Fprintln(w, "attempts:", attempts)
	}
}
