package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.lepak.sg/bstviz/must"
	"go.lepak.sg/bstviz/tree/binary"
	"golang.org/x/exp/slices"
)

var rebuildConfig struct {
	pre string
	in  string
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "rebuild a tree from its pre-order and in-order traversals",
	Long: `rebuild recreates a binary search tree from its pre-order
traversal. The in-order traversal of a search tree is its sorted keys,
so --in may be left out.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func initRebuildFlags() {
	rebuildCmd.Flags().StringVar(
		&rebuildConfig.pre, "pre", "", "pre-order traversal, separated by commas")
	rebuildCmd.Flags().StringVar(
		&rebuildConfig.in, "in", "", "in-order traversal (default the sorted pre-order keys)")
	must.Do(rebuildCmd.MarkFlagRequired("pre"))
}

func rebuild(preStr, inStr string) (*binary.Tree[int], error) {
	pre, err := parseInts(preStr)
	if err != nil {
		return nil, errors.Wrap(err, "--pre")
	}

	var in []int
	if inStr == "" {
		in = slices.Clone(pre)
		slices.Sort(in)
	} else {
		in, err = parseInts(inStr)
		if err != nil {
			return nil, errors.Wrap(err, "--in")
		}
	}

	return binary.BuildFromTraversals(pre, in)
}

func runRebuild(cmd *cobra.Command, args []string) error {
	tr, err := rebuild(rebuildConfig.pre, rebuildConfig.in)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())
	fmt.Fprintln(w, "postorder:", tr.PostOrder(nil))
	fmt.Fprintln(w, "levelorder:", tr.LevelOrder(nil))
	return nil
}
