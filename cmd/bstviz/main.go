package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bstviz [command] (flags)",
	Short: "binary search tree visualizer",
	Long: `bstviz builds binary search trees and replays the
operations on them frame by frame.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		playCmd,
		randomCmd,
		rebuildCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")

	initPlayFlags()
	initRandomFlags()
	initRebuildFlags()

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
