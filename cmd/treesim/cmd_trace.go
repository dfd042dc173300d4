package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.lepak.sg/treesim/tree/traverse"
)

var traceFlags struct {
	target int
	limit  int
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every step of a traversal at once",
	Args:  cobra.NoArgs,
	RunE:  runTrace,
}

func init() {
	addTreeFlags(traceCmd)
	f := traceCmd.Flags()
	f.String("algorithm", defaultConfig.Algorithm, fmt.Sprintf("one of %v", traverse.Algorithms()))
	f.IntVar(&traceFlags.target, "target", 0, "value to search for; the walk stops when it is found")
	f.IntVar(&traceFlags.limit, "limit", 0, "stop after this many steps, 0 for no limit")
}

// targetFlag returns the target set on cmd, if any.
func targetFlag(cmd *cobra.Command, v int) traverse.Target {
	if !cmd.Flags().Changed("target") {
		return traverse.NoTarget
	}
	return traverse.Find(v)
}

func runTrace(cmd *cobra.Command, _ []string) error {
	c, err := cfg.merged(cmd)
	if err != nil {
		return err
	}

	alg, err := traverse.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	root, p, err := generate(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeTree(out, root, p, "text"); err != nil {
		return err
	}

	target := targetFlag(cmd, traceFlags.target)
	styles := NewStyles()
	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("%s, target %s", alg, target)))

	traceSteps(out, styles, traverse.New(root, alg, target), traceFlags.limit)
	return nil
}

// traceSteps prints the steps of seq, at most limit of them if limit is
// positive, and returns how many were printed.
func traceSteps(out io.Writer, styles Styles, seq traverse.Sequencer, limit int) int {
	st := traverse.NewStream(seq)
	defer st.Stop()

	n := 0
	for step := range st.Steps() {
		n++
		fmt.Fprintln(out, styles.Step(n, step))
		if limit > 0 && n >= limit {
			break
		}
	}

	return n
}
