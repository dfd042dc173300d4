package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/treesim/tree/build"
	"go.lepak.sg/treesim/tree/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build many trees of every pattern and validate them",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Int("rounds", defaultConfig.Rounds, "trees per pattern and size")
	f.Int("workers", defaultConfig.Workers, "trees built at once")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	c, err := cfg.merged(cmd)
	if err != nil {
		return err
	}

	seed := newRand(c.Seed).Int63()
	cases := check.Cases(build.Patterns(), minSize, maxSize, c.Rounds, seed)

	results, err := check.Sweep(cmd.Context(), cases, c.Workers)
	if err != nil {
		return errors.Wrap(err, "sweep")
	}

	out := cmd.OutOrStdout()
	failed := check.Failures(results)
	for _, r := range failed {
		fmt.Fprintf(out, "FAIL %s size=%d seed=%d: %v\n", r.Pattern, r.Size, r.Seed, r.Err)
	}
	if len(failed) > 0 {
		return errors.Newf("%d of %d trees failed", len(failed), len(results))
	}

	fmt.Fprintf(out, "ok: %d trees, %d patterns, sizes %d to %d\n", len(results), len(build.Patterns()), minSize, maxSize)
	return nil
}
