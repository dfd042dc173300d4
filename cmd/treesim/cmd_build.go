package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.lepak.sg/treesim/tree"
	"go.lepak.sg/treesim/tree/build"
	"go.lepak.sg/treesim/tree/check"
)

var buildFlags struct {
	output string
	check  bool
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a tree and print it",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	addTreeFlags(buildCmd)
	f := buildCmd.Flags()
	f.StringVarP(&buildFlags.output, "output", "o", "text", "text or yaml")
	f.BoolVar(&buildFlags.check, "check", false, "validate the properties of the pattern")
}

func addTreeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("pattern", defaultConfig.Pattern, fmt.Sprintf("one of %v", build.Patterns()))
	f.Int("size", defaultConfig.Size, fmt.Sprintf("node count, %d to %d", minSize, maxSize))
}

// generate builds the tree described by c.
func generate(c Config) (*tree.Node, build.Pattern, error) {
	p, err := build.ParsePattern(c.Pattern)
	if err != nil {
		return nil, p, err
	}
	return build.Generate(newRand(c.Seed), p, c.Size), p, nil
}

func runBuild(cmd *cobra.Command, _ []string) error {
	c, err := cfg.merged(cmd)
	if err != nil {
		return err
	}

	root, p, err := generate(c)
	if err != nil {
		return err
	}

	if buildFlags.check {
		if err := check.Pattern(root, p, c.Size); err != nil {
			return err
		}
	}

	return writeTree(cmd.OutOrStdout(), root, p, buildFlags.output)
}

func writeTree(out io.Writer, root *tree.Node, p build.Pattern, format string) error {
	switch format {
	case "text":
		fmt.Fprintf(out, "%s, %d nodes, height %d\n", p, tree.Count(root), tree.Height(root))
		fmt.Fprint(out, tree.StringIDs(root))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(tree.ToGraph(root)); err != nil {
			return errors.Wrap(err, "encoding graph")
		}
		return enc.Close()
	default:
		return errors.Newf("unknown output format %q", format)
	}
}
