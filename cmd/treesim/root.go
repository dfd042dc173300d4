package main

import (
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	config   string
	seed     int64
	logLevel string
}

// cfg is loaded before any subcommand runs.
var cfg = &defaultConfig

var rootCmd = &cobra.Command{
	Use:   "treesim",
	Short: "Build binary trees and step through their traversals",
	Long: "treesim builds binary trees from random values under several policies\n" +
		"(random, binary search tree, AVL, heap) and replays breadth-first and\n" +
		"depth-first traversals one step at a time.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", "treesim.yaml", "YAML file with default settings")
	f.Int64Var(&rootFlags.seed, "seed", 0, "random seed, 0 for a new one every run")
	f.StringVar(&rootFlags.logLevel, "log-level", "info", "debug, info, warn or error")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(rootFlags.logLevel))); err != nil {
		return errors.Wrapf(err, "--log-level")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := LoadConfig(rootFlags.config)
	if err != nil {
		return err
	}
	cfg = loaded
	slog.Debug("config loaded", slog.String("path", rootFlags.config))

	return nil
}

// newRand returns the random source for a run. The seed is logged so a
// run can be repeated.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("seeded", slog.Int64("seed", seed))
	return rand.New(rand.NewSource(seed))
}
