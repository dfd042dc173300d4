package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/treesim/session"
	"go.lepak.sg/treesim/tree/traverse"
)

var playFlags struct {
	target  int
	compare string
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a traversal in real time",
	Long: "play advances a traversal on a clock, printing each step as it happens.\n" +
		"With --compare a second traversal of the same tree runs alongside.\n" +
		"Interrupt to stop early.",
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addTreeFlags(playCmd)
	f := playCmd.Flags()
	f.String("algorithm", defaultConfig.Algorithm, fmt.Sprintf("one of %v", traverse.Algorithms()))
	f.Float64("speed", defaultConfig.Speed, "steps per second")
	f.IntVar(&playFlags.target, "target", 0, "value to search for; the walk stops when it is found")
	f.StringVar(&playFlags.compare, "compare", "", "a second algorithm to run alongside")
}

// lockedWriter serialises writes from observers of different controllers.
type lockedWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *lockedWriter) println(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, s)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	c, err := cfg.merged(cmd)
	if err != nil {
		return err
	}

	algs := []string{c.Algorithm}
	if playFlags.compare != "" {
		algs = append(algs, playFlags.compare)
	}

	root, p, err := generate(c)
	if err != nil {
		return err
	}
	if err := writeTree(cmd.OutOrStdout(), root, p, "text"); err != nil {
		return err
	}

	out := &lockedWriter{out: cmd.OutOrStdout()}
	styles := NewStyles()
	target := targetFlag(cmd, playFlags.target)

	var members []*session.Controller
	for _, name := range algs {
		alg, err := traverse.ParseAlgorithm(name)
		if err != nil {
			return err
		}

		prefix := ""
		if len(algs) > 1 {
			prefix = styles.Title.Render(alg.String()) + " "
		}
		members = append(members, session.New(
			session.WithTree(root),
			session.WithAlgorithm(alg),
			session.WithTarget(target),
			session.WithSpeed(c.Speed),
			session.WithLogger(slog.Default().With(slog.String("algorithm", alg.String()))),
			session.WithObserver(func(e session.LogEntry, step traverse.Step) {
				out.println(prefix + styles.Step(e.Step, step))
			}),
		))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return play(ctx, session.NewGroup(members...), out, styles)
}

// play runs g until every member completes or ctx is done.
func play(ctx context.Context, g *session.Group, out *lockedWriter, styles Styles) error {
	g.Toggle()

	err := g.Wait(ctx)
	if errors.Is(err, context.Canceled) {
		g.Reset()
		out.println("interrupted")
		return nil
	}
	if err != nil {
		g.Reset()
		return err
	}

	for _, m := range g.Members() {
		out.println(fmt.Sprintf("%s: %d steps, %s", m.Algorithm(), m.StepCount(), styles.Counts(m.StatusCounts())))
	}
	return nil
}
