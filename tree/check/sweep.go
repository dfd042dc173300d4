package check

import (
	"context"
	"math/rand"

	"golang.org/x/sync/semaphore"

	"go.lepak.sg/treesim/tree/build"
)

// Case describes one tree to build and validate.
type Case struct {
	Pattern build.Pattern
	Size    int
	Seed    int64
}

// Result is the outcome of one Case. Err is nil if the tree passed.
type Result struct {
	Case
	Err error
}

// Cases returns rounds cases for every pattern and every size in
// [minSize, maxSize]. Seeds are drawn from seed so the sweep is repeatable.
func Cases(patterns []build.Pattern, minSize, maxSize, rounds int, seed int64) []Case {
	seedrd := rand.New(rand.NewSource(seed))

	var cases []Case
	for _, p := range patterns {
		for size := minSize; size <= maxSize; size++ {
			for i := 0; i < rounds; i++ {
				cases = append(cases, Case{
					Pattern: p,
					Size:    size,
					Seed:    int64(seedrd.Uint64()),
				})
			}
		}
	}

	return cases
}

// Run builds the tree for c and checks it.
func (c Case) Run() Result {
	root := build.Generate(rand.New(rand.NewSource(c.Seed)), c.Pattern, c.Size)

	return Result{
		Case: c,
		Err:  Pattern(root, c.Pattern, c.Size),
	}
}

// Sweep runs cases in parallel with at most inflight running at once.
// Results are in the same order as cases.
//
// Context cancellation: If the context is canceled, Sweep will
// immediately stop starting new cases, wait for running cases to finish,
// then return the results so far with the context error.
func Sweep(ctx context.Context, cases []Case, inflight int) (results []Result, err error) {
	if inflight < 1 {
		inflight = 1
	}

	results = make([]Result, len(cases))
	sema := semaphore.NewWeighted(int64(inflight))

	for i, c := range cases {
		err = sema.Acquire(ctx, 1)
		if err != nil {
			// ctx was canceled
			break
		}

		go func(i int, c Case) {
			defer sema.Release(1)
			results[i] = c.Run()
		}(i, c)
	}

	// acquiring the entire semaphore waits for every worker to exit
	if werr := sema.Acquire(context.Background(), int64(inflight)); werr != nil {
		panic("unreachable")
	}

	return results, err
}

// Failures returns the results that carry an error.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}
