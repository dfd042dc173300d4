package session

import "go.lepak.sg/treesim/tree/traverse"

// Counts is a histogram of node statuses.
type Counts map[traverse.Status]int

// countStatuses counts the statuses of a tree of n nodes. Nodes without a
// recorded status count as Unvisited.
func countStatuses(statuses map[int]traverse.Status, n int) Counts {
	c := make(Counts)

	for _, s := range statuses {
		c[s]++
	}
	if unvisited := n - len(statuses); unvisited > 0 {
		c[traverse.Unvisited] += unvisited
	}

	return c
}

// Add adds counts a and b together and returns a copy.
func (c Counts) Add(b Counts) Counts {
	sum := make(Counts, len(c))

	for s, cnt := range c {
		sum[s] = cnt
	}
	for s, cnt := range b {
		sum[s] += cnt
	}

	return sum
}

// Total sums up all counts.
func (c Counts) Total() int {
	sum := 0

	for _, cnt := range c {
		sum += cnt
	}

	return sum
}
