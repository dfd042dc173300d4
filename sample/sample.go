// Package sample draws sets of distinct random integers used as
// tree payloads.
package sample

import (
	"math/rand"
	"time"
)

// After size*maxAttemptsFactor rejected draws the sampling range is doubled.
const maxAttemptsFactor = 32

// Values returns size distinct integers drawn uniformly from [1, size*10],
// in the order they were drawn.
// If rd is nil, a source seeded from the current time is used.
// Values returns nil if size is not positive.
func Values(rd *rand.Rand, size int) []int {
	if size <= 0 {
		return nil
	}

	if rd == nil {
		rd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	upper := size * 10
	values := make([]int, 0, size)
	used := make(map[int]struct{}, size)
	rejected := 0

	for len(values) < size {
		v := rd.Intn(upper) + 1
		if _, ok := used[v]; ok {
			rejected++
			if rejected >= size*maxAttemptsFactor {
				// collisions dominate, widen the range so we can finish
				upper *= 2
				rejected = 0
			}
			continue
		}

		used[v] = struct{}{}
		values = append(values, v)
	}

	return values
}
