package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))

	for size := 5; size <= 50; size++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		values := Values(rd, size)

		require.Len(t, values, size)

		seen := make(map[int]bool, size)
		for _, v := range values {
			assert.False(t, seen[v], "duplicate %d for size %d", v, size)
			seen[v] = true
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, size*10)
		}
	}
}

func TestValues_Repeatable(t *testing.T) {
	a := Values(rand.New(rand.NewSource(42)), 20)
	b := Values(rand.New(rand.NewSource(42)), 20)

	assert.Equal(t, a, b)
}

func TestValues_NonPositive(t *testing.T) {
	assert.Nil(t, Values(rand.New(rand.NewSource(1)), 0))
	assert.Nil(t, Values(nil, -3))
}

func TestValues_NilSource(t *testing.T) {
	assert.Len(t, Values(nil, 10), 10)
}

func TestValues_Single(t *testing.T) {
	// the range is [1, 10] so any draw is accepted
	values := Values(rand.New(rand.NewSource(7)), 1)

	require.Len(t, values, 1)
	assert.True(t, values[0] >= 1 && values[0] <= 10)
}

var _ rand.Source = (*collidingSource)(nil)

// collidingSource returns 0 for the first repeat draws, then counts up
// from base.
type collidingSource struct {
	repeat int
	base   int64
	calls  int
}

func (s *collidingSource) Int63() int64 {
	s.calls++
	if s.calls <= s.repeat {
		return 0
	}
	// Intn uses the top 31 bits of Int63
	return (s.base + int64(s.calls-s.repeat)) << 32
}

func (s *collidingSource) Seed(int64) {}

func TestValues_WidensOnCollisions(t *testing.T) {
	const size = 5

	// every early draw is 1, so size*maxAttemptsFactor rejections
	// pile up before anything else is drawn
	src := &collidingSource{repeat: size*maxAttemptsFactor + 40, base: 59}
	values := Values(rand.New(src), size)

	require.Len(t, values, size)
	assert.Equal(t, 1, values[0])

	seen := make(map[int]bool, size)
	above := 0
	for _, v := range values {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
		if v > size*10 {
			above++
		}
		// the range was doubled once
		assert.LessOrEqual(t, v, size*20)
	}
	assert.Equal(t, size-1, above)
}
