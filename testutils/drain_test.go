package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder counts failures instead of failing the test.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any)          {}
func (r *recorder) Logf(string, ...any) {}
func (r *recorder) Error(args ...any)   { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Errorf(f string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(f, args...))
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			time.Sleep(time.Millisecond)
			ch <- i
		}
	}()

	r := &recorder{}
	DrainBlocking(r, []int{1, 2, 3}, ch, time.Second)
	assert.Empty(t, r.errors)
}

func TestDrainBlocking_ClosedEarly(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1
	close(ch)

	r := &recorder{}
	DrainBlocking(r, []int{1, 2}, ch, time.Second)
	assert.Len(t, r.errors, 1)
}

func TestDrainBlocking_Unclosed(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1

	r := &recorder{}
	DrainBlocking(r, []int{1}, ch, 10*time.Millisecond)
	assert.Equal(t, []string{"at the end of draining, channel was empty but unclosed"}, r.errors)
}
