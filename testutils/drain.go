// Package testutils holds helpers shared by tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike a non-blocking drain, the producer may still
// be running; each receive waits up to timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-time.After(timeout):
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-time.After(timeout):
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}
