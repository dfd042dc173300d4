package session

import "time"

// Timer is a pending deferred call.
type Timer interface {
	// Stop prevents the call from running. It returns false if the call
	// has already run or been stopped.
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
// f may run on any goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

var _ Scheduler = wallClock{}

// wallClock schedules with time.AfterFunc.
type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
