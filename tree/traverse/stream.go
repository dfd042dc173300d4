package traverse

import "sync"

// Stream hands out the steps of a Sequencer over a channel.
// It is for consumers that want to range over steps and
// possibly stop early.
type Stream struct {
	steps <-chan Step
	stop  chan<- struct{}
	once  sync.Once
}

// NewStream starts coroutine-style iteration over seq.
// The usage is as follows:
//
//	st := traverse.NewStream(seq)
//	for step := range st.Steps() {
//		... do stuff with step ...
//		if step meets some stopping condition {
//			st.Stop()
//		}
//	}
//
// Note: NewStream starts a goroutine, which exits when either
// Stop is called or the sequencer is exhausted.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func NewStream(seq Sequencer) *Stream {
	out := make(chan Step)
	stop := make(chan struct{})
	st := &Stream{
		steps: out,
		stop:  stop,
	}

	if seq == nil {
		close(out)
		return st
	}

	go func(out chan<- Step, stop <-chan struct{}, seq Sequencer) {
		defer close(out)
		for seq.Next() {
			select {
			case out <- seq.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, seq)

	return st
}

// Steps returns the channel on which steps are sent. It is closed when
// the sequencer is exhausted or the stream is stopped.
func (s *Stream) Steps() <-chan Step {
	return s.steps
}

// Stop abandons the iteration. It may be called more than once and from
// multiple goroutines. If the Steps channel is already closed, Stop does
// not need to be called.
func (s *Stream) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}
