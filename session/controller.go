// Package session drives a traversal one step at a time on a clock,
// with play, pause and reset controls.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"go.lepak.sg/treesim/tree"
	"go.lepak.sg/treesim/tree/traverse"
)

// State is the playback state of a Controller.
type State int

const (
	// Idle sessions have no traversal in progress.
	Idle State = iota
	// Running sessions advance on their own after every delay.
	Running
	// Paused sessions keep their position until started again.
	Paused
	// Completed sessions have exhausted their traversal. Only Reset
	// (or a change of tree or algorithm) leaves this state.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "<invalid session.State>"
	}
}

// DefaultSpeed is the speed of a Controller in steps per second unless
// WithSpeed says otherwise.
const DefaultSpeed = 1.0

// LogEntry records one advanced step.
type LogEntry struct {
	// Step is 1-based.
	Step    int
	Message string
	Time    time.Time
}

// Snapshot is a copy of a Controller's observable state.
type Snapshot struct {
	State    State
	Statuses map[int]traverse.Status
	Logs     []LogEntry
	Steps    int
}

// Observer is called after every step with the log entry and the step
// that produced it. It is not called with the Controller locked, so it
// may call back into the Controller. Calls for one Controller never
// overlap and arrive in step order.
type Observer func(LogEntry, traverse.Step)

type Option func(*Controller)

// WithTree binds root. Without a tree, Start does nothing.
func WithTree(root *tree.Node) Option {
	return func(c *Controller) {
		c.root = root
	}
}

func WithAlgorithm(alg traverse.Algorithm) Option {
	return func(c *Controller) {
		c.alg = alg
	}
}

func WithTarget(target traverse.Target) Option {
	return func(c *Controller) {
		c.target = target
	}
}

// WithSpeed sets the steps per second. Non-positive speeds mean
// DefaultSpeed.
func WithSpeed(speed float64) Option {
	return func(c *Controller) {
		c.speed = normSpeed(speed)
	}
}

func WithScheduler(sched Scheduler) Option {
	return func(c *Controller) {
		c.sched = sched
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithClock sets the source of LogEntry times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		c.observer = obs
	}
}

// Controller is a resumable traversal session over one tree.
// All methods are safe for concurrent use.
type Controller struct {
	lock sync.Mutex

	root     *tree.Node
	alg      traverse.Algorithm
	target   traverse.Target
	speed    float64
	sched    Scheduler
	log      *slog.Logger
	now      func() time.Time
	observer Observer

	state    State
	seq      traverse.Sequencer
	statuses map[int]traverse.Status
	logs     []LogEntry
	steps    int

	// gen identifies the current run. Pause and reset bump it so that a
	// scheduled advance from before can tell it is stale.
	gen   uint64
	timer Timer
	done  chan struct{}
	// resets is closed and replaced on every reset, waking Wait so it
	// can pick up the new done channel.
	resets chan struct{}

	// notices waits for delivery by the goroutine that set notifying.
	notices   []notice
	notifying bool
}

// notice is a step to hand to the observer, or the completion of a run
// when done is set.
type notice struct {
	entry LogEntry
	step  traverse.Step
	done  chan struct{}
}

// New returns an Idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		speed:    DefaultSpeed,
		sched:    wallClock{},
		log:      slog.Default(),
		now:      time.Now,
		statuses: make(map[int]traverse.Status),
		done:     make(chan struct{}),
		resets:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func normSpeed(speed float64) float64 {
	if speed <= 0 {
		return DefaultSpeed
	}
	return speed
}

// Delay returns the wait between two steps at the current speed.
func (c *Controller) Delay() time.Duration {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.delay()
}

func (c *Controller) delay() time.Duration {
	return time.Duration(float64(time.Second) / c.speed)
}

// Start begins a traversal from Idle, or resumes one from Paused. The
// first step is taken before Start returns. In any other state, or with
// no tree bound, Start does nothing.
func (c *Controller) Start() {
	c.lock.Lock()
	gen, ok := c.start()
	c.lock.Unlock()

	if ok {
		c.advance(gen)
	}
}

func (c *Controller) start() (uint64, bool) {
	switch c.state {
	case Idle:
		if c.root == nil {
			c.log.Debug("start ignored, no tree")
			return 0, false
		}
		c.seq = traverse.New(c.root, c.alg, c.target)
		c.log.Debug("session started",
			slog.String("algorithm", c.alg.String()),
			slog.String("target", c.target.String()))
	case Paused:
		c.log.Debug("session resumed", slog.Int("steps", c.steps))
	case Running, Completed:
		return 0, false
	default:
		panic("unreachable")
	}

	c.state = Running
	c.gen++
	return c.gen, true
}

// Pause stops a Running session where it is. Nothing happens in any
// other state.
func (c *Controller) Pause() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.pause()
}

func (c *Controller) pause() {
	if c.state != Running {
		return
	}

	c.cancel()
	c.state = Paused
	c.log.Debug("session paused", slog.Int("steps", c.steps))
}

// TogglePlayPause pauses a Running session and starts any Idle or Paused
// one. A Completed session is left alone.
func (c *Controller) TogglePlayPause() {
	c.lock.Lock()
	if c.state == Running {
		c.pause()
		c.lock.Unlock()
		return
	}
	gen, ok := c.start()
	c.lock.Unlock()

	if ok {
		c.advance(gen)
	}
}

// Reset discards the traversal and all recorded progress and returns the
// session to Idle. Resetting twice is the same as resetting once.
func (c *Controller) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.reset()
}

func (c *Controller) reset() {
	c.cancel()

	// a completed run owns its done channel, even if the completion
	// notice is still queued
	if c.state == Completed {
		c.done = make(chan struct{})
	}

	c.state = Idle
	c.seq = nil
	c.statuses = make(map[int]traverse.Status)
	c.logs = nil
	c.steps = 0

	close(c.resets)
	c.resets = make(chan struct{})

	c.log.Debug("session reset")
}

// cancel makes any scheduled advance stale.
func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// SetTree binds root and resets the session.
func (c *Controller) SetTree(root *tree.Node) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.root = root
	c.reset()
}

// SetAlgorithm changes the algorithm and resets the session.
func (c *Controller) SetAlgorithm(alg traverse.Algorithm) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.alg = alg
	c.reset()
}

// SetTarget changes the target searched for by the next traversal
// started from Idle. A traversal in progress is not affected.
func (c *Controller) SetTarget(target traverse.Target) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.target = target
}

// SetSpeed changes the speed from the next scheduled step on.
func (c *Controller) SetSpeed(speed float64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.speed = normSpeed(speed)
}

// advance takes one step of run gen and schedules the next.
func (c *Controller) advance(gen uint64) {
	c.lock.Lock()
	if gen != c.gen || c.state != Running {
		c.lock.Unlock()
		return
	}
	c.timer = nil

	if !c.seq.Next() {
		c.state = Completed
		c.notices = append(c.notices, notice{done: c.done})
		c.log.Debug("session completed", slog.Int("steps", c.steps))
		c.lock.Unlock()
		c.notify()
		return
	}

	step := c.seq.Item()
	c.statuses[step.NodeID] = step.Status
	entry := LogEntry{
		Step:    c.steps + 1,
		Message: step.Message,
		Time:    c.now(),
	}
	c.logs = append(c.logs, entry)
	c.steps++
	c.log.Debug("step",
		slog.Int("step", entry.Step),
		slog.Int("node", step.NodeID),
		slog.String("status", step.Status.String()))

	c.notices = append(c.notices, notice{entry: entry, step: step})
	c.timer = c.sched.AfterFunc(c.delay(), func() {
		c.advance(gen)
	})
	c.lock.Unlock()

	c.notify()
}

// notify delivers queued notices in order without holding the lock.
// If another goroutine is already delivering, the notices are left to
// it, so observer calls never overlap.
func (c *Controller) notify() {
	c.lock.Lock()
	if c.notifying {
		c.lock.Unlock()
		return
	}
	c.notifying = true

	for len(c.notices) > 0 {
		n := c.notices[0]
		c.notices = c.notices[1:]
		obs := c.observer
		c.lock.Unlock()

		switch {
		case n.done != nil:
			close(n.done)
		case obs != nil:
			obs(n.entry, n.step)
		}

		c.lock.Lock()
	}

	c.notifying = false
	c.lock.Unlock()
}

func (c *Controller) State() State {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.state
}

// Tree returns the bound tree.
func (c *Controller) Tree() *tree.Node {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.root
}

func (c *Controller) Algorithm() traverse.Algorithm {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.alg
}

// NodeStatuses returns a copy of the latest status of every node that
// has appeared in a step.
func (c *Controller) NodeStatuses() map[int]traverse.Status {
	c.lock.Lock()
	defer c.lock.Unlock()

	return maps.Clone(c.statuses)
}

// Status returns the latest status of node id, which is Unvisited if no
// step has mentioned it.
func (c *Controller) Status(id int) traverse.Status {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.statuses[id]
}

// Logs returns a copy of the log.
func (c *Controller) Logs() []LogEntry {
	c.lock.Lock()
	defer c.lock.Unlock()

	return slices.Clone(c.logs)
}

func (c *Controller) StepCount() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.steps
}

func (c *Controller) Snapshot() Snapshot {
	c.lock.Lock()
	defer c.lock.Unlock()

	return Snapshot{
		State:    c.state,
		Statuses: maps.Clone(c.statuses),
		Logs:     slices.Clone(c.logs),
		Steps:    c.steps,
	}
}

// StatusCounts returns how many nodes of the bound tree are in each
// status.
func (c *Controller) StatusCounts() Counts {
	c.lock.Lock()
	defer c.lock.Unlock()

	return countStatuses(c.statuses, tree.Count(c.root))
}

// Done returns a channel that is closed when the current traversal
// completes and its last step has been observed. After a reset, Done
// returns a new channel and the old one may never close.
func (c *Controller) Done() <-chan struct{} {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.done
}

// Wait blocks until a traversal completes or ctx is done. A reset while
// waiting does not end the wait; Wait then waits for the next traversal
// to complete.
func (c *Controller) Wait(ctx context.Context) error {
	for {
		c.lock.Lock()
		done, resets := c.done, c.resets
		c.lock.Unlock()

		select {
		case <-done:
			return nil
		case <-resets:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "waiting for traversal")
		}
	}
}
