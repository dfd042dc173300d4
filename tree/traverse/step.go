package traverse

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"go.lepak.sg/treesim/tree"
)

// Status is what a step says about a node.
type Status int

const (
	// Unvisited nodes have not been reached yet. No step carries it;
	// it is what a renderer assumes for nodes without a step.
	Unvisited Status = iota
	// Active marks the node currently being processed.
	Active
	// Visited marks a node whose processing is complete.
	Visited
	// Queued marks a node scheduled for a later visit.
	Queued
	// Found marks the node holding the target value.
	Found
)

func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Active:
		return "active"
	case Visited:
		return "visited"
	case Queued:
		return "queued"
	case Found:
		return "found"
	default:
		return "<invalid traverse.Status>"
	}
}

// Step is one observable unit of traversal progress.
type Step struct {
	NodeID  int
	Status  Status
	Message string
}

func (s Step) String() string {
	return fmt.Sprintf("%d %s: %s", s.NodeID, s.Status, s.Message)
}

// Algorithm selects the visiting order.
type Algorithm int

const (
	// BFS visits level by level, left to right.
	BFS Algorithm = iota
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder
	// InOrder visits the left subtree, then the node, then the right subtree.
	InOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algorithmNames = [...]string{
	BFS:       "bfs",
	PreOrder:  "dfs-preorder",
	InOrder:   "dfs-inorder",
	PostOrder: "dfs-postorder",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "<invalid traverse.Algorithm>"
	}
	return algorithmNames[a]
}

// Algorithms returns every Algorithm in declaration order.
func Algorithms() []Algorithm {
	as := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		as[i] = Algorithm(i)
	}
	return as
}

// ParseAlgorithm returns the Algorithm whose String is name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Target is an optional value to search for.
// The zero Target searches for nothing.
type Target struct {
	value int
	ok    bool
}

// NoTarget walks the whole tree.
var NoTarget = Target{}

// Find returns a Target that stops the walk at the first node holding v.
func Find(v int) Target {
	return Target{value: v, ok: true}
}

// Value returns the searched value and whether there is one.
func (t Target) Value() (int, bool) {
	return t.value, t.ok
}

func (t Target) String() string {
	if !t.ok {
		return "none"
	}
	return fmt.Sprint(t.value)
}

func (t Target) matches(v int) bool {
	return t.ok && t.value == v
}

// emitter buffers the steps produced by one unit of work so they can be
// handed out one Next at a time. Sequencers embed it and supply work.
type emitter struct {
	steps []Step
	at    Step
	done  bool

	target Target
	// last is the most recently completed node, named by the not-found step
	last *tree.Node
}

func (e *emitter) emit(n *tree.Node, s Status, msg string) {
	e.steps = append(e.steps, Step{NodeID: n.ID, Status: s, Message: msg})
}

// advance moves to the next buffered step, calling work whenever the
// buffer is empty and the walk has not finished.
func (e *emitter) advance(work func()) bool {
	for {
		if len(e.steps) > 0 {
			e.at = e.steps[0]
			e.steps = e.steps[1:]
			return true
		}

		if e.done {
			return false
		}

		work()
	}
}

// visit emits the steps for processing n. It returns true if n holds the
// target, in which case the walk is over.
func (e *emitter) visit(n *tree.Node, activeMsg string) bool {
	e.emit(n, Active, activeMsg)

	if e.target.matches(n.Value) {
		e.emit(n, Found, fmt.Sprintf("found target %d, stopping", n.Value))
		e.done = true
		return true
	}

	e.emit(n, Visited, fmt.Sprintf("visited node %d", n.Value))
	e.last = n

	return false
}

// finish ends the walk, reporting a missed target on the last node.
func (e *emitter) finish() {
	if v, ok := e.target.Value(); ok && e.last != nil {
		e.emit(e.last, Visited, fmt.Sprintf("target %d not found", v))
	}
	e.done = true
}

func (e *emitter) Item() Step {
	return e.at
}
