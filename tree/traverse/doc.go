// Package traverse turns a tree walk into a sequence of steps that can
// be pulled one at a time, paused between any two steps, and inspected
// by a renderer.
package traverse

import "go.lepak.sg/treesim/tree"

// Sequencer describes the common interface for all
// traversals in this package.
// Next must always be called before Item, even for
// the first step.
// If Next returns false, the traversal is exhausted, Item must not be
// called, and every later call to Next returns false too.
// Item may be called any number of times if the
// last call to Next returned true.
// The sequencer may be abandoned at any time.
//
// The usual usage of a Sequencer is like this:
//
//	seq := traverse.New(root, traverse.BFS, traverse.NoTarget)
//	for seq.Next() {
//		step := seq.Item()
//		... do stuff with step, or break ...
//	}
//
// A Sequencer never modifies the tree, so any number of sequencers
// may walk the same tree. A single Sequencer is not safe for
// concurrent use.
type Sequencer interface {
	Next() bool
	Item() Step
}

// New returns a fresh Sequencer walking root with alg.
// Each call returns an independent sequence; the sequence for a given
// tree, algorithm and target is always the same.
// An empty tree yields no steps at all.
func New(root *tree.Node, alg Algorithm, target Target) Sequencer {
	switch alg {
	case BFS:
		return newBFS(root, target)
	case PreOrder:
		return newPreOrder(root, target)
	case InOrder:
		return newInOrder(root, target)
	case PostOrder:
		return newPostOrder(root, target)
	default:
		panic("unreachable")
	}
}

// Collect drains seq and returns the steps it produced.
func Collect(seq Sequencer) []Step {
	var steps []Step
	for seq.Next() {
		steps = append(steps, seq.Item())
	}

	return steps
}
