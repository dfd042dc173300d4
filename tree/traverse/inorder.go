package traverse

import (
	"fmt"

	"go.lepak.sg/treesim/tree"
)

var _ Sequencer = (*inOrder)(nil)

// Recursive in order traversal looks like this:
//
//	func visit(n *Node) (found bool) {
//		if n.Left != nil && visit(n.Left) {	--(1)
//			return true
//		}
//		if f(n) {				--(2)
//			return true
//		}
//		return n.Right != nil && visit(n.Right)	--(3)
//	}
//
// Each frame on the stack replicates one visit call, and its stage
// records which of (1), (2) or (3) runs when the frame is next on top.
// A found target returns true all the way up, which is the same as
// throwing the whole stack away.

// stage is the resume point of a frame.
type stage int

const (
	descendLeft stage = iota
	descendRight
	visitSelf
)

type frame struct {
	n  *tree.Node
	at stage
}

// inOrder walks left subtree, node, right subtree using a frame stack
// instead of recursion. Nothing is scheduled ahead of time, so no
// Queued steps are produced.
type inOrder struct {
	emitter
	stack []frame
}

func newInOrder(root *tree.Node, target Target) *inOrder {
	i := &inOrder{emitter: emitter{target: target}}
	if root != nil {
		i.stack = append(i.stack, frame{n: root})
	}

	return i
}

func (i *inOrder) Next() bool {
	return i.advance(i.work)
}

func (i *inOrder) work() {
	if len(i.stack) == 0 {
		i.finish()
		return
	}

	top := &i.stack[len(i.stack)-1]
	n := top.n

	switch top.at {
	case descendLeft:
		top.at = visitSelf
		if n.Left != nil {
			i.stack = append(i.stack, frame{n: n.Left})
		}
	case visitSelf:
		top.at = descendRight
		if i.visit(n, fmt.Sprintf("visiting node %d (inorder)", n.Value)) {
			i.stack = nil
		}
	case descendRight:
		// the frame is finished; the right subtree replaces it
		i.stack = i.stack[:len(i.stack)-1]
		if n.Right != nil {
			i.stack = append(i.stack, frame{n: n.Right})
		}
	default:
		panic("unreachable")
	}
}
