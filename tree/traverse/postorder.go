package traverse

import (
	"fmt"

	"go.lepak.sg/treesim/tree"
)

var _ Sequencer = (*postOrder)(nil)

// postOrder walks left subtree, right subtree, then the node.
// Frames move through descendLeft, descendRight and visitSelf in that
// order; see inOrder for how frames stand in for recursion.
type postOrder struct {
	emitter
	stack []frame
}

func newPostOrder(root *tree.Node, target Target) *postOrder {
	p := &postOrder{emitter: emitter{target: target}}
	if root != nil {
		p.stack = append(p.stack, frame{n: root})
	}

	return p
}

func (p *postOrder) Next() bool {
	return p.advance(p.work)
}

func (p *postOrder) work() {
	if len(p.stack) == 0 {
		p.finish()
		return
	}

	top := &p.stack[len(p.stack)-1]
	n := top.n

	switch top.at {
	case descendLeft:
		top.at = descendRight
		if n.Left != nil {
			p.stack = append(p.stack, frame{n: n.Left})
		}
	case descendRight:
		top.at = visitSelf
		if n.Right != nil {
			p.stack = append(p.stack, frame{n: n.Right})
		}
	case visitSelf:
		p.stack = p.stack[:len(p.stack)-1]
		if p.visit(n, fmt.Sprintf("visiting node %d (postorder)", n.Value)) {
			p.stack = nil
		}
	default:
		panic("unreachable")
	}
}
