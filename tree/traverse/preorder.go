package traverse

import (
	"fmt"

	"go.lepak.sg/treesim/tree"
)

var _ Sequencer = (*preOrder)(nil)

// preOrder walks the tree with an explicit LIFO stack.
// The right child is pushed before the left one so the left subtree
// is processed first. Each push gets a Queued step.
type preOrder struct {
	emitter
	stack []*tree.Node
}

func newPreOrder(root *tree.Node, target Target) *preOrder {
	p := &preOrder{emitter: emitter{target: target}}
	if root != nil {
		p.stack = append(p.stack, root)
	}

	return p
}

func (p *preOrder) Next() bool {
	return p.advance(p.work)
}

func (p *preOrder) work() {
	if len(p.stack) == 0 {
		p.finish()
		return
	}

	current := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if p.visit(current, fmt.Sprintf("visiting node %d (preorder)", current.Value)) {
		p.stack = nil
		return
	}

	for _, child := range [...]*tree.Node{current.Right, current.Left} {
		if child == nil {
			continue
		}
		p.emit(child, Queued, fmt.Sprintf("pushed node %d onto stack", child.Value))
		p.stack = append(p.stack, child)
	}
}
