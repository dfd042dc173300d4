package traverse

import (
	"fmt"

	"go.lepak.sg/treesim/tree"
)

var _ Sequencer = (*bfs)(nil)

// bfs walks the tree level by level with a FIFO queue.
// Each child gets a Queued step when it joins the queue.
type bfs struct {
	emitter
	queue []*tree.Node
}

func newBFS(root *tree.Node, target Target) *bfs {
	b := &bfs{emitter: emitter{target: target}}
	if root != nil {
		b.queue = append(b.queue, root)
	}

	return b
}

func (b *bfs) Next() bool {
	return b.advance(b.work)
}

func (b *bfs) work() {
	if len(b.queue) == 0 {
		b.finish()
		return
	}

	current := b.queue[0]
	b.queue = b.queue[1:]

	if b.visit(current, fmt.Sprintf("visiting node %d", current.Value)) {
		b.queue = nil
		return
	}

	for _, child := range [...]*tree.Node{current.Left, current.Right} {
		if child == nil {
			continue
		}
		b.emit(child, Queued, fmt.Sprintf("queued node %d", child.Value))
		b.queue = append(b.queue, child)
	}
}
