package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/treesim/tree"
)

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node
		target Target
		post   func(t *testing.T, seq Sequencer)
	}{
		{
			name: "empty",
			create: func() *tree.Node {
				return nil
			},
			target: Find(3),
			post: func(t *testing.T, seq Sequencer) {
				assert.False(t, seq.Next(), "first")
				assert.False(t, seq.Next(), "second")
			},
		},
		{
			name: "one",
			create: func() *tree.Node {
				return tree.FromLevelOrder([]int{1})
			},
			post: func(t *testing.T, seq Sequencer) {
				assert.True(t, seq.Next(), "first")
				assert.Equal(t, Step{0, Active, "visiting node 1 (inorder)"}, seq.Item())
				assert.True(t, seq.Next(), "second")
				assert.Equal(t, Step{0, Visited, "visited node 1"}, seq.Item())
				assert.False(t, seq.Next(), "third")
			},
		},
		{
			name:   "height=3",
			create: newCompleteTree_3Tall,
			post: func(t *testing.T, seq Sequencer) {
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, visitedValues(newCompleteTree_3Tall(), Collect(seq)))
			},
		},
		{
			name: "dogleg",
			create: func() *tree.Node {
				// 8 -> (5 -> (1, 7 -> (6, _)), 9)
				var ids tree.IDs
				root := ids.NodeOf(8)
				root.Left = ids.NodeOf(5)
				root.Right = ids.NodeOf(9)
				root.Left.Left = ids.NodeOf(1)
				root.Left.Right = ids.NodeOf(7)
				root.Left.Right.Left = ids.NodeOf(6)
				return root
			},
			post: func(t *testing.T, seq Sequencer) {
				steps := Collect(seq)
				assert.Len(t, steps, 12)
				assert.Equal(t, []int{3, 1, 5, 4, 0, 2}, visitedIDs(steps))
			},
		},
		{
			name:   "found unwinds",
			create: newCompleteTree_3Tall,
			target: Find(3),
			post: func(t *testing.T, seq Sequencer) {
				steps := Collect(seq)
				// 1 and 2 are visited, then 3 is found
				assert.Len(t, steps, 6)
				assert.Equal(t, Step{4, Found, "found target 3, stopping"}, steps[5])
				assert.False(t, seq.Next())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, New(tt.create(), InOrder, tt.target))
		})
	}
}

// newCompleteTree_3Tall builds
//
//	   4
//	 2   6
//	1 3 5 7
//
// with ids 0..6 in level order.
func newCompleteTree_3Tall() *tree.Node {
	return tree.FromLevelOrder([]int{4, 2, 6, 1, 3, 5, 7})
}
