package tree

// FromLevelOrder builds a tree by filling values in breadth-first,
// left child before right child. The first value becomes the root.
// Values are not compared, so the result has no ordering invariant, but
// it is always complete: the element at index i has its children at
// 2i+1 and 2i+2, and node ids equal those indices.
func FromLevelOrder(values []int) *Node {
	if len(values) == 0 {
		return nil
	}

	var ids IDs
	root := ids.NodeOf(values[0])

	queue := make([]*Node, 0, len(values))
	queue = append(queue, root)
	next := 1

	for len(queue) > 0 && next < len(values) {
		current := queue[0]
		queue = queue[1:]

		current.Left = ids.NodeOf(values[next])
		queue = append(queue, current.Left)
		next++

		if next < len(values) {
			current.Right = ids.NodeOf(values[next])
			queue = append(queue, current.Right)
			next++
		}
	}

	return root
}
