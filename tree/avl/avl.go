// Package avl builds height-balanced binary search trees.
package avl

import (
	"go.lepak.sg/treesim/tree"
)

// AVL is a self-balancing binary search tree.
// Heights are not cached on the nodes, they are recomputed from the
// subtrees whenever a balance factor is needed.
// Inserting a value that is already present does nothing.
//
// The zero AVL may be used immediately.
type AVL struct {
	root *tree.Node
	ids  tree.IDs
}

// Build inserts values into an empty AVL in order and returns its root.
func Build(values []int) *tree.Node {
	var t AVL
	for _, v := range values {
		t.Insert(v)
	}

	return t.root
}

// Root returns the root of the tree, or nil if nothing was inserted.
func (t *AVL) Root() *tree.Node {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *AVL) Len() int {
	return t.ids.Issued()
}

// Contains searches for v in the tree and returns true if it was found.
func (t *AVL) Contains(v int) bool {
	n := t.root
	for n != nil {
		switch tree.Compare(v, n.Value) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Insert inserts v and rebalances the tree.
// If v is already in the tree, Insert returns false.
func (t *AVL) Insert(v int) bool {
	before := t.ids.Issued()
	t.root = t.insert(t.root, v)

	return t.ids.Issued() != before
}

// insert returns the root of the subtree after inserting v below n.
func (t *AVL) insert(n *tree.Node, v int) *tree.Node {
	if n == nil {
		return t.ids.NodeOf(v)
	}

	switch tree.Compare(v, n.Value) {
	case tree.Less:
		n.Left = t.insert(n.Left, v)
	case tree.Greater:
		n.Right = t.insert(n.Right, v)
	case tree.Equal:
		return n
	default:
		panic("unreachable")
	}

	balance := tree.Balance(n)

	switch {
	case balance > 1 && v < n.Left.Value:
		// left-left
		return tree.RotateRight(n)
	case balance < -1 && v > n.Right.Value:
		// right-right
		return tree.RotateLeft(n)
	case balance > 1 && v > n.Left.Value:
		// left-right
		n.Left = tree.RotateLeft(n.Left)
		return tree.RotateRight(n)
	case balance < -1 && v < n.Right.Value:
		// right-left
		n.Right = tree.RotateRight(n.Right)
		return tree.RotateLeft(n)
	}

	return n
}
