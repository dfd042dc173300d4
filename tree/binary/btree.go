// Package binary builds unbalanced binary search trees.
package binary

import (
	"go.lepak.sg/treesim/tree"
)

// Tree is a binary search tree that allows duplicate values.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree implementation does not support removal. It is also not
// self-balancing.
//
// Invariants:
//   - At any node N in the tree, all values in the subtree rooted at N.Left
//     will be less than N.Value
//   - At any node N in the tree, all values in the subtree rooted at N.Right
//     will be greater than or equal to N.Value
//   - Node ids are handed out in insertion order, starting from 0
type Tree struct {
	root *tree.Node
	ids  tree.IDs
}

// Build inserts values into an empty Tree in order and returns its root.
func Build(values []int) *tree.Node {
	var t Tree
	for _, v := range values {
		t.Insert(v)
	}

	return t.root
}

// Root returns the root of the tree, or nil if nothing was inserted.
func (t *Tree) Root() *tree.Node {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.ids.Issued()
}

// Contains searches for v in the tree and returns true if it was found.
func (t *Tree) Contains(v int) bool {
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

// Insert inserts v into the binary tree and returns the new node.
// A value equal to an existing one is placed in that node's right subtree.
func (t *Tree) Insert(v int) *tree.Node {
	newnode := t.ids.NodeOf(v)

	if t.root == nil {
		t.root = newnode
		return newnode
	}

	n, p := t.root, (*tree.Node)(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(v, n.Value)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater, tree.Equal:
			n, p = n.Right, n
		default:
			panic("unreachable")
		}
	}

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case tree.Greater, tree.Equal:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	return newnode
}
