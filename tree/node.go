// Package tree contains the binary tree node shared by all
// tree building policies and traversals.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Children are owned exclusively by their
// parent; there are no parent pointers.
// ID and Value never change after the node is created.
type Node struct {
	ID          int
	Value       int
	Left, Right *Node
}

// IDs hands out node ids in creation order, starting from 0.
// The zero IDs is ready to use.
type IDs struct {
	next int
}

// NodeOf creates a childless node holding v with the next free id.
func (ids *IDs) NodeOf(v int) *Node {
	n := &Node{
		ID:    ids.next,
		Value: v,
	}
	ids.next++

	return n
}

// Issued returns the number of ids handed out so far.
func (ids *IDs) Issued() int {
	return ids.next
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Height returns the number of nodes on the longest path from n
// down to a leaf. The empty tree has height 0.
func Height(n *Node) int {
	if n == nil {
		return 0
	}

	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balance returns Height(n.Left) - Height(n.Right), or 0 for nil.
func Balance(n *Node) int {
	if n == nil {
		return 0
	}

	return Height(n.Left) - Height(n.Right)
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + Count(n.Left) + Count(n.Right)
}
