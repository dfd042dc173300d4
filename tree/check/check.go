// Package check validates the structural properties promised by each
// building pattern.
package check

import (
	"github.com/cockroachdb/errors"

	"go.lepak.sg/treesim/tree"
	"go.lepak.sg/treesim/tree/build"
)

// IDs checks that the tree has exactly n nodes and that their ids are
// exactly 0..n-1, each used once.
func IDs(root *tree.Node, n int) error {
	seen := make(map[int]bool, n)
	var err error

	walk(root, func(node *tree.Node) bool {
		if node.ID < 0 || node.ID >= n {
			err = errors.Newf("node id %d out of range [0, %d)", node.ID, n)
			return false
		}
		if seen[node.ID] {
			err = errors.Newf("node id %d used twice", node.ID)
			return false
		}
		seen[node.ID] = true
		return true
	})

	if err != nil {
		return err
	}

	if len(seen) != n {
		return errors.Newf("expected %d nodes, found %d", n, len(seen))
	}

	return nil
}

// SearchOrder checks that every left subtree holds values strictly less
// than its parent and every right subtree holds values not less than it.
func SearchOrder(root *tree.Node) error {
	return searchOrder(root, nil, nil)
}

// searchOrder checks n against the open lower bound lo (inclusive) and
// upper bound hi (exclusive) inherited from its ancestors.
func searchOrder(n *tree.Node, lo, hi *int) error {
	if n == nil {
		return nil
	}

	if lo != nil && n.Value < *lo {
		return errors.Newf("node %d: value %d below lower bound %d", n.ID, n.Value, *lo)
	}
	if hi != nil && n.Value >= *hi {
		return errors.Newf("node %d: value %d not below upper bound %d", n.ID, n.Value, *hi)
	}

	v := n.Value
	if err := searchOrder(n.Left, lo, &v); err != nil {
		return err
	}
	return searchOrder(n.Right, &v, hi)
}

// Balanced checks that no node's subtree heights differ by more than one.
func Balanced(root *tree.Node) error {
	var err error

	walk(root, func(n *tree.Node) bool {
		if b := tree.Balance(n); b < -1 || b > 1 {
			err = errors.Newf("node %d: balance factor %d", n.ID, b)
			return false
		}
		return true
	})

	return err
}

// HeapOrder checks that no child sorts before its parent.
// With max set, parents must be >= their children, otherwise <=.
func HeapOrder(root *tree.Node, max bool) error {
	var err error

	walk(root, func(n *tree.Node) bool {
		for _, c := range [...]*tree.Node{n.Left, n.Right} {
			if c == nil {
				continue
			}
			if (max && c.Value > n.Value) || (!max && c.Value < n.Value) {
				err = errors.Newf("node %d: child %d (value %d) breaks heap order under value %d",
					n.ID, c.ID, c.Value, n.Value)
				return false
			}
		}
		return true
	})

	return err
}

// Pattern runs every check that applies to trees built with p from n
// distinct values.
func Pattern(root *tree.Node, p build.Pattern, n int) error {
	if err := IDs(root, n); err != nil {
		return errors.Wrapf(err, "%s", p)
	}

	var err error
	switch p {
	case build.Random:
	case build.BinarySearchTree, build.RedBlackTree:
		err = SearchOrder(root)
	case build.AVLTree:
		err = SearchOrder(root)
		if err == nil {
			err = Balanced(root)
		}
	case build.MinHeap:
		err = HeapOrder(root, false)
	case build.MaxHeap:
		err = HeapOrder(root, true)
	default:
		panic("unreachable")
	}

	return errors.Wrapf(err, "%s", p)
}

// walk visits nodes in preorder until f returns false.
func walk(n *tree.Node, f func(*tree.Node) bool) bool {
	if n == nil {
		return true
	}

	if !f(n) {
		return false
	}

	return walk(n.Left, f) && walk(n.Right, f)
}
