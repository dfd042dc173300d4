// Package build turns a list of values into a tree using one of
// several structural patterns.
package build

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"go.lepak.sg/treesim/sample"
	"go.lepak.sg/treesim/tree"
	"go.lepak.sg/treesim/tree/avl"
	"go.lepak.sg/treesim/tree/binary"
	"go.lepak.sg/treesim/tree/heap"
)

// Pattern identifies a tree building policy.
type Pattern int

const (
	// Random fills values in level order without comparing them.
	Random Pattern = iota
	// BinarySearchTree inserts values into an unbalanced BST.
	BinarySearchTree
	// AVLTree inserts values into a self-balancing BST.
	AVLTree
	// RedBlackTree is built exactly like BinarySearchTree.
	// No colours are tracked and the result is not rebalanced.
	RedBlackTree
	// MinHeap heapifies values so every parent <= its children.
	MinHeap
	// MaxHeap heapifies values so every parent >= its children.
	MaxHeap
)

// ErrUnknownPattern is returned by ParsePattern for unrecognised names.
var ErrUnknownPattern = errors.New("unknown pattern")

var patternNames = [...]string{
	Random:           "random",
	BinarySearchTree: "binary-search-tree",
	AVLTree:          "avl-tree",
	RedBlackTree:     "red-black-tree",
	MinHeap:          "min-heap",
	MaxHeap:          "max-heap",
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return "<invalid build.Pattern>"
	}
	return patternNames[p]
}

// Patterns returns every Pattern in declaration order.
func Patterns() []Pattern {
	ps := make([]Pattern, len(patternNames))
	for i := range patternNames {
		ps[i] = Pattern(i)
	}
	return ps
}

// ParsePattern returns the Pattern whose String is name.
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownPattern, "%q", name)
}

// Build builds a tree from values using pattern p.
// It returns nil if values is empty.
// Node ids start at 0 and follow creation order, which is level order
// for Random and the heaps, and insertion order for the search trees.
func Build(p Pattern, values []int) *tree.Node {
	switch p {
	case Random:
		return tree.FromLevelOrder(values)
	case BinarySearchTree, RedBlackTree:
		return binary.Build(values)
	case AVLTree:
		return avl.Build(values)
	case MinHeap:
		return heap.Build(values, heap.Min)
	case MaxHeap:
		return heap.Build(values, heap.Max)
	default:
		panic(errors.AssertionFailedf("unhandled pattern %d", p))
	}
}

// Generate samples size distinct values with rd and builds them with p.
// The caller keeps size in a sensible range; 5 to 50 is what the
// simulator offers.
func Generate(rd *rand.Rand, p Pattern, size int) *tree.Node {
	return Build(p, sample.Values(rd, size))
}
