// Package heap builds heap-ordered binary trees from array heaps.
package heap

import (
	"golang.org/x/exp/slices"

	"go.lepak.sg/treesim/tree"
)

// Kind selects which way the heap is ordered.
type Kind int

const (
	// Min heaps keep every parent <= its children.
	Min Kind = iota
	// Max heaps keep every parent >= its children.
	Max
)

func (k Kind) String() string {
	switch k {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "<invalid heap.Kind>"
	}
}

// before reports whether a should sit above b in a heap of this kind.
func (k Kind) before(a, b int) bool {
	switch k {
	case Min:
		return a < b
	case Max:
		return a > b
	default:
		panic("unreachable")
	}
}

// Heapify returns a copy of values rearranged into an array heap.
// values is not modified.
func Heapify(values []int, k Kind) []int {
	h := slices.Clone(values)

	for i := len(h)/2 - 1; i >= 0; i-- {
		siftDown(h, i, k)
	}

	return h
}

// siftDown moves h[i] down until neither child should sit above it.
func siftDown(h []int, i int, k Kind) {
	for {
		top := i
		l, r := 2*i+1, 2*i+2

		if l < len(h) && k.before(h[l], h[top]) {
			top = l
		}

		if r < len(h) && k.before(h[r], h[top]) {
			top = r
		}

		if top == i {
			return
		}

		h[i], h[top] = h[top], h[i]
		i = top
	}
}

// Build heapifies values and returns the heap as a linked tree.
// Node ids are array heap indices.
func Build(values []int, k Kind) *tree.Node {
	return tree.FromLevelOrder(Heapify(values, k))
}
