package heap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"go.lepak.sg/treesim/tree"
)

func TestHeapify(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		kind   Kind
		want   []int
	}{
		{
			name: "empty",
			kind: Min,
			want: []int{},
		},
		{
			name:   "min",
			values: []int{5, 3, 8, 1, 9, 2},
			kind:   Min,
			want:   []int{1, 3, 2, 5, 9, 8},
		},
		{
			name:   "max",
			values: []int{5, 3, 8, 1, 9, 2},
			kind:   Max,
			want:   []int{9, 5, 8, 1, 3, 2},
		},
		{
			name:   "already a min heap",
			values: []int{1, 2, 3},
			kind:   Min,
			want:   []int{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.values)

			got := Heapify(tt.values, tt.kind)

			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, orig, tt.values, "input was mutated")
		})
	}
}

func TestBuild(t *testing.T) {
	rd := rand.New(rand.NewSource(99))

	for _, k := range []Kind{Min, Max} {
		t.Run(k.String(), func(t *testing.T) {
			for round := 0; round < 20; round++ {
				values := rd.Perm(5 + round)
				root := Build(values, k)

				require.Equal(t, len(values), tree.Count(root))
				assertHeap(t, root, k)
			}
		})
	}
}

func TestBuild_Shape(t *testing.T) {
	root := Build([]int{5, 3, 8, 1, 9, 2}, Min)

	assert.Equal(t, "1\n├─L─3\n│   ├─L─5\n│   └─R─9\n└─R─2\n    └─L─8\n", tree.String(root))
	assert.Equal(t, 0, root.ID)
	assert.Equal(t, 5, root.Right.Left.ID)
	assert.Nil(t, Build(nil, Max))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "min", Min.String())
	assert.Equal(t, "max", Max.String())
	assert.Equal(t, "<invalid heap.Kind>", Kind(7).String())
}

func assertHeap(t *testing.T, n *tree.Node, k Kind) {
	t.Helper()
	if n == nil {
		return
	}

	for _, child := range []*tree.Node{n.Left, n.Right} {
		if child != nil {
			assert.False(t, k.before(child.Value, n.Value),
				"%s heap broken between %d and child %d", k, n.Value, child.Value)
			assertHeap(t, child, k)
		}
	}
}
