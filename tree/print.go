package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns a string representation of the tree rooted at n, one
// value per line. A complete binary tree with height 3 looks like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func String(n *Node) string {
	return Format(n, func(n *Node) string {
		return strconv.Itoa(n.Value)
	})
}

// StringIDs is like String but labels every node value#id, so that steps
// naming node ids can be matched to the drawing.
func StringIDs(n *Node) string {
	return Format(n, func(n *Node) string {
		return fmt.Sprintf("%d#%d", n.Value, n.ID)
	})
}

const (
	midEdge    = "├─"
	lastEdge   = "└─"
	leftMark   = "L─"
	rightMark  = "R─"
	midIndent  = "│   "
	lastIndent = "    "
)

// Format draws the tree rooted at n in preorder, labelling each node
// with label. The empty tree is the empty string.
func Format(n *Node, label func(*Node) string) string {
	if n == nil {
		return ""
	}

	// line is a node waiting to be drawn. edge is what goes before its
	// label, indent what goes before its children's edges.
	type line struct {
		n      *Node
		edge   string
		indent string
	}

	var sb strings.Builder
	stack := []line{{n: n}}

	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(at.edge)
		sb.WriteString(label(at.n))
		sb.WriteByte('\n')

		// right goes on the stack first so left is drawn first
		if r := at.n.Right; r != nil {
			stack = append(stack, line{
				n:      r,
				edge:   at.indent + lastEdge + rightMark,
				indent: at.indent + lastIndent,
			})
		}
		if l := at.n.Left; l != nil {
			edge, indent := lastEdge, lastIndent
			if at.n.Right != nil {
				edge, indent = midEdge, midIndent
			}
			stack = append(stack, line{
				n:      l,
				edge:   at.indent + edge + leftMark,
				indent: at.indent + indent,
			})
		}
	}

	return sb.String()
}
