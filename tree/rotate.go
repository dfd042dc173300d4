package tree

// RotateLeft rotates n to the left and returns
// the Node that now occupies its old position.
// The caller must link the returned node into n's old parent.
// For example, this is the result of calling RotateLeft(n):
//
//	-> n            p
//	  / \          / \
//	 m   p   ->   n   q
//	    / \      / \
//	   o   q    m   o
//
// o may be nil. The ordering invariant m < n < o < p < q is always preserved.
func RotateLeft(n *Node) *Node {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p, o := n.Right, n.Right.Left

	n.Right = o
	p.Left = n

	return p
}

// RotateRight rotates n to the right and returns
// the Node that now occupies its old position.
// The caller must link the returned node into n's old parent.
// For example, this is the result of calling RotateRight(n):
//
//	 -> n            l
//	   / \          / \
//	  l   o   ->   k   n
//	 / \              / \
//	k   m            m   o
//
// m may be nil. The ordering invariant k < l < m < n < o is always preserved.
func RotateRight(n *Node) *Node {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateRight with nil left")
	}

	l, m := n.Left, n.Left.Right

	n.Left = m
	l.Right = n

	return l
}
