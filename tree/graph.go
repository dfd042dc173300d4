package tree

import "strconv"

// GraphNode is a node as a renderer sees it.
// Level is the depth of the node, the root being level 0.
type GraphNode struct {
	ID    int    `yaml:"id"`
	Label string `yaml:"label"`
	Level int    `yaml:"level"`
}

// Edge connects a parent to one of its children.
type Edge struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Graph is a flat node and edge list describing a tree.
type Graph struct {
	Nodes []GraphNode `yaml:"nodes"`
	Edges []Edge      `yaml:"edges"`
}

// ToGraph flattens the tree rooted at root in breadth-first order.
// Left edges come before right edges.
func ToGraph(root *Node) Graph {
	var g Graph
	if root == nil {
		return g
	}

	type leveled struct {
		n     *Node
		level int
	}

	queue := []leveled{{root, 0}}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]

		g.Nodes = append(g.Nodes, GraphNode{
			ID:    at.n.ID,
			Label: strconv.Itoa(at.n.Value),
			Level: at.level,
		})

		for _, child := range [...]*Node{at.n.Left, at.n.Right} {
			if child == nil {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: at.n.ID, To: child.ID})
			queue = append(queue, leveled{child, at.level + 1})
		}
	}

	return g
}
