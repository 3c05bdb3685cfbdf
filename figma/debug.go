package figma

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Tree renderer for manual inspection of fetched documents. Depth and child
// limits keep output manageable on large files; the converter itself never
// limits its own traversal.

// RenderTree returns a readable tree of the node and its descendants down to
// maxDepth levels, showing at most maxChildren children per node. Zero or
// negative limits disable the respective cutoff.
func RenderTree(n *Node, maxDepth, maxChildren int) string {
	tree := treeprint.New()
	tree.SetValue(describeNode(n))
	addChildren(tree, n, 1, maxDepth, maxChildren)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *Node, depth, maxDepth, maxChildren int) {
	if maxDepth > 0 && depth > maxDepth {
		if len(n.Children) > 0 {
			tree.AddNode(fmt.Sprintf("... %d more levels omitted", subtreeDepth(n)))
		}
		return
	}
	for i := range n.Children {
		if maxChildren > 0 && i >= maxChildren {
			tree.AddNode(fmt.Sprintf("... %d more children omitted", len(n.Children)-i))
			return
		}
		child := &n.Children[i]
		if len(child.Children) > 0 {
			branch := tree.AddBranch(describeNode(child))
			addChildren(branch, child, depth+1, maxDepth, maxChildren)
		} else {
			tree.AddNode(describeNode(child))
		}
	}
}

func subtreeDepth(n *Node) int {
	max := 0
	for i := range n.Children {
		if d := subtreeDepth(&n.Children[i]); d > max {
			max = d
		}
	}
	return max + 1
}

func describeNode(n *Node) string {
	var b strings.Builder

	name := n.Name
	if name == "" {
		name = "Unnamed"
	}
	fmt.Fprintf(&b, "%s: %s", n.Type, name)

	if n.Box != nil {
		fmt.Fprintf(&b, " [%gx%g]", n.Box.Width, n.Box.Height)
	}
	if !n.Visible {
		b.WriteString(" (hidden)")
	}
	if n.Radii.Present {
		if n.Radii.Uniform() {
			fmt.Fprintf(&b, " radius=%g", n.Radii.Corners[0])
		} else {
			c := n.Radii.Corners
			fmt.Fprintf(&b, " radius=%g/%g/%g/%g", c[0], c[1], c[2], c[3])
		}
	}
	if len(n.Fills) > 0 {
		fmt.Fprintf(&b, " fills=%d", len(n.Fills))
	}
	if len(n.Strokes) > 0 {
		fmt.Fprintf(&b, " strokes=%d", len(n.Strokes))
	}
	if len(n.Effects) > 0 {
		fmt.Fprintf(&b, " effects=%d", len(n.Effects))
	}
	return b.String()
}
