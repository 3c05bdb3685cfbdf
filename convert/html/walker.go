package html

import (
	"fmt"
	"strings"

	"figc/figma"
)

// Recursive tree walk. Each node is entered once; positions are computed
// relative to the reference box passed down from the parent, never against
// the document origin. Depth is threaded through for collaborators that
// depth-limit their own traversals; the engine itself never truncates.

// NodeToHTML converts a node subtree into a markup fragment. parentBox is
// the reference box for relative positioning; nil establishes the node's own
// box as the reference, placing it at origin.
func (g *Generator) NodeToHTML(n *figma.Node, parentBox *figma.Rect, depth int) string {
	// invisible subtrees contribute nothing
	if !n.Visible {
		return ""
	}

	// A node without geometry is a transparent pass-through: children keep
	// the current reference box and depth, no wrapper element is emitted.
	if n.Box == nil {
		var parts []string
		for i := range n.Children {
			if h := g.NodeToHTML(&n.Children[i], parentBox, depth); h != "" {
				parts = append(parts, h)
			}
		}
		return strings.Join(parts, "\n")
	}

	box := n.Box
	if parentBox == nil {
		parentBox = box
	}
	relX := box.X - parentBox.X
	relY := box.Y - parentBox.Y

	var styles styleList
	styles.add("position", "absolute")
	styles.add("left", px(relX))
	styles.add("top", px(relY))
	styles.add("width", px(box.Width))
	styles.add("height", px(box.Height))

	if n.Kind == figma.NodeText {
		return g.textNodeHTML(n, styles)
	}
	return g.containerNodeHTML(n, box, styles, depth)
}

func (g *Generator) textNodeHTML(n *figma.Node, styles styleList) string {
	styles = append(styles, g.textStyles(n)...)

	// Solid fills are reserved for the foreground text color; anything else
	// (gradient, image) doubles as a background.
	if len(n.Fills) > 0 && n.Fills[0].Kind != figma.PaintSolid {
		if bg := g.fillCSS(n.Fills, n.ID); bg != noPaint {
			styles.add("background", bg)
		}
	}

	if len(n.Effects) > 0 {
		if shadows := shadowsOnly(effectsCSS(n.Effects)); len(shadows) > 0 {
			styles.add("text-shadow", strings.Join(shadows, ", "))
		}
	}

	return fmt.Sprintf(`<div class="text-node" style="%s">%s</div>`, styles, n.Characters)
}

func (g *Generator) containerNodeHTML(n *figma.Node, box *figma.Rect, styles styleList, depth int) string {
	if len(n.Fills) > 0 {
		styles.add("background", g.fillCSS(n.Fills, n.ID))
	}

	if bw, bs, bc := borderCSS(n); bw != "" {
		styles.add("border", bw+" "+bs+" "+bc)
	}

	if radius := radiusCSS(n.Radii); radius != "0px" {
		styles.add("border-radius", radius)
		// keep children from breaking the rounded silhouette
		styles.add("overflow", "hidden")
	}

	if len(n.Effects) > 0 {
		if shadows := shadowsOnly(effectsCSS(n.Effects)); len(shadows) > 0 {
			styles.add("box-shadow", strings.Join(shadows, ", "))
		}
	}

	if n.Opacity < 1.0 {
		styles.add("opacity", formatNumber(n.Opacity))
	}

	var children []string
	for i := range n.Children {
		if h := g.NodeToHTML(&n.Children[i], box, depth+1); h != "" {
			children = append(children, h)
		}
	}

	class := strings.ToLower(n.Type) + "-node"
	if len(children) > 0 {
		return fmt.Sprintf("<div class=\"%s\" style=\"%s\">\n%s\n</div>", class, styles, strings.Join(children, "\n"))
	}
	return fmt.Sprintf(`<div class="%s" style="%s"></div>`, class, styles)
}
