package html

import (
	"fmt"
	"math"
	"strings"

	"figc/figma"
)

// Style resolvers: pure derivations from a single node's properties to CSS
// rule values. Known simplifications are preserved on purpose for output
// parity: only the first visible fill is used, stroke style is always solid,
// gradient stops are trusted to arrive ordered.

// noPaint is the token for "nothing to paint".
const noPaint = "transparent"

// fillCSS resolves a fill list to a CSS background value. nodeID keys the
// externally resolved image URL map for image fills.
func (g *Generator) fillCSS(fills []figma.Paint, nodeID string) string {
	var fill *figma.Paint
	for i := range fills {
		if fills[i].Visible {
			fill = &fills[i]
			break
		}
	}
	if fill == nil {
		return noPaint
	}

	switch fill.Kind {
	case figma.PaintSolid:
		var c figma.Color
		if fill.Color != nil {
			c = *fill.Color
		}
		c.A *= fill.Opacity
		return cssColor(c)
	case figma.PaintLinearGradient:
		return gradientCSS(fill)
	case figma.PaintImage:
		if url, ok := g.images[nodeID]; ok {
			return fmt.Sprintf("url('%s')", url)
		}
		return g.opts.Placeholder
	default:
		return noPaint
	}
}

// gradientCSS renders a linear gradient. The first two handle positions
// define the axis; Figma's axis convention is rotated 90 degrees from the
// CSS angle convention.
func gradientCSS(fill *figma.Paint) string {
	if len(fill.GradientHandles) < 2 {
		return noPaint
	}

	h1, h2 := fill.GradientHandles[0], fill.GradientHandles[1]
	angle := math.Atan2(h2.Y-h1.Y, h2.X-h1.X)*180/math.Pi + 90

	stops := make([]string, 0, len(fill.GradientStops))
	for _, s := range fill.GradientStops {
		stops = append(stops, fmt.Sprintf("%s %.1f%%", cssColor(s.Color), s.Position*100))
	}
	return fmt.Sprintf("linear-gradient(%.1fdeg, %s)", angle, strings.Join(stops, ", "))
}

// borderCSS derives the border triple from the node's strokes. An empty
// width signals "no border". The node-level stroke weight is shared by all
// strokes and dashed/dotted strokes are not distinguished.
func borderCSS(n *figma.Node) (width, style, color string) {
	var stroke *figma.Paint
	for i := range n.Strokes {
		if n.Strokes[i].Visible {
			stroke = &n.Strokes[i]
			break
		}
	}
	if stroke == nil {
		return "", "", ""
	}

	width = px(n.StrokeWeight)
	style = "solid"

	if stroke.Kind == figma.PaintSolid {
		var c figma.Color
		if stroke.Color != nil {
			c = *stroke.Color
		}
		c.A *= stroke.Opacity
		color = cssColor(c)
	} else {
		color = "#000000"
	}
	return width, style, color
}

// radiusCSS renders the resolved corner radii. Equal corners collapse to the
// single-value form; absence of any radius yields the zero-length token.
func radiusCSS(r figma.CornerRadii) string {
	if !r.Present {
		return "0px"
	}
	c := r.Corners
	if r.Uniform() {
		if c[0] == 0 {
			return "0px"
		}
		return px(c[0])
	}
	return fmt.Sprintf("%s %s %s %s", px(c[0]), px(c[1]), px(c[2]), px(c[3]))
}

// effectsCSS renders visible effects as independent tokens. Shadow and blur
// tokens are mixed; consumers filter with shadowsOnly as needed.
func effectsCSS(effects []figma.Effect) []string {
	var tokens []string
	for i := range effects {
		e := &effects[i]
		if !e.Visible {
			continue
		}
		switch e.Kind {
		case figma.EffectDropShadow, figma.EffectInnerShadow:
			shadow := fmt.Sprintf("%s %s %s %s %s",
				px(e.Offset.X), px(e.Offset.Y), px(e.Radius), px(e.Spread), cssColor(e.Color))
			if e.Kind == figma.EffectInnerShadow {
				shadow = "inset " + shadow
			}
			tokens = append(tokens, shadow)
		case figma.EffectLayerBlur:
			tokens = append(tokens, fmt.Sprintf("blur(%s)", px(e.Radius)))
		}
	}
	return tokens
}

// shadowsOnly filters blur tokens out of an effect token list; box-shadow
// and text-shadow cannot carry blur functions.
func shadowsOnly(tokens []string) []string {
	var shadows []string
	for _, t := range tokens {
		if !strings.Contains(t, "blur") {
			shadows = append(shadows, t)
		}
	}
	return shadows
}

// textStyles derives typography declarations from a text node. Referenced
// font families are tracked for the document-level font link.
func (g *Generator) textStyles(n *figma.Node) styleList {
	style := n.Style
	if style == nil {
		style = &figma.TextStyle{FontSize: 16, FontWeight: 400}
	}

	var styles styleList

	family := style.FontFamily
	if family == "" {
		family = g.opts.FallbackFont
	}
	g.fonts.add(family)
	styles.add("font-family", fmt.Sprintf("'%s', sans-serif", family))

	styles.add("font-size", px(style.FontSize))
	styles.add("font-weight", formatNumber(style.FontWeight))

	switch {
	case style.LineHeightPx != nil:
		styles.add("line-height", px(*style.LineHeightPx))
	case style.LineHeightPercent != nil:
		styles.add("line-height", formatNumber(*style.LineHeightPercent)+"%")
	}

	if style.LetterSpacing != nil {
		styles.add("letter-spacing", px(*style.LetterSpacing))
	}

	align := strings.ToLower(style.TextAlignHorizontal)
	if align == "" {
		align = "left"
	}
	// schema says JUSTIFIED, CSS says justify
	if align == "justified" {
		align = "justify"
	}
	styles.add("text-align", align)

	switch style.TextDecoration {
	case "UNDERLINE":
		styles.add("text-decoration", "underline")
	case "STRIKETHROUGH":
		styles.add("text-decoration", "line-through")
	}

	switch style.TextCase {
	case "UPPER":
		styles.add("text-transform", "uppercase")
	case "LOWER":
		styles.add("text-transform", "lowercase")
	case "TITLE":
		styles.add("text-transform", "capitalize")
	}

	if len(n.Fills) > 0 {
		styles.add("color", g.fillCSS(n.Fills, ""))
	}
	return styles
}
