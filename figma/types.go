// Package figma defines a strongly typed model for Figma REST API documents
// and the helpers working on top of it (ingestion, collection, inspection,
// API access).
package figma

// Type definitions for the document tree returned by the files endpoint.

// NodeKind classifies document nodes. Kinds the API may add later are
// normalized to NodeGeneric at ingestion and rendered as plain containers.
type NodeKind int

const (
	NodeGeneric NodeKind = iota
	NodeDocument
	NodeCanvas
	NodeFrame
	NodeGroup
	NodeVector
	NodeBooleanOperation
	NodeStar
	NodeLine
	NodeEllipse
	NodeRegularPolygon
	NodeRectangle
	NodeText
	NodeSlice
	NodeComponent
	NodeComponentSet
	NodeInstance
)

var nodeKinds = map[string]NodeKind{
	"DOCUMENT":          NodeDocument,
	"CANVAS":            NodeCanvas,
	"FRAME":             NodeFrame,
	"GROUP":             NodeGroup,
	"VECTOR":            NodeVector,
	"BOOLEAN_OPERATION": NodeBooleanOperation,
	"STAR":              NodeStar,
	"LINE":              NodeLine,
	"ELLIPSE":           NodeEllipse,
	"REGULAR_POLYGON":   NodeRegularPolygon,
	"RECTANGLE":         NodeRectangle,
	"TEXT":              NodeText,
	"SLICE":             NodeSlice,
	"COMPONENT":         NodeComponent,
	"COMPONENT_SET":     NodeComponentSet,
	"INSTANCE":          NodeInstance,
}

// ParseNodeKind maps the wire type discriminator to a NodeKind. Unknown
// values yield NodeGeneric.
func ParseNodeKind(s string) NodeKind {
	if k, ok := nodeKinds[s]; ok {
		return k
	}
	return NodeGeneric
}

// PaintKind classifies fill and stroke sources.
type PaintKind int

const (
	PaintOther PaintKind = iota
	PaintSolid
	PaintLinearGradient
	PaintImage
)

func parsePaintKind(s string) PaintKind {
	switch s {
	case "SOLID":
		return PaintSolid
	case "GRADIENT_LINEAR":
		return PaintLinearGradient
	case "IMAGE":
		return PaintImage
	default:
		return PaintOther
	}
}

// EffectKind classifies visual post-processing effects.
type EffectKind int

const (
	EffectOther EffectKind = iota
	EffectDropShadow
	EffectInnerShadow
	EffectLayerBlur
)

func parseEffectKind(s string) EffectKind {
	switch s {
	case "DROP_SHADOW":
		return EffectDropShadow
	case "INNER_SHADOW":
		return EffectInnerShadow
	case "LAYER_BLUR":
		return EffectLayerBlur
	default:
		return EffectOther
	}
}

// File is one fetched document snapshot. The tree is read-only after
// ingestion.
type File struct {
	Name     string
	Document Node
}

// Rect is an axis-aligned bounding box in absolute document coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Vector is a 2D point, used for effect offsets and gradient handles.
type Vector struct {
	X float64
	Y float64
}

// Color holds normalized RGBA channels. Values are conceptually in [0,1]
// but are never clamped - out of range input passes through arithmetically.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// GradientStop is one color stop of a gradient paint, position in [0,1].
type GradientStop struct {
	Color    Color
	Position float64
}

// Paint is a single fill or stroke source.
type Paint struct {
	Kind            PaintKind
	Visible         bool
	Opacity         float64 // multiplies the paint's own alpha, default 1
	Color           *Color  // solid paints only
	GradientStops   []GradientStop
	GradientHandles []Vector // first two define the gradient axis
}

// Effect is a single visual effect entry.
type Effect struct {
	Kind    EffectKind
	Visible bool
	Offset  Vector
	Radius  float64
	Spread  float64
	Color   Color
}

// CornerRadii is the canonical per-corner rounding resolved once at
// ingestion from the three wire representations Figma historically used.
// Corner order is top-left, top-right, bottom-right, bottom-left.
type CornerRadii struct {
	Present bool
	Corners [4]float64
}

// Uniform reports whether all four corners carry the same value.
func (r CornerRadii) Uniform() bool {
	c := r.Corners
	return c[0] == c[1] && c[1] == c[2] && c[2] == c[3]
}

// TextStyle carries typography attributes of a text node. Optional wire
// fields stay pointers so the converter can distinguish absent from zero.
type TextStyle struct {
	FontFamily          string
	FontSize            float64
	FontWeight          float64
	LineHeightPx        *float64
	LineHeightPercent   *float64
	LetterSpacing       *float64
	TextAlignHorizontal string
	TextDecoration      string
	TextCase            string
}

// Node is one element of the document tree.
type Node struct {
	ID      string
	Name    string
	Type    string // raw wire discriminator, kept for CSS class naming
	Kind    NodeKind
	Visible bool
	Box     *Rect // nil when the API omits geometry
	Opacity float64

	Fills        []Paint
	Strokes      []Paint
	StrokeWeight float64 // shared by all strokes, default 1
	Effects      []Effect
	Radii        CornerRadii

	// text nodes only
	Characters string
	Style      *TextStyle

	Children []Node
}
