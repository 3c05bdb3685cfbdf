package figma

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// JSON ingestion for the files endpoint payload.
// We decode into loose wire structs first and then convert into the closed
// typed model in one pass, applying documented defaults and resolving the
// corner radius union once so the converter never probes raw keys.

type wireFile struct {
	Name     string    `json:"name"`
	Document *wireNode `json:"document"`
}

type wireRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type wireVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type wireColor struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a"`
}

type wireStop struct {
	Color    wireColor `json:"color"`
	Position float64   `json:"position"`
}

type wirePaint struct {
	Type                    string       `json:"type"`
	Visible                 *bool        `json:"visible"`
	Opacity                 *float64     `json:"opacity"`
	Color                   *wireColor   `json:"color"`
	GradientStops           []wireStop   `json:"gradientStops"`
	GradientHandlePositions []wireVector `json:"gradientHandlePositions"`
}

type wireEffect struct {
	Type    string      `json:"type"`
	Visible *bool       `json:"visible"`
	Offset  *wireVector `json:"offset"`
	Radius  float64     `json:"radius"`
	Spread  float64     `json:"spread"`
	Color   *wireColor  `json:"color"`
}

type wireStyle struct {
	FontFamily                string   `json:"fontFamily"`
	FontSize                  *float64 `json:"fontSize"`
	FontWeight                *float64 `json:"fontWeight"`
	LineHeightPx              *float64 `json:"lineHeightPx"`
	LineHeightPercentFontSize *float64 `json:"lineHeightPercentFontSize"`
	LetterSpacing             *float64 `json:"letterSpacing"`
	TextAlignHorizontal       string   `json:"textAlignHorizontal"`
	TextDecoration            string   `json:"textDecoration"`
	TextCase                  string   `json:"textCase"`
}

type wireNode struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Visible      *bool        `json:"visible"`
	Box          *wireRect    `json:"absoluteBoundingBox"`
	Opacity      *float64     `json:"opacity"`
	Fills        []wirePaint  `json:"fills"`
	Strokes      []wirePaint  `json:"strokes"`
	StrokeWeight *float64     `json:"strokeWeight"`
	Effects      []wireEffect `json:"effects"`
	Characters   string       `json:"characters"`
	Style        *wireStyle   `json:"style"`
	Children     []wireNode   `json:"children"`

	// The three historical corner radius representations, in precedence
	// order: uniform field, 4-element array, per-corner aliases.
	CornerRadius         *float64  `json:"cornerRadius"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii"`

	RectangleCornerTopLeftRadius     *float64 `json:"rectangleCornerTopLeftRadius"`
	TopLeftRadius                    *float64 `json:"topLeftRadius"`
	CornerTopLeftRadius              *float64 `json:"cornerTopLeftRadius"`
	RectangleCornerTopRightRadius    *float64 `json:"rectangleCornerTopRightRadius"`
	TopRightRadius                   *float64 `json:"topRightRadius"`
	CornerTopRightRadius             *float64 `json:"cornerTopRightRadius"`
	RectangleCornerBottomRightRadius *float64 `json:"rectangleCornerBottomRightRadius"`
	BottomRightRadius                *float64 `json:"bottomRightRadius"`
	CornerBottomRightRadius          *float64 `json:"cornerBottomRightRadius"`
	RectangleCornerBottomLeftRadius  *float64 `json:"rectangleCornerBottomLeftRadius"`
	BottomLeftRadius                 *float64 `json:"bottomLeftRadius"`
	CornerBottomLeftRadius           *float64 `json:"cornerBottomLeftRadius"`
}

// ParseFile converts a raw files endpoint payload into the typed model.
func ParseFile(data []byte, log *zap.Logger) (*File, error) {
	var wf wireFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("unable to decode file payload: %w", err)
	}
	if wf.Document == nil {
		return nil, fmt.Errorf("file payload has no document")
	}
	return &File{
		Name:     wf.Name,
		Document: convertNode(wf.Document, log),
	}, nil
}

func convertNode(w *wireNode, log *zap.Logger) Node {
	kind := ParseNodeKind(w.Type)
	if kind == NodeGeneric && log != nil {
		log.Debug("Unknown node kind, treating as generic container", zap.String("type", w.Type), zap.String("id", w.ID))
	}

	n := Node{
		ID:           w.ID,
		Name:         w.Name,
		Type:         w.Type,
		Kind:         kind,
		Visible:      boolOrDefault(w.Visible, true),
		Opacity:      floatOrDefault(w.Opacity, 1),
		StrokeWeight: floatOrDefault(w.StrokeWeight, 1),
		Characters:   w.Characters,
		Radii:        resolveRadii(w),
	}
	if w.Box != nil {
		n.Box = &Rect{X: w.Box.X, Y: w.Box.Y, Width: w.Box.Width, Height: w.Box.Height}
	}
	for i := range w.Fills {
		n.Fills = append(n.Fills, convertPaint(&w.Fills[i]))
	}
	for i := range w.Strokes {
		n.Strokes = append(n.Strokes, convertPaint(&w.Strokes[i]))
	}
	for i := range w.Effects {
		n.Effects = append(n.Effects, convertEffect(&w.Effects[i]))
	}
	if w.Style != nil {
		n.Style = convertStyle(w.Style)
	}
	if len(w.Children) > 0 {
		n.Children = make([]Node, 0, len(w.Children))
		for i := range w.Children {
			n.Children = append(n.Children, convertNode(&w.Children[i], log))
		}
	}
	return n
}

func convertPaint(w *wirePaint) Paint {
	p := Paint{
		Kind:    parsePaintKind(w.Type),
		Visible: boolOrDefault(w.Visible, true),
		Opacity: floatOrDefault(w.Opacity, 1),
	}
	if w.Color != nil {
		c := convertColor(w.Color)
		p.Color = &c
	}
	for _, s := range w.GradientStops {
		p.GradientStops = append(p.GradientStops, GradientStop{
			Color:    convertColor(&s.Color),
			Position: s.Position,
		})
	}
	for _, h := range w.GradientHandlePositions {
		p.GradientHandles = append(p.GradientHandles, Vector{X: h.X, Y: h.Y})
	}
	return p
}

func convertEffect(w *wireEffect) Effect {
	e := Effect{
		Kind:    parseEffectKind(w.Type),
		Visible: boolOrDefault(w.Visible, true),
		Radius:  w.Radius,
		Spread:  w.Spread,
	}
	if w.Offset != nil {
		e.Offset = Vector{X: w.Offset.X, Y: w.Offset.Y}
	}
	if w.Color != nil {
		e.Color = convertColor(w.Color)
	}
	return e
}

func convertStyle(w *wireStyle) *TextStyle {
	return &TextStyle{
		FontFamily:          w.FontFamily,
		FontSize:            floatOrDefault(w.FontSize, 16),
		FontWeight:          floatOrDefault(w.FontWeight, 400),
		LineHeightPx:        w.LineHeightPx,
		LineHeightPercent:   w.LineHeightPercentFontSize,
		LetterSpacing:       w.LetterSpacing,
		TextAlignHorizontal: w.TextAlignHorizontal,
		TextDecoration:      w.TextDecoration,
		TextCase:            w.TextCase,
	}
}

func convertColor(w *wireColor) Color {
	return Color{R: w.R, G: w.G, B: w.B, A: floatOrDefault(w.A, 1)}
}

// resolveRadii collapses the corner radius union into the canonical
// 4-corner value. Precedence: uniform field, then the 4-element array, then
// per-corner alias fields (each corner probed in fixed alias priority order,
// first present key wins).
func resolveRadii(w *wireNode) CornerRadii {
	if w.CornerRadius != nil {
		v := *w.CornerRadius
		return CornerRadii{Present: true, Corners: [4]float64{v, v, v, v}}
	}
	if len(w.RectangleCornerRadii) == 4 {
		var r CornerRadii
		r.Present = true
		copy(r.Corners[:], w.RectangleCornerRadii)
		return r
	}

	aliases := [4][]*float64{
		{w.RectangleCornerTopLeftRadius, w.TopLeftRadius, w.CornerTopLeftRadius},
		{w.RectangleCornerTopRightRadius, w.TopRightRadius, w.CornerTopRightRadius},
		{w.RectangleCornerBottomRightRadius, w.BottomRightRadius, w.CornerBottomRightRadius},
		{w.RectangleCornerBottomLeftRadius, w.BottomLeftRadius, w.CornerBottomLeftRadius},
	}

	var r CornerRadii
	for corner, names := range aliases {
		for _, v := range names {
			if v != nil {
				r.Corners[corner] = *v
				r.Present = true
				break
			}
		}
	}
	return r
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
