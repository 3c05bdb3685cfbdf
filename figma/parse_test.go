package figma

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseFile(t *testing.T) {
	payload := []byte(`{
		"name": "Design",
		"document": {
			"id": "0:0",
			"name": "Document",
			"type": "DOCUMENT",
			"children": [
				{
					"id": "1:1",
					"name": "Home",
					"type": "FRAME",
					"absoluteBoundingBox": {"x": 10, "y": 20, "width": 800, "height": 600},
					"fills": [
						{"type": "SOLID", "color": {"r": 1, "g": 0.5, "b": 0, "a": 0.8}}
					]
				}
			]
		}
	}`)

	f, err := ParseFile(payload, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Design" {
		t.Errorf("file name = %q", f.Name)
	}
	if f.Document.Kind != NodeDocument || len(f.Document.Children) != 1 {
		t.Fatalf("document not decoded: %+v", f.Document)
	}

	frame := f.Document.Children[0]
	if frame.Kind != NodeFrame || frame.Name != "Home" {
		t.Errorf("frame = %+v", frame)
	}
	if frame.Box == nil || frame.Box.X != 10 || frame.Box.Width != 800 {
		t.Errorf("bounding box = %+v", frame.Box)
	}
	if len(frame.Fills) != 1 {
		t.Fatalf("fills = %+v", frame.Fills)
	}
	fill := frame.Fills[0]
	if fill.Kind != PaintSolid || fill.Color == nil {
		t.Fatalf("fill = %+v", fill)
	}
	if fill.Color.G != 0.5 || fill.Color.A != 0.8 {
		t.Errorf("fill color = %+v", fill.Color)
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile([]byte(`{"name": "x"}`), nil); err == nil {
		t.Error("payload without a document must not parse")
	}
	if _, err := ParseFile([]byte(`not json`), nil); err == nil {
		t.Error("malformed payload must not parse")
	}
}

func TestParseFile_Defaults(t *testing.T) {
	payload := []byte(`{
		"name": "d",
		"document": {
			"id": "0:0",
			"type": "DOCUMENT",
			"children": [
				{
					"id": "1:1",
					"type": "TEXT",
					"characters": "hi",
					"style": {"fontFamily": "Inter"},
					"fills": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0}}]
				}
			]
		}
	}`)

	f, err := ParseFile(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := f.Document.Children[0]

	if !n.Visible {
		t.Error("visibility must default to true")
	}
	if n.Opacity != 1 {
		t.Errorf("opacity = %g, want default 1", n.Opacity)
	}
	if n.StrokeWeight != 1 {
		t.Errorf("strokeWeight = %g, want default 1", n.StrokeWeight)
	}
	if n.Style == nil || n.Style.FontSize != 16 || n.Style.FontWeight != 400 {
		t.Errorf("text style defaults not applied: %+v", n.Style)
	}
	if n.Style.LineHeightPx != nil || n.Style.LetterSpacing != nil {
		t.Errorf("absent style fields must stay unset: %+v", n.Style)
	}
	if n.Fills[0].Opacity != 1 {
		t.Errorf("paint opacity = %g, want default 1", n.Fills[0].Opacity)
	}
	if n.Fills[0].Color.A != 1 {
		t.Errorf("color alpha = %g, want default 1", n.Fills[0].Color.A)
	}
	if n.Radii.Present {
		t.Error("radii present without any radius key")
	}
}

func TestParseFile_ExplicitInvisible(t *testing.T) {
	payload := []byte(`{
		"name": "d",
		"document": {
			"id": "0:0",
			"type": "DOCUMENT",
			"children": [
				{"id": "1:1", "type": "RECTANGLE", "visible": false, "opacity": 0.3}
			]
		}
	}`)

	f, err := ParseFile(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := f.Document.Children[0]
	if n.Visible {
		t.Error("explicit visible=false lost")
	}
	if n.Opacity != 0.3 {
		t.Errorf("opacity = %g", n.Opacity)
	}
}

func TestParseFile_UnknownNodeType(t *testing.T) {
	payload := []byte(`{
		"name": "d",
		"document": {
			"id": "0:0",
			"type": "DOCUMENT",
			"children": [
				{"id": "1:1", "type": "WASHING_MACHINE", "children": [
					{"id": "1:2", "type": "FRAME"}
				]}
			]
		}
	}`)

	f, err := ParseFile(payload, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	n := f.Document.Children[0]
	if n.Kind != NodeGeneric {
		t.Errorf("unknown type must map to the generic kind, got %v", n.Kind)
	}
	if n.Type != "WASHING_MACHINE" {
		t.Errorf("original type string lost: %q", n.Type)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != NodeFrame {
		t.Error("children of a generic node must still be decoded")
	}
}

func TestResolveRadii(t *testing.T) {
	f10, f5 := 10.0, 5.0

	tests := []struct {
		name     string
		node     wireNode
		expected CornerRadii
	}{
		{
			name:     "none",
			node:     wireNode{},
			expected: CornerRadii{},
		},
		{
			name:     "uniform",
			node:     wireNode{CornerRadius: &f10},
			expected: CornerRadii{Present: true, Corners: [4]float64{10, 10, 10, 10}},
		},
		{
			name:     "uniform wins over array",
			node:     wireNode{CornerRadius: &f10, RectangleCornerRadii: []float64{1, 2, 3, 4}},
			expected: CornerRadii{Present: true, Corners: [4]float64{10, 10, 10, 10}},
		},
		{
			name:     "array",
			node:     wireNode{RectangleCornerRadii: []float64{1, 2, 3, 4}},
			expected: CornerRadii{Present: true, Corners: [4]float64{1, 2, 3, 4}},
		},
		{
			name:     "array of wrong size ignored",
			node:     wireNode{RectangleCornerRadii: []float64{1, 2}},
			expected: CornerRadii{},
		},
		{
			name:     "per-corner aliases",
			node:     wireNode{TopLeftRadius: &f10, CornerBottomRightRadius: &f5},
			expected: CornerRadii{Present: true, Corners: [4]float64{10, 0, 5, 0}},
		},
		{
			name:     "alias priority within one corner",
			node:     wireNode{RectangleCornerTopLeftRadius: &f10, TopLeftRadius: &f5},
			expected: CornerRadii{Present: true, Corners: [4]float64{10, 0, 0, 0}},
		},
		{
			name:     "array wins over aliases",
			node:     wireNode{RectangleCornerRadii: []float64{1, 2, 3, 4}, TopLeftRadius: &f10},
			expected: CornerRadii{Present: true, Corners: [4]float64{1, 2, 3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRadii(&tt.node); got != tt.expected {
				t.Errorf("resolveRadii() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCornerRadiiUniform(t *testing.T) {
	r := CornerRadii{Present: true, Corners: [4]float64{5, 5, 5, 5}}
	if !r.Uniform() {
		t.Error("equal corners must report uniform")
	}
	r.Corners[3] = 4
	if r.Uniform() {
		t.Error("unequal corners must not report uniform")
	}
}

func TestParsePaintAndEffectKinds(t *testing.T) {
	if parsePaintKind("SOLID") != PaintSolid ||
		parsePaintKind("GRADIENT_LINEAR") != PaintLinearGradient ||
		parsePaintKind("IMAGE") != PaintImage ||
		parsePaintKind("GRADIENT_RADIAL") != PaintOther {
		t.Error("paint kind mapping broken")
	}
	if parseEffectKind("DROP_SHADOW") != EffectDropShadow ||
		parseEffectKind("INNER_SHADOW") != EffectInnerShadow ||
		parseEffectKind("LAYER_BLUR") != EffectLayerBlur ||
		parseEffectKind("BACKGROUND_BLUR") != EffectOther {
		t.Error("effect kind mapping broken")
	}
}

func TestParseGradientPaint(t *testing.T) {
	payload := []byte(`{
		"name": "d",
		"document": {
			"id": "0:0",
			"type": "DOCUMENT",
			"children": [
				{
					"id": "1:1",
					"type": "RECTANGLE",
					"fills": [{
						"type": "GRADIENT_LINEAR",
						"gradientHandlePositions": [{"x": 0, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}],
						"gradientStops": [
							{"color": {"r": 1, "g": 1, "b": 1, "a": 1}, "position": 0},
							{"color": {"r": 0, "g": 0, "b": 0, "a": 1}, "position": 1}
						]
					}]
				}
			]
		}
	}`)

	f, err := ParseFile(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	fill := f.Document.Children[0].Fills[0]
	if fill.Kind != PaintLinearGradient {
		t.Fatalf("fill kind = %v", fill.Kind)
	}
	if len(fill.GradientHandles) != 3 || fill.GradientHandles[1] != (Vector{X: 1, Y: 1}) {
		t.Errorf("handles = %+v", fill.GradientHandles)
	}
	if len(fill.GradientStops) != 2 || fill.GradientStops[1].Position != 1 {
		t.Errorf("stops = %+v", fill.GradientStops)
	}
}
