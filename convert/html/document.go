package html

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/zap"

	"figc/figma"
)

// Document assembler: wraps the walker's fragment in a complete HTML shell
// with a fixed reset, a centered full-viewport host and an optional Google
// Fonts link for every font family the conversion touched.

//go:embed document.html.tmpl
var documentTmpl string

var docTemplate = template.Must(template.New("document").Funcs(sprig.FuncMap()).Parse(documentTmpl))

type documentValues struct {
	Fonts   []string
	Width   string
	Height  string
	Content string
}

// BuildDocument wraps a markup fragment into the final document. fonts are
// emitted in the given order.
func BuildDocument(fragment string, width, height float64, fonts []string) (string, error) {
	var buf bytes.Buffer
	err := docTemplate.Execute(&buf, documentValues{
		Fonts:   fonts,
		Width:   formatNumber(width),
		Height:  formatNumber(height),
		Content: fragment,
	})
	if err != nil {
		return "", fmt.Errorf("unable to render document shell: %w", err)
	}
	return buf.String(), nil
}

// Generate converts the selected frame into a complete HTML document.
func (g *Generator) Generate(frame *figma.Node) (string, error) {
	g.log.Info("Generating HTML", zap.String("frame", frame.Name))

	fragment := g.NodeToHTML(frame, nil, 0)

	width, height := 800.0, 600.0
	if frame.Box != nil {
		width, height = frame.Box.Width, frame.Box.Height
	}
	return BuildDocument(fragment, width, height, g.fonts.list())
}
