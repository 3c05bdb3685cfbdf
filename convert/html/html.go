// Package html implements the tree-to-markup conversion engine: it walks a
// selected frame of a parsed Figma document and produces a self-contained
// HTML/CSS document visually reproducing the design.
package html

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Options tunes paint fallbacks of a Generator.
type Options struct {
	// Placeholder is the paint used for image fills with no resolved URL.
	Placeholder string
	// FallbackFont replaces an absent font family on text nodes.
	FallbackFont string
}

const (
	defaultPlaceholder  = "#cccccc"
	defaultFallbackFont = "Arial"
)

// Generator converts one frame per call. All accumulated state (fonts seen,
// resolved image URLs) is confined to the value, so independent conversions
// never share anything - create a new Generator per run.
type Generator struct {
	images map[string]string
	opts   Options
	fonts  *orderedSet
	log    *zap.Logger
}

// New creates a conversion engine. images maps node identifiers to resolved
// image fill URLs; it may be nil when the document carries no image fills.
func New(images map[string]string, opts Options, log *zap.Logger) *Generator {
	if opts.Placeholder == "" {
		opts.Placeholder = defaultPlaceholder
	}
	if opts.FallbackFont == "" {
		opts.FallbackFont = defaultFallbackFont
	}
	return &Generator{
		images: images,
		opts:   opts,
		fonts:  newOrderedSet(),
		log:    log,
	}
}

// FontsUsed returns font families referenced by converted text nodes, in
// first-seen order.
func (g *Generator) FontsUsed() []string {
	return g.fonts.list()
}

// formatNumber renders a float the shortest way that round-trips, so whole
// values print without a fractional part ("10", not "10.000000").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return formatNumber(v) + "px"
}

// styleList is an insertion-ordered set of CSS declarations. Ordering
// matters: the rendered style attribute must be deterministic.
type styleList []styleProp

type styleProp struct {
	name  string
	value string
}

func (l *styleList) add(name, value string) {
	*l = append(*l, styleProp{name: name, value: value})
}

func (l styleList) String() string {
	parts := make([]string, 0, len(l))
	for _, p := range l {
		parts = append(parts, p.name+": "+p.value)
	}
	return strings.Join(parts, "; ")
}

// orderedSet is a string set preserving first insertion order. Consumers of
// the font list depend on deterministic ordering.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) list() []string {
	return s.items
}
