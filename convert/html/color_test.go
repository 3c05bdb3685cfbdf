package html

import (
	"strings"
	"testing"

	"figc/figma"
)

func TestCSSColor(t *testing.T) {
	tests := []struct {
		name     string
		color    figma.Color
		expected string
	}{
		{
			name:     "opaque",
			color:    figma.Color{R: 1.0, G: 0.5, B: 0.0, A: 1.0},
			expected: "rgb(255, 127, 0)",
		},
		{
			name:     "translucent",
			color:    figma.Color{R: 1.0, G: 0.5, B: 0.0, A: 0.5},
			expected: "rgba(255, 127, 0, 0.5)",
		},
		{
			name:     "black",
			color:    figma.Color{A: 1.0},
			expected: "rgb(0, 0, 0)",
		},
		{
			name:     "white",
			color:    figma.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
			expected: "rgb(255, 255, 255)",
		},
		{
			name:     "alpha above one stays opaque",
			color:    figma.Color{R: 1.0, A: 1.5},
			expected: "rgb(255, 0, 0)",
		},
		{
			name:     "quarter alpha",
			color:    figma.Color{A: 0.25},
			expected: "rgba(0, 0, 0, 0.25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cssColor(tt.color); got != tt.expected {
				t.Errorf("cssColor() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCSSColorAlphaForm(t *testing.T) {
	// any alpha below 1 must produce the 4-channel form carrying the alpha
	// value unscaled, anything else must not carry an alpha channel at all
	for _, a := range []float64{0, 0.1, 0.5, 0.999} {
		got := cssColor(figma.Color{R: 0.2, G: 0.4, B: 0.6, A: a})
		if !strings.HasPrefix(got, "rgba(") {
			t.Errorf("cssColor(a=%g) = %q, want rgba form", a, got)
		}
		if !strings.Contains(got, formatNumber(a)) {
			t.Errorf("cssColor(a=%g) = %q, alpha not passed through unscaled", a, got)
		}
	}
	for _, a := range []float64{1, 1.5} {
		got := cssColor(figma.Color{R: 0.2, G: 0.4, B: 0.6, A: a})
		if !strings.HasPrefix(got, "rgb(") || strings.HasPrefix(got, "rgba(") {
			t.Errorf("cssColor(a=%g) = %q, want rgb form", a, got)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name     string
		color    figma.Color
		expected string
	}{
		{
			name:     "truncating scaling",
			color:    figma.Color{R: 1.0, G: 0.5, B: 0.0, A: 1.0},
			expected: "#ff7f00",
		},
		{
			name:     "alpha ignored",
			color:    figma.Color{R: 1.0, G: 0.5, B: 0.0, A: 0.5},
			expected: "#ff7f00",
		},
		{
			name:     "black",
			color:    figma.Color{A: 1.0},
			expected: "#000000",
		},
		{
			name:     "white",
			color:    figma.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
			expected: "#ffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hexColor(tt.color); got != tt.expected {
				t.Errorf("hexColor() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{10, "10"},
		{10.5, "10.5"},
		{0, "0"},
		{0.25, "0.25"},
		{-4, "-4"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.expected {
			t.Errorf("formatNumber(%g) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
