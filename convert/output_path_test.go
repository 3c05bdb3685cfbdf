package convert

import (
	"testing"

	"figc/config"
	"figc/state"
)

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		frameName string
		fromFrame bool
		expected  string
	}{
		{
			name:      "explicit request wins",
			requested: "site/index.html",
			frameName: "Landing Page",
			fromFrame: true,
			expected:  "site/index.html",
		},
		{
			name:      "default name",
			frameName: "Landing Page",
			expected:  "output.html",
		},
		{
			name:      "name derived from frame",
			frameName: "Landing Page",
			fromFrame: true,
			expected:  "landing-page.html",
		},
		{
			name:      "frame name needs slugging",
			frameName: "Landing Page / Desktop (v2)",
			fromFrame: true,
			expected:  "landing-page-desktop-v2.html",
		},
		{
			name:      "empty frame name falls back",
			frameName: "",
			fromFrame: true,
			expected:  "output.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &state.LocalEnv{Cfg: &config.Config{}}
			env.Cfg.Document.OutputNameFromFrame = tt.fromFrame

			if got := buildOutputPath(tt.requested, tt.frameName, env); got != tt.expected {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}
