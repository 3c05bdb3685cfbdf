package convert

import (
	"github.com/gosimple/slug"

	"figc/config"
	"figc/state"
)

const defaultOutputName = "output.html"

// buildOutputPath returns the output file path: the explicitly requested one
// wins, otherwise the frame name (slugged) when configuration asks for it,
// otherwise the fixed default.
func buildOutputPath(requested, frameName string, env *state.LocalEnv) string {
	if len(requested) > 0 {
		return requested
	}
	if env.Cfg.Document.OutputNameFromFrame && len(frameName) > 0 {
		if name := slug.Make(frameName); len(name) > 0 {
			return config.CleanFileName(name) + ".html"
		}
	}
	return defaultOutputName
}
