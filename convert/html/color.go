package html

import (
	"fmt"

	"figc/figma"
)

// CSS color token forms. 8-bit channel scaling truncates rather than rounds
// and channels are never clamped - out of range input passes through, which
// keeps output identical for any document the API hands us.

// cssColor renders the paint-language color token: the opaque 3-channel form
// when alpha is at least 1, the translucent 4-channel form otherwise. Alpha
// is passed through unscaled.
func cssColor(c figma.Color) string {
	r := int(c.R * 255)
	g := int(c.G * 255)
	b := int(c.B * 255)
	if c.A < 1.0 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// hexColor renders the fixed-width lower-case 3-channel hex token, ignoring
// alpha.
func hexColor(c figma.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255))
}
