package render

import (
	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Canvas is a drawing surface addressed in logical canvas units
// Later calls paint over earlier ones, as on an HTML canvas
type Canvas interface {
	// FillRect paints an axis-aligned rectangle
	FillRect(r vmath.Rect, c terminal.RGB)

	// FillCircle paints a filled circle
	FillCircle(c vmath.Circle, col terminal.RGB)

	// Text draws s with its baseline starting at (x, y)
	Text(s string, x, y float64, c terminal.RGB)
}
