package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Bitmap face metrics of basicfont.Face7x13
const (
	faceHeight = 13
	faceAscent = 11
)

// ScoreTextSize is the pixel height of score digits
const ScoreTextSize = 30

// screenCanvas draws render.Canvas calls onto an ebiten image in canvas units
// The screen is laid out at canvas size, so no scaling is needed for shapes
type screenCanvas struct {
	dst  *ebiten.Image
	face *text.GoXFace
	size float64
}

func newScreenCanvas() *screenCanvas {
	return &screenCanvas{
		face: text.NewGoXFace(basicfont.Face7x13),
		size: ScoreTextSize,
	}
}

func rgba(c terminal.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c *screenCanvas) FillRect(r vmath.Rect, col terminal.RGB) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (c *screenCanvas) FillCircle(circle vmath.Circle, col terminal.RGB) {
	vector.DrawFilledCircle(c.dst, float32(circle.X), float32(circle.Y), float32(circle.R), rgba(col), true)
}

// Text scales the bitmap face to size and places its baseline at y
func (c *screenCanvas) Text(s string, x, y float64, col terminal.RGB) {
	c.drawText(s, x, y, c.size, col)
}

func (c *screenCanvas) drawText(s string, x, y, size float64, col terminal.RGB) {
	scale := size / faceHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-faceAscent*scale)
	op.ColorScale.ScaleWithColor(rgba(col))
	op.Filter = ebiten.FilterNearest
	text.Draw(c.dst, s, c.face, op)
}
