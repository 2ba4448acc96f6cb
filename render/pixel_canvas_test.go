package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

var white = terminal.RGBWhite

func composeCells(pc *PixelCanvas) *RenderBuffer {
	cols, rows := pc.Size()
	buf := NewRenderBuffer(cols, rows)
	pc.Compose(buf)
	return buf
}

func cellAt(t *testing.T, buf *RenderBuffer, x, y int) terminal.Cell {
	t.Helper()
	c, ok := buf.Get(x, y)
	require.True(t, ok, "cell (%d,%d) out of bounds", x, y)
	return c
}

func TestPixelCanvasFillRect(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 80, 24)
	pc.FillRect(vmath.Rect{X: 0, Y: 0, W: 800, H: 600}, terminal.RGBBlack)
	pc.FillRect(vmath.Rect{X: 0, Y: 250, W: 10, H: 100}, white)

	buf := composeCells(pc)

	// 250..350 maps to pixel rows 20..27, cell rows 10..13
	for row := 10; row <= 13; row++ {
		c := cellAt(t, buf, 0, row)
		assert.Equal(t, HalfBlock, c.Rune)
		assert.Equal(t, white, c.Fg, "row %d top", row)
		assert.Equal(t, white, c.Bg, "row %d bottom", row)
	}
	assert.Equal(t, terminal.RGBBlack, cellAt(t, buf, 0, 9).Bg)
	assert.Equal(t, terminal.RGBBlack, cellAt(t, buf, 1, 11).Fg)
}

func TestPixelCanvasThinRectGetsOnePixel(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 80, 24)
	pc.FillRect(vmath.Rect{X: 399, Y: 0, W: 2, H: 10}, white)

	buf := composeCells(pc)
	assert.Equal(t, white, cellAt(t, buf, 39, 0).Fg)
}

func TestPixelCanvasFillCircle(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 80, 24)
	pc.FillCircle(vmath.Circle{X: 400, Y: 300, R: 10}, white)

	buf := composeCells(pc)

	// Pixel rows 23..24 straddle cell rows 11 (bottom) and 12 (top)
	for _, col := range []int{39, 40} {
		assert.Equal(t, white, cellAt(t, buf, col, 11).Bg)
		assert.Equal(t, white, cellAt(t, buf, col, 12).Fg)
		assert.Equal(t, terminal.RGBBlack, cellAt(t, buf, col, 11).Fg)
	}
}

func TestPixelCanvasTinyCircleStillVisible(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 8, 6)
	pc.FillCircle(vmath.Circle{X: 400, Y: 300, R: 1}, white)

	buf := composeCells(pc)
	assert.Equal(t, white, cellAt(t, buf, 4, 3).Fg)
}

func TestPixelCanvasTextAndOverpaint(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 80, 24)
	pc.Text("12", 200, 50, white)

	buf := composeCells(pc)
	assert.Equal(t, '1', cellAt(t, buf, 20, 1).Rune)
	assert.Equal(t, '2', cellAt(t, buf, 21, 1).Rune)

	pc.FillRect(vmath.Rect{X: 0, Y: 0, W: 800, H: 600}, terminal.RGBBlack)
	buf = composeCells(pc)
	assert.Equal(t, HalfBlock, cellAt(t, buf, 20, 1).Rune, "background covers earlier text")
}

func TestPixelCanvasClipsAndHandlesEmpty(t *testing.T) {
	pc := NewPixelCanvas(800, 600, 0, 0)
	pc.FillRect(vmath.Rect{X: 0, Y: 0, W: 800, H: 600}, white)
	pc.FillCircle(vmath.Circle{X: 1, Y: 1, R: 1}, white)
	pc.Text("x", 0, 0, white)

	pc.Resize(10, 5)
	pc.FillRect(vmath.Rect{X: -100, Y: -100, W: 2000, H: 2000}, white)
	pc.FillCircle(vmath.Circle{X: -50, Y: 900, R: 5}, white)
	buf := composeCells(pc)
	assert.Equal(t, white, cellAt(t, buf, 9, 4).Bg)
}
