package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

// HalfBlock draws the upper pixel of a cell in Fg and the lower in Bg
const HalfBlock = '▀'

// PixelCanvas rasterizes logical canvas units onto terminal cells
// Each cell holds two vertically stacked pixels; text is a separate cell layer on top
type PixelCanvas struct {
	logicalW, logicalH float64

	cols, rows int // cells
	pxW, pxH   int // pixels: pxW == cols, pxH == 2*rows

	pixels []terminal.RGB

	textRunes []rune
	textColor []terminal.RGB
}

// NewPixelCanvas maps a logicalW x logicalH canvas onto cols x rows cells
func NewPixelCanvas(logicalW, logicalH float64, cols, rows int) *PixelCanvas {
	pc := &PixelCanvas{logicalW: logicalW, logicalH: logicalH}
	pc.Resize(cols, rows)
	return pc
}

// Resize changes the cell grid and clears it
func (pc *PixelCanvas) Resize(cols, rows int) {
	pc.cols = max(cols, 0)
	pc.rows = max(rows, 0)
	pc.pxW = pc.cols
	pc.pxH = pc.rows * 2
	pc.pixels = make([]terminal.RGB, pc.pxW*pc.pxH)
	pc.textRunes = make([]rune, pc.cols*pc.rows)
	pc.textColor = make([]terminal.RGB, pc.cols*pc.rows)
}

// Size returns the cell grid dimensions
func (pc *PixelCanvas) Size() (cols, rows int) {
	return pc.cols, pc.rows
}

func (pc *PixelCanvas) scale() (sx, sy float64) {
	return float64(pc.pxW) / pc.logicalW, float64(pc.pxH) / pc.logicalH
}

// pixelSpan maps [lo, hi) logical units to a pixel range, at least one pixel wide
func pixelSpan(lo, hi, scale float64, limit int) (int, int) {
	p0 := int(math.Floor(lo * scale))
	p1 := int(math.Ceil(hi * scale))
	if p1 <= p0 {
		p1 = p0 + 1
	}
	return max(p0, 0), min(p1, limit)
}

// FillRect implements Canvas
func (pc *PixelCanvas) FillRect(r vmath.Rect, c terminal.RGB) {
	if pc.pxW == 0 || pc.pxH == 0 {
		return
	}
	sx, sy := pc.scale()
	x0, x1 := pixelSpan(r.Left(), r.Right(), sx, pc.pxW)
	y0, y1 := pixelSpan(r.Top(), r.Bottom(), sy, pc.pxH)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			pc.setPixel(px, py, c)
		}
	}
}

// FillCircle implements Canvas
// Pixels whose centers fall inside the circle are filled; a circle smaller than
// a pixel still fills the pixel under its center
func (pc *PixelCanvas) FillCircle(circle vmath.Circle, c terminal.RGB) {
	if pc.pxW == 0 || pc.pxH == 0 {
		return
	}
	sx, sy := pc.scale()
	b := circle.Bounds()
	x0, x1 := pixelSpan(b.Left(), b.Right(), sx, pc.pxW)
	y0, y1 := pixelSpan(b.Top(), b.Bottom(), sy, pc.pxH)

	filled := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			lx := (float64(px) + 0.5) / sx
			ly := (float64(py) + 0.5) / sy
			if circle.Contains(lx, ly) {
				pc.setPixel(px, py, c)
				filled = true
			}
		}
	}

	if !filled {
		px := int(math.Floor(circle.X * sx))
		py := int(math.Floor(circle.Y * sy))
		if px >= 0 && px < pc.pxW && py >= 0 && py < pc.pxH {
			pc.setPixel(px, py, c)
		}
	}
}

// Text implements Canvas; the glyphs occupy the cell row just above the baseline
func (pc *PixelCanvas) Text(s string, x, y float64, c terminal.RGB) {
	if pc.cols == 0 || pc.rows == 0 {
		return
	}
	sx, sy := pc.scale()
	col := int(math.Floor(x * sx))
	row := int(math.Floor(y*sy/2)) - 1
	row = max(0, min(row, pc.rows-1))

	for _, r := range s {
		if col >= 0 && col < pc.cols {
			i := row*pc.cols + col
			pc.textRunes[i] = r
			pc.textColor[i] = c
		}
		col++
	}
}

// setPixel paints a pixel and clears text in its cell, as paint covers earlier text
func (pc *PixelCanvas) setPixel(px, py int, c terminal.RGB) {
	pc.pixels[py*pc.pxW+px] = c
	pc.textRunes[(py/2)*pc.cols+px] = 0
}

// Compose writes the canvas into buf starting at the buffer's top-left cell
func (pc *PixelCanvas) Compose(buf *RenderBuffer) {
	for row := 0; row < pc.rows; row++ {
		for col := 0; col < pc.cols; col++ {
			top := pc.pixels[(2*row)*pc.pxW+col]
			bottom := pc.pixels[(2*row+1)*pc.pxW+col]

			cell := terminal.Cell{Rune: HalfBlock, Fg: top, Bg: bottom}
			if r := pc.textRunes[row*pc.cols+col]; r != 0 {
				cell = terminal.Cell{Rune: r, Fg: pc.textColor[row*pc.cols+col], Bg: bottom, Attrs: terminal.AttrBold}
			}
			buf.Set(col, row, cell)
		}
	}
}
