package render

import (
	"github.com/lixenwraith/vi-pong/terminal"
)

// RenderBuffer is the row-major cell grid handed to terminal.Flush
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewRenderBuffer creates a cleared buffer
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize changes dimensions, reallocating only when capacity is short, and clears
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(terminal.RGBBlack)
}

// Clear fills every cell with a blank of the given background
func (b *RenderBuffer) Clear(bg terminal.RGB) {
	blank := terminal.Cell{Rune: ' ', Fg: bg, Bg: bg}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, c terminal.Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// Get reads one cell; ok is false out of bounds
func (b *RenderBuffer) Get(x, y int) (terminal.Cell, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return terminal.Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Cells returns the backing slice for terminal.Flush; valid until the next Resize
func (b *RenderBuffer) Cells() []terminal.Cell {
	return b.cells
}

// Width returns the buffer width in cells
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *RenderBuffer) Height() int { return b.height }
