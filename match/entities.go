package match

import "github.com/lixenwraith/vi-pong/vmath"

// Side identifies one of the two paddles
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

// String returns the side name used in logs and the status bar
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	default:
		return "none"
	}
}

// Paddle is a vertically moving rectangle with a fixed x position
type Paddle struct {
	vmath.Rect
	Step float64 // vertical movement per tick
}

// Ball holds position, velocity and the scalar speed used on paddle hits
// Speed equals hypot(DX, DY) right after a paddle deflection; resets keep DY as is
type Ball struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Speed  float64
}

// Bounds returns the ball's bounding square
func (b *Ball) Bounds() vmath.Rect {
	return b.Circle().Bounds()
}

// Circle returns the drawable ball shape
func (b *Ball) Circle() vmath.Circle {
	return vmath.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// Score is the pair of point counters; counters only grow
type Score struct {
	Player   int
	Computer int
}
