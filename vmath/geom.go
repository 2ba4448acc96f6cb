package vmath

import "math"

// Vec2 is a 2D vector in canvas units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle builds a vector of magnitude mag at angle rad, x component signed by dir
// dir is +1 or -1; the y component keeps the sign of sin(rad)
func FromAngle(mag, rad, dir float64) Vec2 {
	return Vec2{
		X: dir * mag * math.Cos(rad),
		Y: mag * math.Sin(rad),
	}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports strict overlap; touching edges do not count
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Circle is a circle given by center and radius
type Circle struct {
	X, Y, R float64
}

// Bounds returns the bounding square of the circle
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Contains reports whether point (x, y) lies inside or on the circle
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}
