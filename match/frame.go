package match

import "github.com/lixenwraith/vi-pong/vmath"

// BallState is the renderable ball plus its motion
type BallState struct {
	vmath.Circle
	DX, DY float64
	Speed  float64
}

// FrameState is a read-only snapshot of the match after a tick
// Values are copied; holding a FrameState never aliases simulator state
type FrameState struct {
	Tick uint64

	Width, Height float64

	Player   vmath.Rect
	Computer vmath.Rect
	Ball     BallState
	Score    Score

	// Events raised during the tick that produced this frame
	Hit    bool
	Scorer Side
}
