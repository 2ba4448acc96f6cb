package match

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// Input is the player's directional state for one tick
type Input struct {
	Up   bool
	Down bool
}

// Simulator owns the complete match state and advances it one tick at a time
// Not safe for concurrent use; a single driver goroutine calls Tick
type Simulator struct {
	width, height float64

	player   Paddle
	computer Paddle
	ball     Ball
	score    Score

	tick uint64
}

// NewSimulator creates a match on a canvas of the given size
// Paddles start vertically centered, the ball at the canvas center, scores at zero
func NewSimulator(width, height float64) *Simulator {
	s := &Simulator{
		width:  width,
		height: height,
	}

	s.player = Paddle{
		Rect: vmath.Rect{X: 0, Y: height/2 - PaddleHeight/2, W: PaddleWidth, H: PaddleHeight},
		Step: PlayerPaddleSpeed,
	}
	s.computer = Paddle{
		Rect: vmath.Rect{X: width - PaddleWidth, Y: height/2 - PaddleHeight/2, W: PaddleWidth, H: PaddleHeight},
		Step: ComputerPaddleSpeed,
	}
	s.ball = Ball{
		X:      width / 2,
		Y:      height / 2,
		Radius: BallRadius,
		DX:     InitialDX,
		DY:     InitialDY,
		Speed:  BaseSpeed,
	}

	return s
}

// Tick advances the match by one step and returns the resulting frame
// Order: player paddle, AI paddle, ball translation, wall bounce, paddle collision, scoring
func (s *Simulator) Tick(in Input) FrameState {
	s.tick++

	s.movePlayer(in)
	s.moveComputer()

	s.ball.X += s.ball.DX
	s.ball.Y += s.ball.DY

	s.bounceWalls()
	hit := s.collidePaddle()
	scorer := s.checkScore()

	f := s.Frame()
	f.Hit = hit
	f.Scorer = scorer
	return f
}

// Frame returns a snapshot of the current state without advancing it
func (s *Simulator) Frame() FrameState {
	return FrameState{
		Tick:     s.tick,
		Width:    s.width,
		Height:   s.height,
		Player:   s.player.Rect,
		Computer: s.computer.Rect,
		Ball: BallState{
			Circle: s.ball.Circle(),
			DX:     s.ball.DX,
			DY:     s.ball.DY,
			Speed:  s.ball.Speed,
		},
		Score: s.score,
	}
}

// movePlayer gates movement on the paddle edges; up wins when both are held
func (s *Simulator) movePlayer(in Input) {
	p := &s.player
	if in.Up && p.Top() > 0 {
		p.Y -= p.Step
	} else if in.Down && p.Bottom() < s.height {
		p.Y += p.Step
	}
}

// moveComputer tracks the ball's y with a fixed step, no prediction or dead zone
func (s *Simulator) moveComputer() {
	p := &s.computer
	center := p.CenterY()
	if center < s.ball.Y && p.Bottom() < s.height {
		p.Y += p.Step
	} else if center > s.ball.Y && p.Top() > 0 {
		p.Y -= p.Step
	}
}

// bounceWalls negates DY on a top or bottom crossing, position is left as is
func (s *Simulator) bounceWalls() {
	b := &s.ball
	if b.Y+b.Radius > s.height || b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}
}

// collidePaddle tests the ball against the paddle on its half of the canvas
// and rebuilds the velocity from the contact offset
func (s *Simulator) collidePaddle() bool {
	b := &s.ball

	leftHalf := b.X < s.width/2
	paddle := &s.computer
	direction := -1.0
	if leftHalf {
		paddle = &s.player
		direction = 1.0
	}

	if !b.Bounds().Overlaps(paddle.Rect) {
		return false
	}

	angle := DeflectionAngle(CollidePoint(b.Y, paddle.Rect))
	v := vmath.FromAngle(b.Speed, angle, direction)
	b.DX = v.X
	b.DY = v.Y
	b.Speed += SpeedIncrement
	return true
}

// checkScore awards a point when the ball leaves either side and re-serves
func (s *Simulator) checkScore() Side {
	b := &s.ball
	switch {
	case b.X-b.Radius < 0:
		s.score.Computer++
		s.resetBall()
		return SideComputer
	case b.X+b.Radius > s.width:
		s.score.Player++
		s.resetBall()
		return SidePlayer
	}
	return SideNone
}

// resetBall recenters the ball, reverses DX and restores the base speed
// DY carries over from before the point
func (s *Simulator) resetBall() {
	b := &s.ball
	b.X = s.width / 2
	b.Y = s.height / 2
	b.DX = -b.DX
	b.Speed = BaseSpeed
}

// CollidePoint returns the ball's contact offset from the paddle center,
// normalized by half the paddle height; not clamped
func CollidePoint(ballY float64, paddle vmath.Rect) float64 {
	half := paddle.H / 2
	return (ballY - (paddle.Y + half)) / half
}

// DeflectionAngle maps a collide point to a deflection angle in radians
func DeflectionAngle(collidePoint float64) float64 {
	return MaxDeflection * collidePoint
}
