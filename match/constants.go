package match

import "math"

// Canvas dimensions of the logical playfield
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Paddle geometry and per-tick movement
const (
	PaddleWidth  = 10
	PaddleHeight = 100

	// PlayerPaddleSpeed is the player's vertical step per tick
	PlayerPaddleSpeed = 6

	// ComputerPaddleSpeed is the tracking step of the reactive AI per tick
	ComputerPaddleSpeed = 5
)

// Ball geometry and speed
const (
	BallRadius = 10

	// BaseSpeed is the ball speed magnitude after a reset
	BaseSpeed = 5.0

	// SpeedIncrement is added to the speed on every paddle hit, without cap
	SpeedIncrement = 0.5

	// InitialDX and InitialDY are the serve velocity at match start
	InitialDX = 5.0
	InitialDY = 5.0
)

// MaxDeflection is the deflection angle at a paddle edge hit (45 degrees)
const MaxDeflection = math.Pi / 4
