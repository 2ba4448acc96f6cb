package render

import (
	"strconv"

	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Net geometry: a 2-unit wide dash of 10 units every 20 units
const (
	NetWidth  = 2
	NetDash   = 10
	NetPeriod = 20
)

// ScoreBaseline is the y of the score text baseline
const ScoreBaseline = 50

// DrawFrame paints a complete frame: background, net, scores, paddles, ball
func DrawFrame(c Canvas, f match.FrameState, th Theme) {
	c.FillRect(vmath.Rect{X: 0, Y: 0, W: f.Width, H: f.Height}, th.Background)

	for i := 0.0; i <= f.Height; i += NetPeriod {
		c.FillRect(vmath.Rect{X: f.Width/2 - NetWidth/2, Y: i, W: NetWidth, H: NetDash}, th.Net)
	}

	c.Text(strconv.Itoa(f.Score.Player), f.Width/4, ScoreBaseline, th.Text)
	c.Text(strconv.Itoa(f.Score.Computer), 3*f.Width/4, ScoreBaseline, th.Text)

	c.FillRect(f.Player, th.Player)
	c.FillRect(f.Computer, th.Computer)
	c.FillCircle(f.Ball.Circle, th.Ball)
}
