package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

type drawOp struct {
	kind   string
	rect   vmath.Rect
	circle vmath.Circle
	text   string
	x, y   float64
	color  terminal.RGB
}

type recordingCanvas struct {
	ops []drawOp
}

func (r *recordingCanvas) FillRect(rect vmath.Rect, c terminal.RGB) {
	r.ops = append(r.ops, drawOp{kind: "rect", rect: rect, color: c})
}

func (r *recordingCanvas) FillCircle(c vmath.Circle, col terminal.RGB) {
	r.ops = append(r.ops, drawOp{kind: "circle", circle: c, color: col})
}

func (r *recordingCanvas) Text(s string, x, y float64, c terminal.RGB) {
	r.ops = append(r.ops, drawOp{kind: "text", text: s, x: x, y: y, color: c})
}

func TestDrawFrameOrder(t *testing.T) {
	sim := match.NewSimulator(match.CanvasWidth, match.CanvasHeight)
	f := sim.Frame()
	th := DefaultTheme()
	th.Background = terminal.RGB{R: 1, G: 2, B: 3}

	rc := &recordingCanvas{}
	DrawFrame(rc, f, th)

	// background + 31 net dashes (0..600 step 20) + 2 scores + 2 paddles + ball
	require.Len(t, rc.ops, 37)

	bg := rc.ops[0]
	assert.Equal(t, "rect", bg.kind)
	assert.Equal(t, vmath.Rect{X: 0, Y: 0, W: 800, H: 600}, bg.rect)
	assert.Equal(t, th.Background, bg.color)

	for i := 1; i <= 31; i++ {
		op := rc.ops[i]
		require.Equal(t, "rect", op.kind)
		assert.Equal(t, vmath.Rect{X: 399, Y: float64((i - 1) * 20), W: 2, H: 10}, op.rect)
	}

	assert.Equal(t, drawOp{kind: "text", text: "0", x: 200, y: 50, color: th.Text}, rc.ops[32])
	assert.Equal(t, drawOp{kind: "text", text: "0", x: 600, y: 50, color: th.Text}, rc.ops[33])

	assert.Equal(t, f.Player, rc.ops[34].rect)
	assert.Equal(t, f.Computer, rc.ops[35].rect)
	assert.Equal(t, "circle", rc.ops[36].kind)
	assert.Equal(t, vmath.Circle{X: 400, Y: 300, R: 10}, rc.ops[36].circle)
}

func TestDrawFrameScores(t *testing.T) {
	f := match.FrameState{Width: 800, Height: 600, Score: match.Score{Player: 7, Computer: 12}}

	rc := &recordingCanvas{}
	DrawFrame(rc, f, DefaultTheme())

	var texts []string
	for _, op := range rc.ops {
		if op.kind == "text" {
			texts = append(texts, op.text)
		}
	}
	assert.Equal(t, []string{"7", "12"}, texts)
}
