// Package gui is the windowed frontend: the same match and scene drawn with ebiten
package gui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// DefaultTPS is the update rate when Options.TPS is unset; one match tick per update
const DefaultTPS = 60

const statusTextSize = 13

// Options configures a Game
type Options struct {
	Theme    render.Theme
	Up, Down []rune
	TPS      int
	Registry *status.Registry
}

// Game implements ebiten.Game around a match session
type Game struct {
	session *engine.Session
	reg     *status.Registry
	theme   render.Theme
	canvas  *screenCanvas
	tps     int

	paused bool
}

// NewGame creates a game with a fresh match
func NewGame(opts Options) *Game {
	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	sim := match.NewSimulator(match.CanvasWidth, match.CanvasHeight)
	return &Game{
		session: engine.NewSession(sim, newKeyboard(opts.Up, opts.Down), reg),
		reg:     reg,
		theme:   opts.Theme,
		canvas:  newScreenCanvas(),
		tps:     tps,
	}
}

// Run opens the window and blocks until it is closed or Esc/q is pressed
func Run(g *Game) error {
	ebiten.SetWindowSize(match.CanvasWidth, match.CanvasHeight)
	ebiten.SetWindowTitle("vi-pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	return ebiten.RunGame(g)
}

// Update advances the match unless paused
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		log.Printf("gui: paused=%v at tick %d", g.paused, g.reg.Int(status.KeyMatchTicks))
	}
	if g.paused {
		return nil
	}
	g.session.Step()
	return nil
}

// Draw renders the last published frame and the status line
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	render.DrawFrame(g.canvas, g.session.Frame(), g.theme)

	ticks := g.reg.Int(status.KeyMatchTicks)
	left, right := render.FormatStatus(render.StatusInfo{
		Elapsed:   time.Duration(ticks) * time.Second / time.Duration(g.tps),
		Ticks:     ticks,
		Speed:     g.reg.Float(status.KeyBallSpeed),
		Rally:     g.reg.Int(status.KeyRally),
		BestRally: g.reg.Int(status.KeyLongest),
		Paused:    g.paused,
	})
	base := float64(match.CanvasHeight) - 4
	g.canvas.drawText(left, 0, base, statusTextSize, g.theme.Text)
	rightX := float64(match.CanvasWidth) - float64(len(right)*7)
	g.canvas.drawText(right, rightX, base, statusTextSize, g.theme.Text)

	g.reg.Ints.Get(status.KeyFrames).Add(1)
}

// Layout fixes the logical screen at canvas size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return match.CanvasWidth, match.CanvasHeight
}
