// Command vi-pong plays the match in a terminal, two pixels per cell
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/terminal"
)

// pausedRedraw keeps the status line fresh while no ticks arrive
const pausedRedraw = 250 * time.Millisecond

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Resolve(flag.CommandLine, flags, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of one match
func run(cfg config.Config) error {
	theme, err := cfg.RenderTheme()
	if err != nil {
		return err
	}

	term := terminal.New(cfg.ColorMode())
	if err := term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	core.SetCrashTerminal(term)
	defer func() {
		core.SetCrashTerminal(nil)
		term.Fini()
	}()
	log.Printf("vi-pong: started, color=%s fps=%d", term.ColorMode(), cfg.Display.FPS)

	reg := status.NewRegistry()
	statFrames := reg.Ints.Get(status.KeyFrames)

	provider := engine.NewMonotonicTimeProvider()
	initialHold, repeatHold := cfg.HoldWindows()
	keys := input.NewKeyState(provider, initialHold, repeatHold)
	table := cfg.KeyTable()

	sim := match.NewSimulator(match.CanvasWidth, match.CanvasHeight)
	session := engine.NewSession(sim, keys, reg)

	clock := engine.NewPausableClock(provider)
	scheduler, updateDone := engine.NewScheduler(session, clock, cfg.TickInterval(), reg)

	width, height := term.Size()
	buf := render.NewRenderBuffer(width, height)
	// Bottom row is the status line
	canvas := render.NewPixelCanvas(match.CanvasWidth, match.CanvasHeight, width, max(height-1, 0))

	draw := func() {
		buf.Clear(theme.Background)
		render.DrawFrame(canvas, session.Frame(), theme)
		canvas.Compose(buf)
		if h := buf.Height(); h > 0 {
			render.DrawStatusLine(buf, h-1, render.StatusInfo{
				Elapsed:   clock.Elapsed(),
				Ticks:     reg.Int(status.KeyMatchTicks),
				Speed:     reg.Float(status.KeyBallSpeed),
				Rally:     reg.Int(status.KeyRally),
				BestRally: reg.Int(status.KeyLongest),
				Paused:    scheduler.IsPaused(),
			}, theme)
		}
		term.Flush(buf.Cells(), buf.Width(), buf.Height())
		statFrames.Add(1)
	}

	events := make(chan terminal.Event, 256)
	core.Go(func() {
		for {
			ev := term.PollEvent()
			events <- ev
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	})

	scheduler.Start()
	defer scheduler.Stop()

	redraw := time.NewTicker(pausedRedraw)
	defer redraw.Stop()

	draw()

	for {
		select {
		case ev := <-events:
			intent := table.Resolve(ev)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("vi-pong: quit at tick %d: %s", scheduler.TickCount(), reg.Summary())
				return nil

			case input.IntentTogglePause:
				if scheduler.TogglePause() {
					keys.Release()
				}
				draw()

			case input.IntentUp, input.IntentDown:
				keys.Press(intent.Type)

			case input.IntentResize:
				buf.Resize(intent.Width, intent.Height)
				canvas.Resize(intent.Width, max(intent.Height-1, 0))
				term.Sync()
				draw()
			}

		case <-updateDone:
			draw()

		case <-redraw.C:
			if scheduler.IsPaused() {
				draw()
			}
		}
	}
}
