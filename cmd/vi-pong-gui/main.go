// Command vi-pong-gui plays the match in a window
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/gui"
	"github.com/lixenwraith/vi-pong/status"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Resolve(flag.CommandLine, flags, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(2)
	}

	// The window leaves stderr free, so debug logs go straight there
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	theme, err := cfg.RenderTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(2)
	}
	up, down := cfg.Bindings()

	reg := status.NewRegistry()
	game := gui.NewGame(gui.Options{Theme: theme, Up: up, Down: down, TPS: cfg.Display.FPS, Registry: reg})
	if err := gui.Run(game); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(1)
	}

	log.Printf("vi-pong-gui: closed: %s", reg.Summary())
}
