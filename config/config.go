// Package config loads vi-pong settings from defaults, a TOML file, the
// environment and command-line flags, in increasing precedence.
//
// Only presentation and driver settings live here; match rules are fixed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/terminal"
)

// DefaultPath is the config file read when no path is given
const DefaultPath = "vi-pong.toml"

// Environment variables
const (
	EnvConfig = "VI_PONG_CONFIG"
	EnvDebug  = "VI_PONG_DEBUG"
	EnvColor  = "VI_PONG_COLOR"
	EnvFPS    = "VI_PONG_FPS"
)

// FPS bounds accepted by Validate
const (
	MinFPS = 1
	MaxFPS = 240
)

// Config is the complete runtime configuration
type Config struct {
	Debug   bool    `toml:"debug"`
	Display Display `toml:"display"`
	Input   Input   `toml:"input"`
	Theme   Theme   `toml:"theme"`
}

// Display controls the driver rate and terminal colors
type Display struct {
	Color string `toml:"color"` // auto, truecolor, 256
	FPS   int    `toml:"fps"`   // simulation ticks per second
}

// Input holds key bindings and terminal hold windows
type Input struct {
	Up            []string `toml:"up"`
	Down          []string `toml:"down"`
	InitialHoldMS int      `toml:"initial_hold_ms"`
	RepeatHoldMS  int      `toml:"repeat_hold_ms"`
}

// Theme colors as "#rrggbb"
type Theme struct {
	Background string `toml:"background"`
	Net        string `toml:"net"`
	Player     string `toml:"player"`
	Computer   string `toml:"computer"`
	Ball       string `toml:"ball"`
	Text       string `toml:"text"`
	StatusFg   string `toml:"status_fg"`
	StatusBg   string `toml:"status_bg"`
}

// Default returns the built-in configuration
func Default() Config {
	th := render.DefaultTheme()
	return Config{
		Display: Display{
			Color: "auto",
			FPS:   60,
		},
		Input: Input{
			Up:            []string{"k", "w"},
			Down:          []string{"j", "s"},
			InitialHoldMS: int(input.DefaultInitialHold / time.Millisecond),
			RepeatHoldMS:  int(input.DefaultRepeatHold / time.Millisecond),
		},
		Theme: Theme{
			Background: th.Background.Hex(),
			Net:        th.Net.Hex(),
			Player:     th.Player.Hex(),
			Computer:   th.Computer.Hex(),
			Ball:       th.Ball.Hex(),
			Text:       th.Text.Hex(),
			StatusFg:   th.StatusFg.Hex(),
			StatusBg:   th.StatusBg.Hex(),
		},
	}
}

// Load returns defaults overlaid with the TOML file at path
// A missing file is an error only when required is set
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// Variables already set win; a missing file is not an error
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Display.Color = v
	}
	if v, ok := lookup(EnvFPS); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.Display.FPS = n
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		return fmt.Errorf("display.fps %d out of range %d..%d", c.Display.FPS, MinFPS, MaxFPS)
	}
	if _, ok := terminal.ParseColorMode(c.Display.Color); !ok {
		return fmt.Errorf("display.color %q: want auto, truecolor or 256", c.Display.Color)
	}
	if c.Input.InitialHoldMS <= 0 || c.Input.RepeatHoldMS <= 0 {
		return fmt.Errorf("input hold windows must be positive, got %d/%d ms",
			c.Input.InitialHoldMS, c.Input.RepeatHoldMS)
	}
	if _, err := parseRunes("input.up", c.Input.Up); err != nil {
		return err
	}
	if _, err := parseRunes("input.down", c.Input.Down); err != nil {
		return err
	}
	if _, err := c.RenderTheme(); err != nil {
		return err
	}
	return nil
}

// TickInterval is the scheduler period derived from FPS
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// ColorMode resolves the configured color mode; invalid values fall back to detection
func (c Config) ColorMode() terminal.ColorMode {
	if m, ok := terminal.ParseColorMode(c.Display.Color); ok {
		return m
	}
	return terminal.DetectColorMode()
}

// Bindings returns the up and down movement runes; call after Validate
func (c Config) Bindings() (up, down []rune) {
	up, _ = parseRunes("input.up", c.Input.Up)
	down, _ = parseRunes("input.down", c.Input.Down)
	return up, down
}

// KeyTable builds the terminal input bindings; call after Validate
func (c Config) KeyTable() *input.KeyTable {
	return input.NewKeyTable(c.Bindings())
}

// HoldWindows returns the initial and repeat hold durations
func (c Config) HoldWindows() (initial, repeat time.Duration) {
	return time.Duration(c.Input.InitialHoldMS) * time.Millisecond,
		time.Duration(c.Input.RepeatHoldMS) * time.Millisecond
}

// RenderTheme parses the theme colors
func (c Config) RenderTheme() (render.Theme, error) {
	var th render.Theme
	fields := []struct {
		name string
		hex  string
		dst  *terminal.RGB
	}{
		{"background", c.Theme.Background, &th.Background},
		{"net", c.Theme.Net, &th.Net},
		{"player", c.Theme.Player, &th.Player},
		{"computer", c.Theme.Computer, &th.Computer},
		{"ball", c.Theme.Ball, &th.Ball},
		{"text", c.Theme.Text, &th.Text},
		{"status_fg", c.Theme.StatusFg, &th.StatusFg},
		{"status_bg", c.Theme.StatusBg, &th.StatusBg},
	}
	for _, f := range fields {
		rgb, err := terminal.ParseHex(f.hex)
		if err != nil {
			return render.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = rgb
	}
	return th, nil
}

// parseRunes converts single-character binding strings to runes
func parseRunes(field string, keys []string) ([]rune, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: at least one key required", field)
	}
	runes := make([]rune, 0, len(keys))
	for _, k := range keys {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%s: %q is not a single character", field, k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		runes = append(runes, r)
	}
	return runes, nil
}
