package config

import (
	"flag"
)

// Flags holds command-line overrides registered on a FlagSet
type Flags struct {
	Path  string
	Color string
	Debug bool
	FPS   int
}

// RegisterFlags defines --config, --color, --debug and --fps on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "Config file (default "+DefaultPath+" if present)")
	fs.StringVar(&f.Color, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to logs/")
	fs.IntVar(&f.FPS, "fps", 60, "Simulation ticks per second")
	return f
}

// Resolve builds the configuration for a parsed fs: defaults, then the config
// file, then environment, then flags the user actually set
func Resolve(fs *flag.FlagSet, f *Flags, lookup func(string) (string, bool)) (Config, error) {
	path, required := DefaultPath, false
	if v, ok := lookup(EnvConfig); ok && v != "" {
		path, required = v, true
	}
	if f.Path != "" {
		path, required = f.Path, true
	}

	cfg, err := Load(path, required)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "color":
			cfg.Display.Color = f.Color
		case "debug":
			cfg.Debug = f.Debug
		case "fps":
			cfg.Display.FPS = f.FPS
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
