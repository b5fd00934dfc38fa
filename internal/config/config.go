package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/reel/internal/carousel"
)

const appName = "reel"

// Terminal defaults. Widths are in columns, so the engine's pixel
// defaults for gap and breakpoints are scaled down here.
const (
	defaultGap         = 2
	defaultNarrowBelow = 80
	defaultMediumBelow = 140
)

type Config struct {
	Deck     string `koanf:"deck"`      // deck file shown when none is given on the command line
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error"
	NoResume bool   `koanf:"no_resume"` // always start at the first item
	Icons    string `koanf:"icons"`     // "unicode" (default), "nerd", "none"

	Carousel CarouselConfig `koanf:"carousel"`
}

// CarouselConfig holds the carousel options. Zero values select defaults.
type CarouselConfig struct {
	ItemsPerView       int   `koanf:"items_per_view"`        // wide terminals (default: 3)
	ItemsPerViewMedium int   `koanf:"items_per_view_medium"` // 0 inherits items_per_view
	ItemsPerViewNarrow int   `koanf:"items_per_view_narrow"` // 0 inherits the medium value
	Gap                *int  `koanf:"gap"`                   // columns between cards (default: 2)
	Autoplay           bool  `koanf:"autoplay"`
	IntervalMs         int   `koanf:"interval_ms"`   // default: 5000
	TransitionMs       int   `koanf:"transition_ms"` // default: 500
	NarrowBelow        int   `koanf:"narrow_below"`  // default: 80 columns
	MediumBelow        int   `koanf:"medium_below"`  // default: 140 columns
	ResizeDebounceMs   int64 `koanf:"resize_debounce_ms"`
}

// Load reads the config files in priority order; later files win.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadWithFile reads the default config files, then path. Unlike the
// defaults, an explicitly given file must exist.
func LoadWithFile(path string) (*Config, error) {
	paths := getConfigPaths()
	if path != "" {
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return LoadFiles(paths...)
}

// LoadFiles reads the given config files, skipping missing ones.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Deck != "" {
		cfg.Deck = expandPath(cfg.Deck)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/reel/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) string {
	return expandPath(path)
}

// CarouselOptions returns the engine options with terminal defaults
// applied.
func (c *Config) CarouselOptions() carousel.Options {
	cc := c.Carousel

	opts := carousel.DefaultOptions()
	if cc.ItemsPerView > 0 {
		opts.ItemsPerView = cc.ItemsPerView
	}
	opts.ItemsPerViewMedium = cc.ItemsPerViewMedium
	opts.ItemsPerViewNarrow = cc.ItemsPerViewNarrow

	opts.Gap = defaultGap
	if cc.Gap != nil {
		opts.Gap = *cc.Gap
	}

	opts.Autoplay = cc.Autoplay
	if cc.IntervalMs > 0 {
		opts.Interval = time.Duration(cc.IntervalMs) * time.Millisecond
	}
	if cc.TransitionMs > 0 {
		opts.TransitionDuration = time.Duration(cc.TransitionMs) * time.Millisecond
	}
	if cc.ResizeDebounceMs > 0 {
		opts.ResizeDebounce = time.Duration(cc.ResizeDebounceMs) * time.Millisecond
	}

	opts.Breakpoints = carousel.Breakpoints{Narrow: defaultNarrowBelow, Medium: defaultMediumBelow}
	if cc.NarrowBelow > 0 {
		opts.Breakpoints.Narrow = cc.NarrowBelow
	}
	if cc.MediumBelow > 0 {
		opts.Breakpoints.Medium = cc.MediumBelow
	}
	if opts.Breakpoints.Medium < opts.Breakpoints.Narrow {
		opts.Breakpoints.Medium = opts.Breakpoints.Narrow
	}

	return opts
}
