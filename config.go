package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

const (
	backendGLFW = "glfw"
	backendSDL  = "sdl"

	defaultWinTitle  = "LearnOpenGL"
	defaultWinWidth  = 800
	defaultWinHeight = 600
)

// Config controls the window, context and render loop. The zero-flag,
// no-file defaults reproduce the classic first-triangle program.
type Config struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Backend string `toml:"backend"`
	GLMajor int    `toml:"gl_major"`
	GLMinor int    `toml:"gl_minor"`

	// ClearColor is the RGBA colour every frame starts from.
	ClearColor [4]float32 `toml:"clear_color"`

	// Strict refuses to activate a program whose build failed.
	Strict bool `toml:"strict"`
	// Draw issues the triangle draw call before presenting.
	Draw bool `toml:"draw"`

	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Title:      defaultWinTitle,
		Width:      defaultWinWidth,
		Height:     defaultWinHeight,
		Backend:    backendGLFW,
		GLMajor:    3,
		GLMinor:    3,
		ClearColor: [4]float32{0, 0, 0, 1},
		LogLevel:   "info",
	}
}

// loadConfig applies an optional TOML file and then command line flags on
// top of the defaults.
func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := pflag.NewFlagSet("gofirsttriangle", pflag.ContinueOnError)
	path := fs.String("config", "", "path to a TOML config file")
	title := fs.String("title", cfg.Title, "window title")
	width := fs.Int("width", cfg.Width, "window width in pixels")
	height := fs.Int("height", cfg.Height, "window height in pixels")
	backend := fs.String("backend", cfg.Backend, "windowing backend: glfw or sdl")
	rgba := fs.Float32Slice("clear-color", cfg.ClearColor[:], "RGBA clear colour")
	strict := fs.Bool("strict", cfg.Strict, "abort when the shader program fails to build")
	draw := fs.Bool("draw", cfg.Draw, "draw the triangle every frame")
	level := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		b, err := os.ReadFile(*path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := decodeConfig(b, &cfg); err != nil {
			return cfg, err
		}
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("title", func() { cfg.Title = *title })
	set("width", func() { cfg.Width = *width })
	set("height", func() { cfg.Height = *height })
	set("backend", func() { cfg.Backend = *backend })
	set("strict", func() { cfg.Strict = *strict })
	set("draw", func() { cfg.Draw = *draw })
	set("log-level", func() { cfg.LogLevel = *level })
	var clearErr error
	set("clear-color", func() {
		if len(*rgba) != 4 {
			clearErr = fmt.Errorf("clear-color needs 4 components, got %d", len(*rgba))
			return
		}
		copy(cfg.ClearColor[:], *rgba)
	})
	if clearErr != nil {
		return cfg, clearErr
	}

	return cfg, cfg.Validate()
}

func decodeConfig(b []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Backend != backendGLFW && c.Backend != backendSDL {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is older than 3.3", c.GLMajor, c.GLMinor))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear colour component %d out of range: %v", i, v))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) windowOptions() WindowOptions {
	return WindowOptions{
		Title:   c.Title,
		Width:   c.Width,
		Height:  c.Height,
		GLMajor: c.GLMajor,
		GLMinor: c.GLMinor,
	}
}

func (c Config) clearColor() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
