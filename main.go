package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = -1
)

func init() {
	// The window, the context and every GL call stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, newPlatform))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	l, err := parseLevel(level)
	if err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func run(args []string, stderr io.Writer, openPlatform func(string) (Platform, error)) int {
	cfg, err := loadConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	logger := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return exitFailure
	}

	platform, err := openPlatform(cfg.Backend)
	if err != nil {
		logger.Error("failed to initialize windowing system", "backend", cfg.Backend, "err", err)
		return exitFailure
	}

	render, err := CoreInit(cfg, platform, logger)
	defer CoreCleanup(render)
	if err != nil {
		logger.Error("bootstrap failed", "err", err)
		return exitFailure
	}

	scene, err := NewTriangleScene(render, cfg, defaultShaderSources)
	if err != nil && cfg.Strict {
		logger.Error("shader program unusable", "err", err)
		return exitFailure
	}

	logger.Info("rendering", "backend", cfg.Backend, "size", []int{render.winWidth, render.winHeight})
	CoreRun(render, scene)
	logger.Info("window closed", "frames", render.frames)
	return exitOK
}
