package main

import (
	"fmt"
	"log/slog"
	"time"
)

const statsInterval = time.Second

// RenderInput is the state shared by the bootstrap, the scene and the loop.
type RenderInput struct {
	platform Platform
	window   Window
	device   Device
	logger   *slog.Logger

	winWidth  int
	winHeight int
	frames    uint64
}

// newDevice binds the graphics API to the context made current by Open.
var newDevice = func() (Device, error) { return newGLDevice() }

// CoreInit opens the window, initializes the graphics API and subscribes the
// viewport to resize events. On error nothing needs to be cleaned up beyond
// what CoreCleanup does.
func CoreInit(cfg Config, platform Platform, logger *slog.Logger) (*RenderInput, error) {
	out := &RenderInput{
		platform: platform,
		logger:   logger,
	}

	win, err := platform.Open(cfg.windowOptions())
	if err != nil {
		return out, err
	}
	out.window = win

	dev, err := newDevice()
	if err != nil {
		return out, err
	}
	out.device = dev

	renderer, version := dev.Info()
	logger.Debug("context ready", "renderer", renderer, "version", version)

	out.winWidth, out.winHeight = win.FramebufferSize()
	dev.Viewport(out.winWidth, out.winHeight)
	win.OnResize(func(width, height int) {
		out.winWidth, out.winHeight = width, height
		dev.Viewport(width, height)
	})

	return out, nil
}

// CoreRun renders frames until the window is asked to close.
func CoreRun(render *RenderInput, scene *TriangleScene) {
	win := render.window
	timer := time.Now()
	frameCounter := 0

	for !win.ShouldClose() {
		scene.clear(render)
		scene.processInput(render)
		scene.draw(render)
		win.SwapBuffers()
		win.PollEvents()

		render.frames++
		frameCounter++
		if now := time.Now(); now.Sub(timer) >= statsInterval {
			render.logger.Debug("frame stats", "fps", frameCounter, "size", fmt.Sprintf("%dx%d", render.winWidth, render.winHeight))
			timer = now
			frameCounter = 0
		}
	}
}

// CoreCleanup destroys the window and shuts the windowing system down.
func CoreCleanup(render *RenderInput) {
	if render == nil {
		return
	}
	if render.window != nil {
		render.window.Destroy()
	}
	if render.platform != nil {
		render.platform.Terminate()
	}
}
