package main

import (
	"errors"
	"fmt"
)

var (
	ErrWindowCreate = errors.New("failed to create window")
	ErrGLInit       = errors.New("failed to initialize OpenGL")
)

// ResizeHandler is invoked with the new framebuffer size in pixels.
type ResizeHandler func(width, height int)

// WindowOptions describe the window and context to request.
type WindowOptions struct {
	Title   string
	Width   int
	Height  int
	GLMajor int
	GLMinor int
}

// Window is an OS window bound to a rendering context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	// EscapePressed reports the escape key state as of the last PollEvents.
	EscapePressed() bool
	// OnResize subscribes h to framebuffer resize events. Handlers run from
	// inside PollEvents on the calling thread.
	OnResize(h ResizeHandler)
	FramebufferSize() (width, height int)
	SwapBuffers()
	PollEvents()
	Destroy()
}

// Platform creates windows and owns the windowing system's lifetime.
type Platform interface {
	// Open creates a window and makes its context current.
	Open(opts WindowOptions) (Window, error)
	Terminate()
}

func newPlatform(backend string) (Platform, error) {
	switch backend {
	case backendGLFW:
		return newGLFWPlatform()
	case backendSDL:
		return newSDLPlatform()
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
