package main

import (
	"fmt"

	"gopkg.in/veandco/go-sdl2.v0/sdl"
)

type sdlPlatform struct{}

func newSDLPlatform() (*sdlPlatform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl.Init failed: %w", err)
	}
	return &sdlPlatform{}, nil
}

func (p *sdlPlatform) Open(opts WindowOptions) (Window, error) {
	sdl.GL_SetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GL_SetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, opts.GLMajor)
	sdl.GL_SetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, opts.GLMinor)
	sdl.GL_SetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		opts.Width, opts.Height, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	ctx, err := sdl.GL_CreateContext(win)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: context: %v", ErrWindowCreate, err)
	}
	if err := sdl.GL_MakeCurrent(win, ctx); err != nil {
		sdl.GL_DeleteContext(ctx)
		win.Destroy()
		return nil, fmt.Errorf("%w: make current: %v", ErrWindowCreate, err)
	}

	return &sdlWindow{
		win:    win,
		ctx:    ctx,
		width:  opts.Width,
		height: opts.Height,
	}, nil
}

func (p *sdlPlatform) Terminate() {
	sdl.Quit()
}

// sdlWindow turns SDL's event queue into the polled-state model of Window.
type sdlWindow struct {
	win         *sdl.Window
	ctx         sdl.GLContext
	width       int
	height      int
	shouldClose bool
	escape      bool
	handlers    []ResizeHandler
}

func (w *sdlWindow) ShouldClose() bool     { return w.shouldClose }
func (w *sdlWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *sdlWindow) EscapePressed() bool   { return w.escape }

func (w *sdlWindow) OnResize(h ResizeHandler) {
	w.handlers = append(w.handlers, h)
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *sdlWindow) SwapBuffers() {
	sdl.GL_SwapWindow(w.win)
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.width, w.height = int(e.Data1), int(e.Data2)
				for _, h := range w.handlers {
					h(w.width, w.height)
				}
			}
		}
	}
	keys := sdl.GetKeyboardState()
	w.escape = keys[sdl.SCANCODE_ESCAPE] != 0
}

func (w *sdlWindow) Destroy() {
	sdl.GL_DeleteContext(w.ctx)
	w.win.Destroy()
}
