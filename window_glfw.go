package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwPlatform struct{}

func newGLFWPlatform() (*glfwPlatform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}
	return &glfwPlatform{}, nil
}

func (p *glfwPlatform) Open(opts WindowOptions) (Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	w.MakeContextCurrent()

	gw := &glfwWindow{win: w}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		for _, h := range gw.handlers {
			h(width, height)
		}
	})
	return gw, nil
}

func (p *glfwPlatform) Terminate() {
	glfw.Terminate()
}

type glfwWindow struct {
	win      *glfw.Window
	handlers []ResizeHandler
}

func (w *glfwWindow) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *glfwWindow) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

func (w *glfwWindow) EscapePressed() bool {
	return w.win.GetKey(glfw.KeyEscape) == glfw.Press
}

func (w *glfwWindow) OnResize(h ResizeHandler) {
	w.handlers = append(w.handlers, h)
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SwapBuffers() { w.win.SwapBuffers() }
func (w *glfwWindow) PollEvents()  { glfw.PollEvents() }
func (w *glfwWindow) Destroy()     { w.win.Destroy() }
