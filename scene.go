package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleScene owns the GPU objects built once at startup. They are
// released with the context when the process exits.
type TriangleScene struct {
	geometry   Geometry
	program    uint32
	active     bool
	clearColor mgl32.Vec4
	drawCalls  bool
}

// NewTriangleScene uploads the triangle and builds its shader program. The
// returned error is non-nil when the program failed to build; the scene is
// still usable. In strict mode such a program is never activated.
func NewTriangleScene(render *RenderInput, cfg Config, src ShaderSources) (*TriangleScene, error) {
	ts := &TriangleScene{
		clearColor: cfg.clearColor(),
		drawCalls:  cfg.Draw,
	}
	dev := render.device

	ts.geometry = uploadGeometry(dev, triangleVertices[:])
	render.logger.Debug("geometry uploaded", "bytes", ts.geometry.Size, "vertices", ts.geometry.Vertices)

	program, err := BuildProgram(dev, src, render.logger)
	ts.program = program
	if err != nil && cfg.Strict {
		return ts, err
	}

	dev.UseProgram(program)
	ts.active = true
	return ts, err
}

func (ts *TriangleScene) clear(render *RenderInput) {
	render.device.ClearColor(ts.clearColor)
	render.device.ClearColorBuffer()
}

// processInput requests a close while escape is held. The loop observes it
// on its next check.
func (ts *TriangleScene) processInput(render *RenderInput) {
	if render.window.EscapePressed() {
		render.window.SetShouldClose(true)
	}
}

// draw is a no-op unless draw calls were enabled, leaving a cleared frame.
func (ts *TriangleScene) draw(render *RenderInput) {
	if !ts.drawCalls || !ts.active {
		return
	}
	render.device.DrawTriangles(0, ts.geometry.Vertices)
}
