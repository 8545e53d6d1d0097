package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice records commands and reports the shader status configured by the
// test. Handles are allocated from a single counter.
type fakeDevice struct {
	next     uint32
	calls    []string
	buffers  map[uint32][]byte
	bindings []AttribBinding
	enabled  []uint32
	viewport [2]int
	clear    mgl32.Vec4
	clears   int
	draws    int
	used     []uint32
	deleted  map[uint32]int
	sources  map[uint32]string
	kinds    map[uint32]StageKind

	failCompile map[StageKind]string
	failLink    string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers:     map[uint32][]byte{},
		deleted:     map[uint32]int{},
		sources:     map[uint32]string{},
		kinds:       map[uint32]StageKind{},
		failCompile: map[StageKind]string{},
	}
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) Info() (string, string) { return "fake", "3.3.0 fake" }

func (d *fakeDevice) Viewport(width, height int) {
	d.viewport = [2]int{width, height}
	d.record("viewport %dx%d", width, height)
}

func (d *fakeDevice) ClearColor(c mgl32.Vec4) { d.clear = c }

func (d *fakeDevice) ClearColorBuffer() {
	d.clears++
	d.record("clear")
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	d.record("vao")
	return d.handle()
}

func (d *fakeDevice) CreateBuffer(data []byte, usage BufferUsage) uint32 {
	h := d.handle()
	d.buffers[h] = append([]byte(nil), data...)
	d.record("buffer %d usage=%d", len(data), usage)
	return h
}

func (d *fakeDevice) BufferSize(buffer uint32) int { return len(d.buffers[buffer]) }

func (d *fakeDevice) VertexAttribPointer(b AttribBinding) {
	d.bindings = append(d.bindings, b)
	d.record("attrib %d", b.Index)
}

func (d *fakeDevice) EnableVertexAttrib(index uint32) {
	d.enabled = append(d.enabled, index)
	d.record("enable %d", index)
}

func (d *fakeDevice) CreateShader(kind StageKind) uint32 {
	h := d.handle()
	d.kinds[h] = kind
	d.record("create %s", kind)
	return h
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) { d.sources[shader] = source }

func (d *fakeDevice) CompileShader(shader uint32) { d.record("compile %s", d.kinds[shader]) }

func (d *fakeDevice) CompileStatus(shader uint32) bool {
	_, fail := d.failCompile[d.kinds[shader]]
	return !fail
}

func (d *fakeDevice) ShaderInfoLog(shader uint32, limit int) string {
	return truncate(d.failCompile[d.kinds[shader]], limit)
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.deleted[shader]++
	d.record("delete %s", d.kinds[shader])
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.record("program")
	return d.handle()
}

func (d *fakeDevice) AttachShader(program, shader uint32) { d.record("attach %s", d.kinds[shader]) }

func (d *fakeDevice) LinkProgram(program uint32) { d.record("link") }

func (d *fakeDevice) LinkStatus(program uint32) bool { return d.failLink == "" }

func (d *fakeDevice) ProgramInfoLog(program uint32, limit int) string {
	return truncate(d.failLink, limit)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.used = append(d.used, program)
	d.record("use")
}

func (d *fakeDevice) DrawTriangles(first, count int) {
	d.draws++
	d.record("draw %d %d", first, count)
}

func truncate(s string, limit int) string {
	if len(s) >= limit {
		return s[:limit-1]
	}
	return s
}

// fakeWindow replays a script: escapeOn lists the frames (1-based, counted
// per PollEvents) after which escape is held down. resizeOn maps a frame to
// the size delivered during that frame's poll.
type fakeWindow struct {
	shouldClose bool
	escape      bool
	polls       int
	swaps       int
	destroyed   int
	width       int
	height      int
	handlers    []ResizeHandler

	escapeOn map[int]bool
	resizeOn map[int][2]int
	// closeAfter forces ShouldClose after that many polls, 0 disables it.
	closeAfter int
}

func (w *fakeWindow) ShouldClose() bool     { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *fakeWindow) EscapePressed() bool   { return w.escape }

func (w *fakeWindow) OnResize(h ResizeHandler) { w.handlers = append(w.handlers, h) }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) PollEvents() {
	w.polls++
	if size, ok := w.resizeOn[w.polls]; ok {
		w.width, w.height = size[0], size[1]
		for _, h := range w.handlers {
			h(size[0], size[1])
		}
	}
	w.escape = w.escapeOn[w.polls]
	if w.closeAfter > 0 && w.polls >= w.closeAfter {
		w.shouldClose = true
	}
}

func (w *fakeWindow) Destroy() { w.destroyed++ }

type fakePlatform struct {
	window     *fakeWindow
	openErr    error
	opened     []WindowOptions
	terminated int
}

func (p *fakePlatform) Open(opts WindowOptions) (Window, error) {
	p.opened = append(p.opened, opts)
	if p.openErr != nil {
		return nil, p.openErr
	}
	if p.window.width == 0 {
		p.window.width, p.window.height = opts.Width, opts.Height
	}
	return p.window, nil
}

func (p *fakePlatform) Terminate() { p.terminated++ }

// useFakeDevice swaps the device constructor for the duration of a test.
func useFakeDevice(t interface{ Cleanup(func()) }, dev *fakeDevice, err error) {
	prev := newDevice
	newDevice = func() (Device, error) {
		if err != nil {
			return nil, err
		}
		return dev, nil
	}
	t.Cleanup(func() { newDevice = prev })
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

var errNoDisplay = errors.New("no display")
