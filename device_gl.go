package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glDevice issues commands through the go-gl bindings. The context must be
// current on the calling thread before newGLDevice is called.
type glDevice struct{}

func newGLDevice() (*glDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGLInit, err)
	}
	return &glDevice{}, nil
}

func (d *glDevice) Info() (string, string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *glDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *glDevice) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *glDevice) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *glDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

func (d *glDevice) CreateBuffer(data []byte, usage BufferUsage) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), glUsage(usage))
	return vbo
}

func (d *glDevice) BufferSize(buffer uint32) int {
	var size int32
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	return int(size)
}

func (d *glDevice) VertexAttribPointer(b AttribBinding) {
	gl.VertexAttribPointer(b.Index, b.Components, gl.FLOAT, false, b.Stride, gl.PtrOffset(b.Offset))
}

func (d *glDevice) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *glDevice) CreateShader(kind StageKind) uint32 {
	switch kind {
	case FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *glDevice) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *glDevice) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *glDevice) CompileStatus(shader uint32) bool {
	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	return success != gl.FALSE
}

func (d *glDevice) ShaderInfoLog(shader uint32, limit int) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	n := boundLog(logLength, limit)
	log := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(shader, int32(n), nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *glDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *glDevice) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *glDevice) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *glDevice) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *glDevice) LinkStatus(program uint32) bool {
	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	return success != gl.FALSE
}

func (d *glDevice) ProgramInfoLog(program uint32, limit int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	n := boundLog(logLength, limit)
	log := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(program, int32(n), nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *glDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *glDevice) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func glUsage(u BufferUsage) uint32 {
	switch u {
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

// boundLog clamps a reported info log length to limit bytes, terminator
// included.
func boundLog(reported int32, limit int) int {
	n := int(reported)
	if n <= 0 || n > limit {
		n = limit
	}
	return n
}
