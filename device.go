package main

import "github.com/go-gl/mathgl/mgl32"

// StageKind identifies a shader pipeline stage.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// BufferUsage is the access pattern hint passed along with buffer data.
type BufferUsage int

const (
	// StaticDraw marks data written once and read by many draw calls.
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
)

// Device is the subset of the graphics API the program issues commands
// through. All methods must be called on the thread owning the current
// context.
type Device interface {
	// Info returns the renderer and version strings of the context.
	Info() (renderer, version string)

	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	ClearColorBuffer()

	CreateVertexArray() uint32
	CreateBuffer(data []byte, usage BufferUsage) uint32
	BufferSize(buffer uint32) int
	VertexAttribPointer(b AttribBinding)
	EnableVertexAttrib(index uint32)

	CreateShader(kind StageKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32, limit int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32, limit int) string
	UseProgram(program uint32)

	DrawTriangles(first, count int)
}
