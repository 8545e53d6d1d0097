package main

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/exp/f32"
)

const (
	floatSize           = 4
	coordsPerVertex     = 3
	triangleVertexCount = 3
)

// triangleVertices are the clip-space positions of the triangle.
var triangleVertices = [triangleVertexCount]mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// AttribBinding describes how buffer bytes map onto one shader input.
type AttribBinding struct {
	Index      uint32
	Components int32
	Stride     int32
	Offset     int
}

// positionBinding feeds location 0 with tightly packed vec3 floats.
var positionBinding = AttribBinding{
	Index:      0,
	Components: coordsPerVertex,
	Stride:     coordsPerVertex * floatSize,
	Offset:     0,
}

// Geometry holds the GPU handles produced by uploadGeometry.
type Geometry struct {
	VAO      uint32
	VBO      uint32
	Size     int
	Vertices int
	Binding  AttribBinding
}

// vertexBytes flattens positions into little endian float32 bytes.
func vertexBytes(vertices []mgl32.Vec3) []byte {
	flat := make([]float32, 0, len(vertices)*coordsPerVertex)
	for _, v := range vertices {
		flat = append(flat, v[0], v[1], v[2])
	}
	return f32.Bytes(binary.LittleEndian, flat...)
}

// uploadGeometry copies vertices into a static buffer and binds attribute 0
// to it. Allocation failures are not checked.
func uploadGeometry(dev Device, vertices []mgl32.Vec3) Geometry {
	data := vertexBytes(vertices)

	g := Geometry{
		Vertices: len(vertices),
		Binding:  positionBinding,
	}
	g.VAO = dev.CreateVertexArray()
	g.VBO = dev.CreateBuffer(data, StaticDraw)
	g.Size = dev.BufferSize(g.VBO)

	dev.VertexAttribPointer(g.Binding)
	dev.EnableVertexAttrib(g.Binding.Index)
	return g
}
