package scenes

import "github.com/stewi1014/gltutorial/shader"

// BufferTarget is the binding point of a buffer object.
// The values are the OpenGL enums.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

// GL is the part of the graphics API a Renderer talks to.
type GL interface {
	shader.GL

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	DeleteBuffer(buffer uint32)
	// ArrayBufferData uploads data to the bound ARRAY_BUFFER as STATIC_DRAW.
	ArrayBufferData(data []float32)
	// ElementBufferData uploads data to the bound ELEMENT_ARRAY_BUFFER as STATIC_DRAW.
	ElementBufferData(data []uint32)

	// VertexAttribPointer describes a float attribute. stride and offset are in bytes.
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	// Clear clears the colour buffer.
	Clear()
	// DrawElements draws count uint32 indices as triangles, starting offset bytes
	// into the bound element buffer.
	DrawElements(count int32, offset uintptr)
}
