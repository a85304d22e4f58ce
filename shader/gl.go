package shader

import "github.com/go-gl/mathgl/mgl32"

// Kind is the stage a shader object is compiled for.
// The values are the OpenGL enums.
type Kind uint32

const (
	Vertex   Kind = 0x8B31
	Fragment Kind = 0x8B30
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// GL is the part of the graphics API a Program talks to.
// All calls must be made from the thread owning the context.
type GL interface {
	CreateShader(kind Kind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, value mgl32.Mat4)
	GetUniformMatrix4fv(program uint32, location int32) mgl32.Mat4
}
