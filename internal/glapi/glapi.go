// Package glapi implements shader.GL and scenes.GL on top of the OpenGL 3.3 core bindings.
package glapi

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/gltutorial/scenes"
	"github.com/stewi1014/gltutorial/shader"
)

var (
	_ shader.GL = API{}
	_ scenes.GL = API{}
)

// API forwards every call to the current OpenGL context.
type API struct{}

// Init loads the OpenGL function pointers. A context must be current.
func Init() (API, error) {
	if err := gl.Init(); err != nil {
		return API{}, fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	return API{}, nil
}

func (API) CreateShader(kind shader.Kind) uint32 {
	return gl.CreateShader(uint32(kind))
}

func (API) ShaderSource(shader uint32, source string) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, cstring, nil)
}

func (API) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (API) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (API) ShaderInfoLog(shader uint32) string {
	var l int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (API) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (API) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (API) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (API) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (API) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (API) ProgramInfoLog(program uint32) string {
	var l int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetProgramInfoLog(program, l, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (API) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (API) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (API) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (API) UniformMatrix4fv(location int32, value mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

func (API) GetUniformMatrix4fv(program uint32, location int32) mgl32.Mat4 {
	var m mgl32.Mat4
	gl.GetUniformfv(program, location, &m[0])
	return m
}

func (API) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (API) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (API) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (API) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (API) BindBuffer(target scenes.BufferTarget, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (API) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (API) ArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (API) ElementBufferData(data []uint32) {
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (API) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (API) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (API) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (API) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (API) DrawElements(count int32, offset uintptr) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(int(offset)))
}
