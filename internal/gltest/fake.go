// Package gltest provides an in-memory stand-in for the graphics API.
//
// It tracks objects, program state and uniforms closely enough to test code
// built on shader.GL and scenes.GL without a window or a GPU.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/gltutorial/scenes"
	"github.com/stewi1014/gltutorial/shader"
)

var (
	_ shader.GL = (*GL)(nil)
	_ scenes.GL = (*GL)(nil)
)

// Call is one recorded API call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%v%v", c.Name, c.Args)
}

type shaderObject struct {
	kind     shader.Kind
	source   string
	compiled bool
	log      string
}

type programObject struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32]mgl32.Mat4
}

var uniformDecl = regexp.MustCompile(`uniform\s+mat4\s+(\w+)\s*;`)

// GL is a fake graphics API. The zero value is not usable; call New.
//
// A shader compiles when its source is non-empty, declares main and has balanced braces.
// A program links when it has a compiled vertex and a compiled fragment shader.
// Its uniforms are the "uniform mat4 name;" declarations of those shaders.
type GL struct {
	Calls []Call

	nextID   uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	current  uint32

	VertexArrays map[uint32]bool
	Buffers      map[uint32]bool
	Deleted      map[uint32]int

	ArrayData    []float32
	ElementData  []uint32
	ViewportRect [4]int32
}

func New() *GL {
	return &GL{
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		VertexArrays: make(map[uint32]bool),
		Buffers:      make(map[uint32]bool),
		Deleted:      make(map[uint32]int),
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) id() uint32 {
	g.nextID++
	return g.nextID
}

// CallsNamed returns the recorded calls with one of the given names, in order.
func (g *GL) CallsNamed(names ...string) []Call {
	var calls []Call
	for _, c := range g.Calls {
		for _, name := range names {
			if c.Name == name {
				calls = append(calls, c)
				break
			}
		}
	}
	return calls
}

// Reset forgets the recorded calls but keeps all object state.
func (g *GL) Reset() {
	g.Calls = nil
}

// CurrentProgram is the program last passed to UseProgram.
func (g *GL) CurrentProgram() uint32 {
	return g.current
}

// Shaders returns the number of shader objects that have not been deleted.
func (g *GL) Shaders() int {
	return len(g.shaders)
}

func (g *GL) CreateShader(kind shader.Kind) uint32 {
	id := g.id()
	g.shaders[id] = &shaderObject{kind: kind}
	g.record("CreateShader", kind)
	return id
}

func (g *GL) ShaderSource(id uint32, source string) {
	if s, ok := g.shaders[id]; ok {
		s.source = source
	}
	g.record("ShaderSource", id)
}

func (g *GL) CompileShader(id uint32) {
	g.record("CompileShader", id)
	s, ok := g.shaders[id]
	if !ok {
		return
	}
	switch {
	case strings.TrimSpace(s.source) == "":
		s.compiled, s.log = false, "0:1(1): error: empty shader source"
	case !strings.Contains(s.source, "main"):
		s.compiled, s.log = false, "0:1(1): error: no main function"
	case strings.Count(s.source, "{") != strings.Count(s.source, "}"):
		s.compiled, s.log = false, "0:1(1): error: syntax error, unexpected end of file"
	default:
		s.compiled, s.log = true, ""
	}
}

func (g *GL) ShaderCompiled(id uint32) bool {
	s, ok := g.shaders[id]
	return ok && s.compiled
}

func (g *GL) ShaderInfoLog(id uint32) string {
	if s, ok := g.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (g *GL) DeleteShader(id uint32) {
	g.record("DeleteShader", id)
	delete(g.shaders, id)
	g.Deleted[id]++
}

func (g *GL) CreateProgram() uint32 {
	id := g.id()
	g.programs[id] = &programObject{
		uniforms: make(map[string]int32),
		values:   make(map[int32]mgl32.Mat4),
	}
	g.record("CreateProgram")
	return id
}

func (g *GL) AttachShader(program, id uint32) {
	g.record("AttachShader", program, id)
	if p, ok := g.programs[program]; ok {
		p.shaders = append(p.shaders, id)
	}
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram", program)
	p, ok := g.programs[program]
	if !ok {
		return
	}

	var vertex, fragment bool
	var sources []string
	for _, id := range p.shaders {
		s, ok := g.shaders[id]
		if !ok || !s.compiled {
			continue
		}
		vertex = vertex || s.kind == shader.Vertex
		fragment = fragment || s.kind == shader.Fragment
		sources = append(sources, s.source)
	}

	p.uniforms = make(map[string]int32)
	p.values = make(map[int32]mgl32.Mat4)
	if !vertex || !fragment {
		p.linked = false
		p.log = "error: linking with uncompiled/unspecialized shader"
		return
	}
	p.linked, p.log = true, ""

	var loc int32
	for _, source := range sources {
		for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = loc
				loc++
			}
		}
	}
}

func (g *GL) ProgramLinked(program uint32) bool {
	p, ok := g.programs[program]
	return ok && p.linked
}

func (g *GL) ProgramInfoLog(program uint32) string {
	if p, ok := g.programs[program]; ok {
		return p.log
	}
	return ""
}

func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram", program)
	g.current = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram", program)
	delete(g.programs, program)
	g.Deleted[program]++
}

func (g *GL) GetUniformLocation(program uint32, name string) int32 {
	p, ok := g.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (g *GL) UniformMatrix4fv(location int32, value mgl32.Mat4) {
	g.record("UniformMatrix4fv", location)
	if location < 0 {
		return
	}
	p, ok := g.programs[g.current]
	if !ok || !p.linked {
		return
	}
	p.values[location] = value
}

func (g *GL) GetUniformMatrix4fv(program uint32, location int32) mgl32.Mat4 {
	p, ok := g.programs[program]
	if !ok {
		return mgl32.Mat4{}
	}
	return p.values[location]
}

// Uniforms returns a copy of every uniform value set on program, by location.
func (g *GL) Uniforms(program uint32) map[int32]mgl32.Mat4 {
	values := make(map[int32]mgl32.Mat4)
	if p, ok := g.programs[program]; ok {
		for k, v := range p.values {
			values[k] = v
		}
	}
	return values
}

func (g *GL) GenVertexArray() uint32 {
	id := g.id()
	g.VertexArrays[id] = true
	g.record("GenVertexArray")
	return id
}

func (g *GL) BindVertexArray(vao uint32) {
	g.record("BindVertexArray", vao)
}

func (g *GL) DeleteVertexArray(vao uint32) {
	g.record("DeleteVertexArray", vao)
	delete(g.VertexArrays, vao)
	g.Deleted[vao]++
}

func (g *GL) GenBuffer() uint32 {
	id := g.id()
	g.Buffers[id] = true
	g.record("GenBuffer")
	return id
}

func (g *GL) BindBuffer(target scenes.BufferTarget, buffer uint32) {
	g.record("BindBuffer", target, buffer)
}

func (g *GL) DeleteBuffer(buffer uint32) {
	g.record("DeleteBuffer", buffer)
	delete(g.Buffers, buffer)
	g.Deleted[buffer]++
}

func (g *GL) ArrayBufferData(data []float32) {
	g.record("ArrayBufferData", len(data))
	g.ArrayData = append([]float32(nil), data...)
}

func (g *GL) ElementBufferData(data []uint32) {
	g.record("ElementBufferData", len(data))
	g.ElementData = append([]uint32(nil), data...)
}

func (g *GL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	g.record("VertexAttribPointer", index, size, stride, offset)
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.record("Viewport", x, y, width, height)
	g.ViewportRect = [4]int32{x, y, width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.record("ClearColor", r, gr, b, a)
}

func (g *GL) Clear() {
	g.record("Clear")
}

// DrawElements records the draw along with the program that was current for it.
func (g *GL) DrawElements(count int32, offset uintptr) {
	g.record("DrawElements", g.current, count, offset)
}
