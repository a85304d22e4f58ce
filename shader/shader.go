// Package shader builds linked vertex+fragment programs from source files.
package shader

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// CompileError carries the info log of a shader that failed to compile.
type CompileError struct {
	Kind Kind
	Path string
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v shader %v failed to compile: %v", e.Kind, e.Path, e.Log)
}

// LinkError carries the info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %v", e.Log)
}

// BuildError collects everything that went wrong while building a Program.
// It unwraps to each individual cause.
type BuildError struct {
	VertexPath   string
	FragmentPath string
	Errs         []error
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("building program (%v, %v): %v", e.VertexPath, e.FragmentPath, strings.Join(msgs, "; "))
}

func (e *BuildError) Unwrap() []error {
	return e.Errs
}

// Program is a linked shader program owned by the caller.
type Program struct {
	gl     GL
	id     uint32
	linked bool
}

// New reads, compiles and links the vertex and fragment sources at the given paths.
//
// New never fails to return a Program. Problems are logged as they happen and returned
// as a *BuildError; the Program then holds a handle that may not be usable for drawing.
// Whether to carry on is up to the caller.
func New(gl GL, vertexPath, fragmentPath string) (*Program, error) {
	var errs []error

	vertexShader, err := compile(gl, vertexPath, Vertex)
	if err != nil {
		errs = append(errs, err)
	}
	fragmentShader, err := compile(gl, fragmentPath, Fragment)
	if err != nil {
		errs = append(errs, err)
	}

	p := &Program{
		gl: gl,
		id: gl.CreateProgram(),
	}
	gl.AttachShader(p.id, vertexShader)
	gl.AttachShader(p.id, fragmentShader)
	gl.LinkProgram(p.id)

	p.linked = gl.ProgramLinked(p.id)
	if !p.linked {
		infoLog := gl.ProgramInfoLog(p.id)
		log.Printf("[link error] %v", infoLog)
		errs = append(errs, &LinkError{Log: infoLog})
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	if len(errs) > 0 {
		return p, &BuildError{
			VertexPath:   vertexPath,
			FragmentPath: fragmentPath,
			Errs:         errs,
		}
	}
	return p, nil
}

func compile(gl GL, path string, kind Kind) (uint32, error) {
	var errs []error

	source, err := LoadSource(path)
	if err != nil {
		errs = append(errs, err)
	}

	shader := gl.CreateShader(kind)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)

	if !gl.ShaderCompiled(shader) {
		infoLog := gl.ShaderInfoLog(shader)
		log.Printf("[compile error] %v: %v", kind, infoLog)
		errs = append(errs, &CompileError{Kind: kind, Path: path, Log: infoLog})
	}

	return shader, errors.Join(errs...)
}

// Activate makes p the program used by subsequent draw calls.
func (p *Program) Activate() {
	p.gl.UseProgram(p.id)
}

// SetMat4 uploads m to the uniform called name.
// p must be active. Names the program does not have are ignored.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.gl.UniformMatrix4fv(p.gl.GetUniformLocation(p.id, name), m)
}

// Mat4 reads back the current value of the uniform called name.
func (p *Program) Mat4(name string) (mgl32.Mat4, bool) {
	loc := p.gl.GetUniformLocation(p.id, name)
	if loc < 0 {
		return mgl32.Mat4{}, false
	}
	return p.gl.GetUniformMatrix4fv(p.id, loc), true
}

func (p *Program) Handle() uint32 { return p.id }

// Linked reports whether the last link of p succeeded.
func (p *Program) Linked() bool { return p.linked }

// Delete releases the program. p must not be used afterwards.
func (p *Program) Delete() {
	p.gl.DeleteProgram(p.id)
	p.id = 0
	p.linked = false
}
