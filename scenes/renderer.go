package scenes

import (
	"errors"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/gltutorial/shader"
)

// TransformUniform is the mat4 uniform every shape's vertex shader reads its transform from.
const TransformUniform = "transform"

var clearColour = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Renderer owns the GPU objects of one Scene and draws it once per frame.
type Renderer struct {
	gl    GL
	scene Scene

	vao uint32
	vbo uint32
	ebo uint32

	programs   []*shader.Program
	transforms []mgl32.Mat4
}

// NewRenderer uploads scene and builds a program per shape, reading shader files from assetDir.
//
// A program that fails to build does not stop the renderer from being created;
// the returned error joins every *shader.BuildError and the renderer draws regardless.
func NewRenderer(gl GL, scene Scene, assetDir string) (*Renderer, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		gl:         gl,
		scene:      scene,
		programs:   make([]*shader.Program, len(scene.Shapes)),
		transforms: make([]mgl32.Mat4, len(scene.Shapes)),
	}

	var errs []error
	for i, shape := range scene.Shapes {
		p, err := shader.New(
			gl,
			filepath.Join(assetDir, shape.VertexShader),
			filepath.Join(assetDir, shape.FragmentShader),
		)
		if err != nil {
			errs = append(errs, err)
		}
		r.programs[i] = p
	}

	r.vao = gl.GenVertexArray()
	r.vbo = gl.GenBuffer()
	r.ebo = gl.GenBuffer()

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(ArrayBuffer, r.vbo)
	gl.ArrayBufferData(scene.Vertices)

	gl.BindBuffer(ElementArrayBuffer, r.ebo)
	gl.ElementBufferData(scene.Indices)

	const floatSize = int32(unsafe.Sizeof(float32(0)))

	// position
	gl.VertexAttribPointer(0, 3, Stride*floatSize, 0)
	gl.EnableVertexAttribArray(0)

	// colour
	gl.VertexAttribPointer(1, 3, Stride*floatSize, uintptr(3*floatSize))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	for i, shape := range scene.Shapes {
		r.transforms[i] = shape.Transform
		r.programs[i].Activate()
		r.programs[i].SetMat4(TransformUniform, r.transforms[i])
	}

	return r, errors.Join(errs...)
}

// Frame draws one frame, t seconds after the window was created.
// Each shape is drawn with exactly one draw call, in the order the scene lists them.
func (r *Renderer) Frame(t float64) {
	r.gl.ClearColor(clearColour[0], clearColour[1], clearColour[2], clearColour[3])
	r.gl.Clear()

	r.gl.BindVertexArray(r.vao)
	for i, shape := range r.scene.Shapes {
		r.transforms[i] = r.transforms[i].Mul4(shape.Step(t))

		p := r.programs[i]
		p.Activate()
		p.SetMat4(TransformUniform, r.transforms[i])

		p.Activate()
		r.gl.DrawElements(int32(shape.Count), uintptr(shape.First)*unsafe.Sizeof(uint32(0)))
	}
	r.gl.BindVertexArray(0)
}

// Resize matches the viewport to a framebuffer of the given size.
func (r *Renderer) Resize(width, height int) {
	r.gl.Viewport(0, 0, int32(width), int32(height))
}

// Transform returns the current transform of shape i.
func (r *Renderer) Transform(i int) mgl32.Mat4 {
	return r.transforms[i]
}

// Program returns the program shape i is drawn with.
func (r *Renderer) Program(i int) *shader.Program {
	return r.programs[i]
}

// Delete releases every GPU object the renderer created.
func (r *Renderer) Delete() {
	r.gl.DeleteVertexArray(r.vao)
	r.gl.DeleteBuffer(r.vbo)
	r.gl.DeleteBuffer(r.ebo)
	for _, p := range r.programs {
		p.Delete()
	}
	r.vao, r.vbo, r.ebo = 0, 0, 0
}
