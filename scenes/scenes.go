// Package scenes holds the hardcoded geometry drawn by the tutorial and the
// per-frame code that draws it.
package scenes

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnknownScene = errors.New("unknown scene")
	ErrBadScene     = errors.New("invalid scene")
)

// Stride is the number of floats per vertex: position xyz then colour rgb.
const Stride = 6

// Default is the scene drawn when none is configured.
const Default = "two-triangles"

var scenes []Scene

// Register adds s to the list of known scenes. It is meant to be called from init.
func Register(s Scene) {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	for i := range scenes {
		if scenes[i].Name == s.Name {
			scenes[i] = s
			return
		}
	}
	scenes = append(scenes, s)
}

// Get returns the scene called name.
func Get(name string) (Scene, error) {
	for _, s := range scenes {
		if s.Name == name {
			return s, nil
		}
	}
	return Scene{}, fmt.Errorf("%w %q", ErrUnknownScene, name)
}

func Names() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return names
}

// Scene is static geometry plus the shapes it is drawn as.
// Vertices and Indices are uploaded once and never change.
type Scene struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Shapes   []Shape
}

// Shape is one draw call: a range of the scene's indices drawn with its own program.
type Shape struct {
	VertexShader   string
	FragmentShader string

	// First and Count select Indices[First:First+Count].
	First int
	Count int

	// Transform is the value of the "transform" uniform before the first frame.
	Transform mgl32.Mat4

	// Spin is the rotation about z, in degrees per second of elapsed time,
	// applied on top of Transform every frame.
	Spin float32
}

// Step returns the rotation applied to s on a frame drawn t seconds after start.
func (s Shape) Step(t float64) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(t) * s.Spin))
}

func (s Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: no name", ErrBadScene)
	}
	if len(s.Vertices)%Stride != 0 {
		return fmt.Errorf("%w %q: %v floats is not a whole number of %v float vertices", ErrBadScene, s.Name, len(s.Vertices), Stride)
	}
	numVertices := uint32(len(s.Vertices) / Stride)
	for i, index := range s.Indices {
		if index >= numVertices {
			return fmt.Errorf("%w %q: index %v refers to vertex %v of %v", ErrBadScene, s.Name, i, index, numVertices)
		}
	}
	if len(s.Shapes) == 0 {
		return fmt.Errorf("%w %q: no shapes", ErrBadScene, s.Name)
	}
	for i, shape := range s.Shapes {
		if shape.First < 0 || shape.Count <= 0 || shape.First+shape.Count > len(s.Indices) {
			return fmt.Errorf("%w %q: shape %v draws indices [%v, %v) of %v", ErrBadScene, s.Name, i, shape.First, shape.First+shape.Count, len(s.Indices))
		}
		if shape.Count%3 != 0 {
			return fmt.Errorf("%w %q: shape %v draws %v indices, not whole triangles", ErrBadScene, s.Name, i, shape.Count)
		}
	}
	return nil
}
