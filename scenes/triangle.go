package scenes

import "github.com/go-gl/mathgl/mgl32"

func init() {
	Register(Scene{
		Name: "triangle",
		Vertices: []float32{
			-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
		},
		Indices: []uint32{0, 1, 2},
		Shapes: []Shape{{
			VertexShader:   "Vertex_Core.glsl",
			FragmentShader: "Fragment_Core.glsl",
			Count:          3,
			Transform:      mgl32.Ident4(),
		}},
	})
}
