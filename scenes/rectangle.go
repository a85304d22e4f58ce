package scenes

import "github.com/go-gl/mathgl/mgl32"

func init() {
	Register(Scene{
		Name: "rectangle",
		Vertices: []float32{
			0.5, 0.5, 0.0, 1.0, 0.5, 0.2,
			0.5, -0.5, 0.0, 0.5, 1.0, 0.2,
			-0.5, -0.5, 0.0, 0.2, 0.5, 1.0,
			-0.5, 0.5, 0.0, 1.0, 1.0, 1.0,
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Shapes: []Shape{{
			VertexShader:   "Vertex_Core.glsl",
			FragmentShader: "Fragment_Core.glsl",
			Count:          6,
			Transform:      mgl32.Ident4(),
			Spin:           1.0 / 100,
		}},
	})
}
