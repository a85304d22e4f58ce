package scenes

import "github.com/go-gl/mathgl/mgl32"

func init() {
	Register(Scene{
		Name: "two-triangles",
		Vertices: []float32{
			// position         colour
			-0.25, -0.5, 0.0, 1.0, 1.0, 0.5,
			0.15, 0.0, 0.0, 0.5, 1.0, 0.75,
			0.0, 0.5, 0.0, 0.6, 1.0, 0.2,
			0.5, -0.4, 0.0, 1.0, 0.2, 1.0,
		},
		Indices: []uint32{
			0, 1, 2,
			3, 1, 2,
		},
		Shapes: []Shape{
			{
				VertexShader:   "Vertex_Core.glsl",
				FragmentShader: "Fragment_Core.glsl",
				First:          0,
				Count:          3,
				Transform:      mgl32.HomogRotate3DZ(mgl32.DegToRad(45)),
				Spin:           1.0 / 100,
			},
			{
				VertexShader:   "Vertex_Core.glsl",
				FragmentShader: "Fragment_Core2.glsl",
				First:          3,
				Count:          3,
				Transform:      mgl32.Scale3D(1.5, 1.5, 1.5).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(15))),
				Spin:           -1.0 / 100,
			},
		},
	})
}
