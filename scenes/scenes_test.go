package scenes_test

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/gltutorial/internal/gltest"
	"github.com/stewi1014/gltutorial/scenes"
	"github.com/stewi1014/gltutorial/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assets = "../assets"

func TestBuiltinScenesValid(t *testing.T) {
	for _, name := range []string{"two-triangles", "triangle", "rectangle"} {
		t.Run(name, func(t *testing.T) {
			s, err := scenes.Get(name)
			require.NoError(t, err)
			assert.NoError(t, s.Validate())
		})
	}

	assert.Contains(t, scenes.Names(), scenes.Default)
}

func TestGetUnknown(t *testing.T) {
	_, err := scenes.Get("teapot")
	assert.ErrorIs(t, err, scenes.ErrUnknownScene)
}

func TestValidate(t *testing.T) {
	good := scenes.Scene{
		Name:     "ok",
		Vertices: make([]float32, 3*scenes.Stride),
		Indices:  []uint32{0, 1, 2},
		Shapes:   []scenes.Shape{{Count: 3}},
	}
	require.NoError(t, good.Validate())

	tests := map[string]func(s *scenes.Scene){
		"no name":             func(s *scenes.Scene) { s.Name = "" },
		"partial vertex":      func(s *scenes.Scene) { s.Vertices = s.Vertices[:len(s.Vertices)-1] },
		"index out of range":  func(s *scenes.Scene) { s.Indices = []uint32{0, 1, 3} },
		"no shapes":           func(s *scenes.Scene) { s.Shapes = nil },
		"range past indices":  func(s *scenes.Scene) { s.Shapes = []scenes.Shape{{First: 3, Count: 3}} },
		"not whole triangles": func(s *scenes.Scene) { s.Shapes = []scenes.Shape{{Count: 2}} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := good
			s.Indices = append([]uint32(nil), good.Indices...)
			s.Shapes = append([]scenes.Shape(nil), good.Shapes...)
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), scenes.ErrBadScene)
		})
	}
}

func TestShapeStep(t *testing.T) {
	s := scenes.Shape{Spin: 1.0 / 100}
	assert.Equal(t, mgl32.Ident4(), s.Step(0))

	want := mgl32.HomogRotate3DZ(mgl32.DegToRad(0.5))
	assert.True(t, want.ApproxEqual(s.Step(50)))

	s.Spin = -s.Spin
	assert.True(t, want.Inv().ApproxEqualThreshold(s.Step(50), 1e-6))
}

func newRenderer(t *testing.T, name string) (*gltest.GL, *scenes.Renderer) {
	t.Helper()
	scene, err := scenes.Get(name)
	require.NoError(t, err)

	gl := gltest.New()
	r, err := scenes.NewRenderer(gl, scene, assets)
	require.NoError(t, err)
	require.NotNil(t, r)
	return gl, r
}

func TestNewRendererUploads(t *testing.T) {
	gl, r := newRenderer(t, "two-triangles")
	scene, _ := scenes.Get("two-triangles")

	assert.Equal(t, scene.Vertices, gl.ArrayData)
	assert.Equal(t, scene.Indices, gl.ElementData)
	assert.Len(t, gl.VertexArrays, 1)
	assert.Len(t, gl.Buffers, 2)

	attribs := gl.CallsNamed("VertexAttribPointer")
	require.Len(t, attribs, 2)
	assert.Equal(t, []any{uint32(0), int32(3), int32(24), uintptr(0)}, attribs[0].Args)
	assert.Equal(t, []any{uint32(1), int32(3), int32(24), uintptr(12)}, attribs[1].Args)

	for i, shape := range scene.Shapes {
		p := r.Program(i)
		assert.True(t, p.Linked())
		got, ok := p.Mat4(scenes.TransformUniform)
		require.True(t, ok)
		assert.Equal(t, shape.Transform, got)
	}
}

func TestFrameDrawsEachShapeOnce(t *testing.T) {
	gl, r := newRenderer(t, "two-triangles")
	first, second := r.Program(0).Handle(), r.Program(1).Handle()
	require.NotEqual(t, first, second)

	for frame := 0; frame < 3; frame++ {
		gl.Reset()
		r.Frame(float64(frame) / 60)

		draws := gl.CallsNamed("DrawElements")
		require.Len(t, draws, 2)
		assert.Equal(t, []any{first, int32(3), uintptr(0)}, draws[0].Args)
		assert.Equal(t, []any{second, int32(3), uintptr(12)}, draws[1].Args)

		// The program is switched with UseProgram right before each draw.
		calls := gl.CallsNamed("UseProgram", "DrawElements")
		var prev gltest.Call
		for _, c := range calls {
			if c.Name == "DrawElements" {
				assert.Equal(t, "UseProgram", prev.Name)
				assert.Equal(t, c.Args[0], prev.Args[0])
			}
			prev = c
		}

		clears := gl.CallsNamed("Clear")
		assert.Len(t, clears, 1)
	}
}

func TestFrameSpinsTransforms(t *testing.T) {
	_, r := newRenderer(t, "two-triangles")
	scene, _ := scenes.Get("two-triangles")

	want := []mgl32.Mat4{scene.Shapes[0].Transform, scene.Shapes[1].Transform}
	for _, tm := range []float64{0.5, 1, 1.5} {
		r.Frame(tm)
		for i, shape := range scene.Shapes {
			want[i] = want[i].Mul4(shape.Step(tm))
			assert.True(t, want[i].ApproxEqual(r.Transform(i)))

			got, ok := r.Program(i).Mat4(scenes.TransformUniform)
			require.True(t, ok)
			assert.Equal(t, r.Transform(i), got)
		}
	}

	// Opposite spins: the first shape turned anticlockwise, the second clockwise.
	first := r.Transform(0).Mul4(scene.Shapes[0].Transform.Inv())
	assert.Greater(t, first.At(1, 0), float32(0))
}

func TestResize(t *testing.T) {
	gl, r := newRenderer(t, "triangle")
	r.Resize(1024, 768)
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, gl.ViewportRect)
}

func TestDeleteReleasesEverythingOnce(t *testing.T) {
	gl, r := newRenderer(t, "two-triangles")
	programs := []uint32{r.Program(0).Handle(), r.Program(1).Handle()}

	var objects []uint32
	for id := range gl.VertexArrays {
		objects = append(objects, id)
	}
	for id := range gl.Buffers {
		objects = append(objects, id)
	}

	r.Delete()

	assert.Empty(t, gl.VertexArrays)
	assert.Empty(t, gl.Buffers)
	for _, id := range append(objects, programs...) {
		assert.Equal(t, 1, gl.Deleted[id], "object %v", id)
	}
}

func TestNewRendererBrokenShaders(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	scene, err := scenes.Get("triangle")
	require.NoError(t, err)

	gl := gltest.New()
	r, err := scenes.NewRenderer(gl, scene, t.TempDir())
	require.NotNil(t, r)

	var buildErr *shader.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.False(t, r.Program(0).Linked())

	// Still draws, with whatever the API makes of the unlinked program.
	gl.Reset()
	r.Frame(0)
	assert.Len(t, gl.CallsNamed("DrawElements"), 1)
}
