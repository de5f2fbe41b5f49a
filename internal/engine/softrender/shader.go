package softrender

import (
	"github.com/fogleman/fauxgl"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/pkg/math"
)

// drawShader is the CPU counterpart of scene.vert and scene.frag.
// fauxgl calls it from several goroutines, so it is read-only.
type drawShader struct {
	state
}

// Vertex moves the vertex to world space and computes its clip position.
func (s *drawShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	world := s.model.TransformPoint(unvec(v.Position))
	m := s.viewProj
	v.Output = fauxgl.VectorW{
		X: float64(m[0]*world.X + m[4]*world.Y + m[8]*world.Z + m[12]),
		Y: float64(m[1]*world.X + m[5]*world.Y + m[9]*world.Z + m[13]),
		Z: float64(m[2]*world.X + m[6]*world.Y + m[10]*world.Z + m[14]),
		W: float64(m[3]*world.X + m[7]*world.Y + m[11]*world.Z + m[15]),
	}
	v.Position = vec(world)
	v.Normal = vec(s.normal.MulVec3(unvec(v.Normal)))
	return v
}

// Fragment shades one interpolated vertex.
func (s *drawShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	base := s.color
	if s.useTexture {
		base = math.RGBA(1, 1, 1, 1)
		if s.tex != nil {
			base = sample(s.tex, float32(v.Texture.X)*s.uvScale.X, float32(v.Texture.Y)*s.uvScale.Y)
		}
	}

	rgb := base.XYZ()
	if s.lit {
		light := lighting.Shade(lighting.ShadeInput{
			Position: unvec(v.Position),
			Normal:   unvec(v.Normal),
			ViewPos:  s.eye,
			Material: s.material,
			Lights:   s.lights,
		})
		rgb = light.Mul(rgb)
	}
	return fauxgl.Color{R: float64(rgb.X), G: float64(rgb.Y), B: float64(rgb.Z), A: float64(base.W)}
}
