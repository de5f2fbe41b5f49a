package camera

import "github.com/Faultbox/deskscene/pkg/math"

// Projection switches between perspective and orthographic projection.
type Projection struct {
	Orthographic bool
	FOV          float32 // vertical, degrees
	Near         float32
	Far          float32
	OrthoHeight  float32 // visible world height in orthographic mode
}

// Matrix returns the projection for the given width/height ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if p.Orthographic {
		h := p.OrthoHeight / 2
		w := h * aspect
		return math.Ortho(-w, w, -h, h, p.Near, p.Far)
	}
	return math.Perspective(math.Radians(p.FOV), aspect, p.Near, p.Far)
}
