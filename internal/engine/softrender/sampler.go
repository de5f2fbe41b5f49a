package softrender

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

// sample reads img at (u, v) with repeat wrapping and bilinear filtering.
// v=0 is the bottom row, as in GL.
func sample(img *texture.Image, u, v float32) math.Vec4 {
	w, h := img.Width, img.Height
	x := wrap(u)*float32(w) - 0.5
	y := wrap(v)*float32(h) - 0.5
	x0f, y0f := math32.Floor(x), math32.Floor(y)
	fx, fy := x-x0f, y-y0f
	x0, y0 := mod(int(x0f), w), mod(int(y0f), h)
	x1, y1 := mod(x0+1, w), mod(y0+1, h)

	c00 := texel(img, x0, y0)
	c10 := texel(img, x1, y0)
	c01 := texel(img, x0, y1)
	c11 := texel(img, x1, y1)
	return lerp4(lerp4(c00, c10, fx), lerp4(c01, c11, fx), fy)
}

func texel(img *texture.Image, x, y int) math.Vec4 {
	r, g, b, a := img.At(x, y)
	return math.Vec4{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255, W: float32(a) / 255}
}

func lerp4(a, b math.Vec4, t float32) math.Vec4 {
	return math.Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

// wrap maps any coordinate into [0, 1).
func wrap(t float32) float32 {
	return t - math32.Floor(t)
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
