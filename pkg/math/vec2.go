package math

// Vec2 is a 2D vector. The scene uses it for texture UV scales.
type Vec2 struct {
	X, Y float32
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Vec4 is an RGBA color or homogeneous point.
type Vec4 struct {
	X, Y, Z, W float32
}

// RGBA builds a color vector.
func RGBA(r, g, b, a float32) Vec4 {
	return Vec4{r, g, b, a}
}

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
