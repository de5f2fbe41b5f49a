// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/pkg/math"
)

var worldUp = math.V3(0, 1, 0)

// Movement is the keyboard movement requested for one frame. Each axis is
// in [-1, 1].
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// IsZero reports whether no movement is requested.
func (m Movement) IsZero() bool {
	return m == Movement{}
}

// Controller is a camera driven by mouse and keyboard.
type Controller interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
	// Look turns the camera by a mouse delta in pixels.
	Look(dx, dy float32)
	// Zoom reacts to the scroll wheel.
	Zoom(delta float32)
	// Move applies keyboard movement over dt seconds.
	Move(m Movement, dt float32)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSpeed        float32 // units per second at distance 1
}

// NewOrbitCamera creates an orbit camera at eye looking at center.
func NewOrbitCamera(eye, center math.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Center:          center,
		MinDistance:     1,
		MaxDistance:     80,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSpeed:        0.5,
	}
	offset := eye.Sub(center)
	c.Distance = clamp(offset.Length(), c.MinDistance, c.MaxDistance)
	if d := offset.Length(); d > 0 {
		c.RotationX = clamp(math32.Asin(offset.Y/d), c.MinPitch, c.MaxPitch)
		c.RotationY = math32.Atan2(offset.X, offset.Z)
	}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := math32.Sincos(c.RotationX)
	sy, cy := math32.Sincos(c.RotationY)
	return c.Center.Add(math.V3(cx*sy, sx, cx*cy).Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, worldUp)
}

// Look updates rotation based on mouse drag delta.
func (c *OrbitCamera) Look(dx, dy float32) {
	c.RotationY -= dx * c.DragSensitivity
	c.RotationX = clamp(c.RotationX+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// Zoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Move pans the center point. Speed scales with distance for a consistent feel.
func (c *OrbitCamera) Move(m Movement, dt float32) {
	speed := c.Distance * c.PanSpeed * dt
	sy, cy := math32.Sincos(c.RotationY)

	// W moves "into" the scene
	forward := math.V3(-sy, 0, -cy)
	right := math.V3(cy, 0, -sy)
	c.Center = c.Center.
		Add(forward.Scale(m.Forward * speed)).
		Add(right.Scale(m.Right * speed)).
		Add(worldUp.Scale(m.Up * speed))
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
