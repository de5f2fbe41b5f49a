package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Limits for FlyCamera.
const (
	MaxPitch = 89 // degrees
	MinSpeed = 0.5
	MaxSpeed = 50
)

// FlyCamera is a free camera: WASD moves along the view direction, Q/E
// move down and up, the mouse turns and the scroll wheel changes speed.
type FlyCamera struct {
	Pos   math.Vec3
	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees

	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel
}

// NewFlyCamera creates a camera at eye facing target.
func NewFlyCamera(eye, target math.Vec3, speed, sensitivity float32) *FlyCamera {
	c := &FlyCamera{
		Pos:         eye,
		Yaw:         -90,
		Speed:       clamp(speed, MinSpeed, MaxSpeed),
		Sensitivity: sensitivity,
	}
	if dir := target.Sub(eye); dir.Length() > 0 {
		dir = dir.Normalize()
		c.Pitch = clamp(degrees(math32.Asin(dir.Y)), -MaxPitch, MaxPitch)
		c.Yaw = degrees(math32.Atan2(dir.Z, dir.X))
	}
	return c
}

func degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	sy, cy := math32.Sincos(math.Radians(c.Yaw))
	sp, cp := math32.Sincos(math.Radians(c.Pitch))
	return math.V3(cy*cp, sp, sy*cp).Normalize()
}

// Right returns the unit right vector, parallel to the ground.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

func (c *FlyCamera) Position() math.Vec3 {
	return c.Pos
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Pos, c.Pos.Add(c.Front()), worldUp)
}

// Look turns the camera. Moving the mouse up (negative dy) looks up.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch-dy*c.Sensitivity, -MaxPitch, MaxPitch)
}

// Zoom scales the movement speed by 10% per wheel step.
func (c *FlyCamera) Zoom(delta float32) {
	c.Speed = clamp(c.Speed*math32.Pow(1.1, delta), MinSpeed, MaxSpeed)
}

// Move applies keyboard movement over dt seconds.
func (c *FlyCamera) Move(m Movement, dt float32) {
	step := c.Speed * dt
	c.Pos = c.Pos.
		Add(c.Front().Scale(m.Forward * step)).
		Add(c.Right().Scale(m.Right * step)).
		Add(worldUp.Scale(m.Up * step))
}
