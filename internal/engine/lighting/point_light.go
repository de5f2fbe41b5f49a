// Package lighting provides the point lights of the scene and the shading
// model shared by the GL and software renderers.
package lighting

import (
	"fmt"

	"github.com/Faultbox/deskscene/pkg/math"
)

// MaxPointLights is the size of the lightSources array in the scene shader.
const MaxPointLights = 4

// PointLight is an omni light with separate ambient, diffuse and specular
// contributions. FocalStrength is the specular exponent: larger values give
// tighter highlights.
type PointLight struct {
	Name              string    `yaml:"name"`
	Position          math.Vec3 `yaml:"position"`
	AmbientColor      math.Vec3 `yaml:"ambient_color"`
	DiffuseColor      math.Vec3 `yaml:"diffuse_color"`
	SpecularColor     math.Vec3 `yaml:"specular_color"`
	FocalStrength     float32   `yaml:"focal_strength"`
	SpecularIntensity float32   `yaml:"specular_intensity"`
}

// Buffer holds the lights uploaded each frame.
type Buffer struct {
	Lights []PointLight
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a light. Returns false if the buffer is full.
func (b *Buffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights, truncating to MaxPointLights.
// It returns the number of lights dropped.
func (b *Buffer) SetLights(lights []PointLight) int {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	return len(lights) - count
}

// Count returns the number of active lights.
func (b *Buffer) Count() int {
	return len(b.Lights)
}

// UniformName returns the shader uniform for one field of light i,
// e.g. "lightSources[2].diffuseColor".
func UniformName(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}

// Defaults returns the four lights of the desk scene: a warm wash from the
// lamp side, a white halo from above, a cool fill from the right and a dim
// strip under the desk.
func Defaults() []PointLight {
	return []PointLight{
		{
			Name:              "left warm wash",
			Position:          math.V3(-6.8, 1.10, -4.25),
			AmbientColor:      math.V3(0.15, 0.05, 0.0),
			DiffuseColor:      math.V3(1.0, 0.20, 0.0),
			SpecularColor:     math.V3(1.0, 0.5, 0.0),
			FocalStrength:     10,
			SpecularIntensity: 0.12,
		},
		{
			Name:              "top white halo",
			Position:          math.V3(0.0, 10.2, -4.8),
			AmbientColor:      math.V3(0.10, 0.12, 0.16),
			DiffuseColor:      math.V3(0.70, 0.74, 0.82),
			SpecularColor:     math.V3(1.0, 1.0, 1.0),
			FocalStrength:     30,
			SpecularIntensity: 0.65,
		},
		{
			Name:              "right fill",
			Position:          math.V3(16.5, 3.5, 3.5),
			AmbientColor:      math.V3(0.20, 0.21, 0.23),
			DiffuseColor:      math.V3(0.58, 0.62, 0.68),
			SpecularColor:     math.V3(0.62, 0.66, 0.72),
			FocalStrength:     110,
			SpecularIntensity: 0.82,
		},
		{
			Name:              "under-desk strip",
			Position:          math.V3(0.0, -0.32, -6.20),
			AmbientColor:      math.V3(0.01, 0.001, 0.001),
			DiffuseColor:      math.V3(0.80, 0.28, 0.02),
			SpecularColor:     math.V3(0.80, 0.28, 0.02),
			FocalStrength:     8,
			SpecularIntensity: 0.05,
		},
	}
}
