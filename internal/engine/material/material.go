// Package material defines surface materials and the tag-addressed library
// draw calls select them from.
package material

import "github.com/Faultbox/deskscene/pkg/math"

// Material describes how a surface responds to the scene lights.
type Material struct {
	Tag             string    `yaml:"tag"`
	AmbientColor    math.Vec3 `yaml:"ambient_color"`
	AmbientStrength float32   `yaml:"ambient_strength"`
	DiffuseColor    math.Vec3 `yaml:"diffuse_color"`
	SpecularColor   math.Vec3 `yaml:"specular_color"`
	Shininess       float32   `yaml:"shininess"`
}

// Library holds materials in definition order.
type Library struct {
	materials []Material
}

// NewLibrary returns a library holding ms.
func NewLibrary(ms ...Material) *Library {
	l := &Library{}
	for _, m := range ms {
		l.Define(m)
	}
	return l
}

// Define adds m, replacing any material with the same tag.
func (l *Library) Define(m Material) {
	for i := range l.materials {
		if l.materials[i].Tag == m.Tag {
			l.materials[i] = m
			return
		}
	}
	l.materials = append(l.materials, m)
}

// Find returns the material registered under tag. Tags are case sensitive.
func (l *Library) Find(tag string) (Material, bool) {
	for _, m := range l.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of materials.
func (l *Library) Len() int {
	return len(l.materials)
}

// Tags returns every tag in definition order.
func (l *Library) Tags() []string {
	tags := make([]string, len(l.materials))
	for i, m := range l.materials {
		tags[i] = m.Tag
	}
	return tags
}

// Defaults returns the built-in desk materials.
func Defaults() []Material {
	return []Material{
		{
			Tag:             "plastic",
			AmbientColor:    math.V3(0.2, 0.2, 0.1),
			AmbientStrength: 0.4,
			DiffuseColor:    math.V3(0.3, 0.3, 0.2),
			SpecularColor:   math.V3(0.6, 0.5, 0.4),
			Shininess:       12,
		},
		{
			Tag:             "metal",
			AmbientColor:    math.V3(0.2, 0.2, 0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    math.V3(0.2, 0.2, 0.2),
			SpecularColor:   math.V3(0.5, 0.5, 0.5),
			Shininess:       17,
		},
		{
			Tag:             "cement",
			AmbientColor:    math.V3(0.2, 0.2, 0.2),
			AmbientStrength: 0.06,
			DiffuseColor:    math.V3(0.42, 0.42, 0.42),
			SpecularColor:   math.V3(0.8, 0.6, 0.3),
			Shininess:       8,
		},
		{
			Tag:             "wood",
			AmbientColor:    math.V3(0.05, 0.05, 0.05),
			AmbientStrength: 0.1,
			DiffuseColor:    math.V3(0.1, 0.1, 0.1),
			SpecularColor:   math.V3(0.8, 0.6, 0.3),
			Shininess:       16,
		},
		{
			Tag:             "glass",
			AmbientColor:    math.V3(0.2, 0.3, 0.4),
			AmbientStrength: 0.3,
			DiffuseColor:    math.V3(0.3, 0.2, 0.1),
			SpecularColor:   math.V3(0.4, 0.5, 0.6),
			Shininess:       35,
		},
		{
			Tag:             "clay",
			AmbientColor:    math.V3(0.2, 0.2, 0.3),
			AmbientStrength: 0.3,
			DiffuseColor:    math.V3(0.4, 0.4, 0.5),
			SpecularColor:   math.V3(0.2, 0.2, 0.4),
			Shininess:       0.5,
		},
		{
			Tag:             "Mousepad",
			AmbientColor:    math.V3(0.1, 0.1, 0.1),
			AmbientStrength: 0.3,
			DiffuseColor:    math.V3(0.4, 0.4, 0.5),
			SpecularColor:   math.V3(0.2, 0.2, 0.4),
			Shininess:       2,
		},
	}
}
