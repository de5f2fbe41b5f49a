package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/pkg/math"
)

// shininessReference is the material shininess that leaves specular
// highlights unscaled. scene.frag uses the same constant.
const shininessReference = 16

// ShadeInput is everything the lighting model needs for one surface point.
type ShadeInput struct {
	Position math.Vec3 // world space
	Normal   math.Vec3 // world space, need not be normalized
	ViewPos  math.Vec3
	Material material.Material
	Lights   []PointLight
}

// Shade returns the light reaching the viewer from one surface point, before
// it is multiplied with the surface color. Each light adds
//
//	ambient  = light.ambient * material.ambient * material.ambientStrength
//	diffuse  = max(N.L, 0) * light.diffuse * material.diffuse
//	specular = pow(max(V.R, 0), light.focalStrength) * light.specularIntensity
//	           * light.specular * material.specular * shininess/16
//
// and the sum is clamped to [0, 1].
func Shade(in ShadeInput) math.Vec3 {
	n := in.Normal.Normalize()
	v := in.ViewPos.Sub(in.Position).Normalize()
	m := in.Material
	gain := m.Shininess / shininessReference

	var total math.Vec3
	for _, l := range in.Lights {
		ambient := l.AmbientColor.Mul(m.AmbientColor).Scale(m.AmbientStrength)

		ld := l.Position.Sub(in.Position).Normalize()
		diff := math32.Max(n.Dot(ld), 0)
		diffuse := l.DiffuseColor.Mul(m.DiffuseColor).Scale(diff)

		r := ld.Scale(-1).Reflect(n)
		spec := math32.Pow(math32.Max(v.Dot(r), 0), l.FocalStrength)
		specular := l.SpecularColor.Mul(m.SpecularColor).Scale(spec * l.SpecularIntensity * gain)

		total = total.Add(ambient).Add(diffuse).Add(specular)
	}
	return total.Clamp01()
}
