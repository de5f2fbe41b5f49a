package lighting

import (
	"testing"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/pkg/math"
)

func TestBufferCapacity(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{}) {
			t.Fatalf("AddLight #%d rejected", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("AddLight accepted a light past capacity")
	}
	if b.Count() != MaxPointLights {
		t.Errorf("Count() = %d, want %d", b.Count(), MaxPointLights)
	}
}

func TestSetLightsTruncates(t *testing.T) {
	b := NewBuffer()
	lights := append(Defaults(), PointLight{Name: "extra"})

	dropped := b.SetLights(lights)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if b.Count() != MaxPointLights {
		t.Errorf("Count() = %d, want %d", b.Count(), MaxPointLights)
	}
	if b.Lights[0].Name != "left warm wash" {
		t.Errorf("first light = %q", b.Lights[0].Name)
	}
}

func TestUniformName(t *testing.T) {
	if got := UniformName(2, "focalStrength"); got != "lightSources[2].focalStrength" {
		t.Errorf("UniformName = %q", got)
	}
}

func TestDefaultsMatchShaderArray(t *testing.T) {
	if n := len(Defaults()); n != MaxPointLights {
		t.Errorf("Defaults() has %d lights, shader holds %d", n, MaxPointLights)
	}
}

func whiteMaterial() material.Material {
	return material.Material{
		AmbientColor:    math.V3(1, 1, 1),
		AmbientStrength: 0.1,
		DiffuseColor:    math.V3(1, 1, 1),
		SpecularColor:   math.V3(1, 1, 1),
		Shininess:       16,
	}
}

func TestShadeFacingVersusAway(t *testing.T) {
	light := PointLight{
		Position:     math.V3(0, 5, 0),
		DiffuseColor: math.V3(1, 1, 1),
	}
	in := ShadeInput{
		Position: math.V3(0, 0, 0),
		Normal:   math.V3(0, 1, 0),
		ViewPos:  math.V3(0, 5, 5),
		Material: whiteMaterial(),
		Lights:   []PointLight{light},
	}

	facing := Shade(in)
	if facing.X < 0.99 {
		t.Errorf("surface facing the light = %v, want ~1", facing)
	}

	in.Normal = math.V3(0, -1, 0)
	away := Shade(in)
	if away != (math.Vec3{}) {
		t.Errorf("surface facing away with no ambient = %v, want black", away)
	}
}

func TestShadeAmbientOnly(t *testing.T) {
	light := PointLight{
		Position:     math.V3(0, -5, 0),
		AmbientColor: math.V3(0.5, 0.25, 0),
	}
	got := Shade(ShadeInput{
		Normal:   math.V3(0, 1, 0),
		ViewPos:  math.V3(0, 1, 0),
		Material: whiteMaterial(),
		Lights:   []PointLight{light},
	})
	want := math.V3(0.05, 0.025, 0)
	if d := got.Sub(want).Length(); d > 1e-6 {
		t.Errorf("ambient = %v, want %v", got, want)
	}
}

func TestShadeSpecularHighlight(t *testing.T) {
	light := PointLight{
		Position:          math.V3(0, 5, 0),
		SpecularColor:     math.V3(1, 1, 1),
		FocalStrength:     32,
		SpecularIntensity: 0.5,
	}
	in := ShadeInput{
		Normal:   math.V3(0, 1, 0),
		ViewPos:  math.V3(0, 5, 0), // mirror direction
		Material: whiteMaterial(),
		Lights:   []PointLight{light},
	}

	got := Shade(in)
	if got.X < 0.49 || got.X > 0.51 {
		t.Errorf("mirror specular = %v, want 0.5", got)
	}

	in.ViewPos = math.V3(5, 0.1, 0) // grazing, far from the reflection
	if off := Shade(in); off.X > 0.01 {
		t.Errorf("off-axis specular = %v, want ~0", off)
	}
}

func TestShadeClamps(t *testing.T) {
	hot := PointLight{Position: math.V3(0, 1, 0), DiffuseColor: math.V3(5, 5, 5)}
	got := Shade(ShadeInput{
		Normal:   math.V3(0, 1, 0),
		ViewPos:  math.V3(0, 1, 0),
		Material: whiteMaterial(),
		Lights:   []PointLight{hot, hot},
	})
	if got != math.V3(1, 1, 1) {
		t.Errorf("Shade = %v, want clamped white", got)
	}
}
