package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

// call is one recorded backend call.
type call struct {
	op       string
	model    math.Mat4
	color    math.Vec4
	slot     int
	uv       math.Vec2
	material string
	lights   int
	enabled  bool
	kind     mesh.Kind
	parts    mesh.Parts
}

// recorder is a Backend that records every call.
type recorder struct {
	calls    []call
	nextID   uint32
	meshes   []mesh.Kind
	bound    []texture.Slot
	deleted  []uint32
	failMesh bool
}

func (r *recorder) UploadTexture(img *texture.Image) (uint32, error) {
	r.nextID++
	return r.nextID, nil
}

func (r *recorder) BindTextures(slots []texture.Slot) {
	r.bound = append([]texture.Slot(nil), slots...)
}

func (r *recorder) DeleteTexture(id uint32) {
	r.deleted = append(r.deleted, id)
}

func (r *recorder) UploadMesh(m *mesh.Mesh) error {
	r.meshes = append(r.meshes, m.Kind)
	return nil
}

func (r *recorder) SetModel(model math.Mat4) {
	r.calls = append(r.calls, call{op: "model", model: model})
}

func (r *recorder) SetColor(c math.Vec4) {
	r.calls = append(r.calls, call{op: "color", color: c})
}

func (r *recorder) SetTexture(slot int) {
	r.calls = append(r.calls, call{op: "texture", slot: slot})
}

func (r *recorder) SetUVScale(u, v float32) {
	r.calls = append(r.calls, call{op: "uv", uv: math.Vec2{X: u, Y: v}})
}

func (r *recorder) SetMaterial(m material.Material) {
	r.calls = append(r.calls, call{op: "material", material: m.Tag})
}

func (r *recorder) SetLights(lights []lighting.PointLight, enabled bool) {
	r.calls = append(r.calls, call{op: "lights", lights: len(lights), enabled: enabled})
}

func (r *recorder) Draw(kind mesh.Kind, parts mesh.Parts) {
	r.calls = append(r.calls, call{op: "draw", kind: kind, parts: parts})
}

// draws splits the recorded calls into the state changes preceding each draw.
func (r *recorder) draws() [][]call {
	var out [][]call
	var cur []call
	for _, c := range r.calls {
		cur = append(cur, c)
		if c.op == "draw" {
			out = append(out, cur)
			cur = nil
		}
	}
	return out
}

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}
