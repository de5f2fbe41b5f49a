// Package scene describes the desk tableau and plays it back as a sequence
// of state changes and draw calls against a rendering backend.
package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Backend receives resources once and then per-draw state changes.
// State set through it persists until changed, like shader uniforms.
type Backend interface {
	// UploadTexture stores a decoded image and returns its nonzero ID.
	UploadTexture(img *texture.Image) (uint32, error)
	// BindTextures makes slot i of the table sample texture slots[i].ID.
	BindTextures(slots []texture.Slot)
	// DeleteTexture releases a texture returned by UploadTexture.
	DeleteTexture(id uint32)
	UploadMesh(m *mesh.Mesh) error

	SetModel(model math.Mat4)
	// SetColor switches to a flat color and disables texturing.
	SetColor(c math.Vec4)
	// SetTexture enables texturing from a table slot.
	SetTexture(slot int)
	SetUVScale(u, v float32)
	SetMaterial(m material.Material)
	SetLights(lights []lighting.PointLight, enabled bool)
	Draw(kind mesh.Kind, parts mesh.Parts)
}
