package scene

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

var white = math.RGBA(1, 1, 1, 1)

// Options configure a Manager.
type Options struct {
	TextureDir     string
	MaxTextureSize int
	Lighting       bool
	Logger         *zap.Logger // defaults to the "scene" logger
}

// step is one compiled part ready for playback.
type step struct {
	object string
	kind   mesh.Kind
	parts  mesh.Parts
	model  math.Mat4
	part   Part
}

// Manager loads a scene's resources into a backend and renders it.
type Manager struct {
	backend Backend
	desc    *Description
	opts    Options
	log     *zap.Logger

	textures  texture.Table
	materials *material.Library
	lights    *lighting.Buffer
	lighting  bool
	steps     []step
	prepared  bool

	// Missing tags already reported during RenderScene.
	reported map[string]bool
}

// NewManager creates a manager for desc. Nothing touches the backend until
// PrepareScene.
func NewManager(backend Backend, desc *Description, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = logger.Named("scene")
	}
	return &Manager{
		backend:   backend,
		desc:      desc,
		opts:      opts,
		log:       log,
		materials: material.NewLibrary(material.Defaults()...),
		lights:    lighting.NewBuffer(),
		lighting:  opts.Lighting,
		reported:  make(map[string]bool),
	}
}

// PrepareScene decodes and uploads textures, defines materials and lights,
// uploads every mesh and compiles the object list. A texture that fails to
// load is skipped with a warning; parts using it fall back to their color.
func (m *Manager) PrepareScene(ctx context.Context) error {
	if m.prepared {
		return errors.New("scene already prepared")
	}

	if err := m.loadTextures(ctx); err != nil {
		return err
	}

	for _, mat := range m.desc.Materials {
		m.materials.Define(mat)
	}

	lights := m.desc.Lights
	if len(lights) == 0 {
		lights = lighting.Defaults()
	}
	if dropped := m.lights.SetLights(lights); dropped > 0 {
		m.log.Warn("too many lights, extra lights ignored",
			zap.Int("max", lighting.MaxPointLights), zap.Int("dropped", dropped))
	}

	meshes, err := mesh.BuildAll()
	if err != nil {
		return err
	}
	for _, mm := range meshes {
		if err := m.backend.UploadMesh(mm); err != nil {
			return fmt.Errorf("uploading %s mesh: %w", mm.Kind, err)
		}
	}

	steps, err := compile(m.desc)
	if err != nil {
		return err
	}
	m.steps = steps
	m.prepared = true

	m.log.Info("scene prepared",
		zap.Int("textures", m.textures.Len()),
		zap.Int("materials", m.materials.Len()),
		zap.Int("lights", m.lights.Count()),
		zap.Int("objects", len(m.desc.Objects)),
		zap.Int("draws", len(m.steps)))
	return nil
}

func (m *Manager) loadTextures(ctx context.Context) error {
	decoded, err := texture.DecodeAll(ctx, m.opts.TextureDir, m.desc.Textures, m.opts.MaxTextureSize)
	if err != nil {
		return fmt.Errorf("loading textures: %w", err)
	}
	for _, d := range decoded {
		if d.Err != nil {
			m.log.Warn("texture not loaded", zap.String("tag", d.Spec.Tag), zap.Error(d.Err))
			continue
		}
		if err := m.CreateTexture(d.Spec.Tag, d.Image); err != nil {
			m.log.Warn("texture not registered", zap.String("tag", d.Spec.Tag), zap.Error(err))
		}
	}
	m.backend.BindTextures(m.textures.Slots())
	return nil
}

// CreateTexture uploads img and registers it under tag in the next free slot.
func (m *Manager) CreateTexture(tag string, img *texture.Image) error {
	if m.textures.FindSlot(tag) >= 0 {
		return fmt.Errorf("texture %q: %w", tag, texture.ErrDuplicateTag)
	}
	if m.textures.Len() >= texture.MaxSlots {
		return texture.ErrTableFull
	}
	id, err := m.backend.UploadTexture(img)
	if err != nil {
		return fmt.Errorf("uploading texture %q: %w", tag, err)
	}
	slot, err := m.textures.Register(tag, id)
	if err != nil {
		m.backend.DeleteTexture(id)
		return err
	}
	m.log.Debug("texture loaded",
		zap.String("tag", tag), zap.Int("slot", slot),
		zap.Int("width", img.Width), zap.Int("height", img.Height), zap.Int("channels", img.Channels))
	return nil
}

func compile(d *Description) ([]step, error) {
	var steps []step
	for _, o := range d.Objects {
		for i, p := range o.Parts {
			kind, err := mesh.ParseKind(p.Mesh)
			if err != nil {
				return nil, fmt.Errorf("object %q part %d: %w %q", o.Name, i, ErrUnknownMesh, p.Mesh)
			}
			parts, err := mesh.ParseParts(p.Parts)
			if err != nil {
				return nil, fmt.Errorf("object %q part %d: %w", o.Name, i, err)
			}
			steps = append(steps, step{object: o.Name, kind: kind, parts: parts, model: p.Model(), part: p})
		}
	}
	return steps, nil
}

// SetTransformations composes scale, rotation (degrees) and position into
// the model matrix.
func (m *Manager) SetTransformations(scale math.Vec3, rotX, rotY, rotZ float32, pos math.Vec3) {
	m.backend.SetModel(math.Compose(scale, rotX, rotY, rotZ, pos))
}

// SetShaderColor draws following meshes with a flat color.
func (m *Manager) SetShaderColor(c math.Vec4) {
	m.backend.SetColor(c)
}

// SetShaderTexture selects the texture registered under tag. It reports
// false and leaves the state unchanged when the tag is unknown.
func (m *Manager) SetShaderTexture(tag string) bool {
	return m.useTexture(tag, false)
}

func (m *Manager) useTexture(tag string, once bool) bool {
	slot := m.textures.FindSlot(tag)
	if slot < 0 {
		m.warnUnknown("unknown texture", tag, once)
		return false
	}
	m.backend.SetTexture(slot)
	return true
}

// SetTextureUVScale sets the texture coordinate multiplier.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.backend.SetUVScale(u, v)
}

// SetShaderMaterial selects the material defined under tag. It reports false
// and keeps the previous material when the tag is unknown.
func (m *Manager) SetShaderMaterial(tag string) bool {
	return m.useMaterial(tag, false)
}

func (m *Manager) useMaterial(tag string, once bool) bool {
	mat, ok := m.materials.Find(tag)
	if !ok {
		m.warnUnknown("unknown material", tag, once)
		return false
	}
	m.backend.SetMaterial(mat)
	return true
}

// warnUnknown logs a missing tag. With once set, each message and tag pair
// is logged only the first time.
func (m *Manager) warnUnknown(msg, tag string, once bool) {
	if once {
		key := msg + "/" + tag
		if m.reported[key] {
			return
		}
		m.reported[key] = true
	}
	m.log.Warn(msg, zap.String("tag", tag))
}

// SetLighting turns lighting on or off for the next RenderScene.
func (m *Manager) SetLighting(enabled bool) {
	m.lighting = enabled
}

// Lighting reports whether lighting is enabled.
func (m *Manager) Lighting() bool {
	return m.lighting
}

// RenderScene issues every draw in object order. Unknown texture and
// material tags are reported once, not every frame.
func (m *Manager) RenderScene() {
	if !m.prepared {
		return
	}
	m.backend.SetLights(m.lights.Lights, m.lighting)
	for i := range m.steps {
		m.render(&m.steps[i])
	}
}

func (m *Manager) render(s *step) {
	p := &s.part
	m.backend.SetModel(s.model)

	switch {
	case p.Texture != "":
		if !m.useTexture(p.Texture, true) {
			if p.Color != nil {
				m.SetShaderColor(*p.Color)
			} else {
				m.SetShaderColor(white)
			}
		}
	case p.Color != nil:
		m.SetShaderColor(*p.Color)
	}
	if p.UVScale != nil {
		m.SetTextureUVScale(p.UVScale.X, p.UVScale.Y)
	}
	if p.Material != "" {
		m.useMaterial(p.Material, true)
	}
	m.backend.Draw(s.kind, s.parts)
}

// Textures returns the texture slot table.
func (m *Manager) Textures() *texture.Table {
	return &m.textures
}

// Materials returns the material library.
func (m *Manager) Materials() *material.Library {
	return m.materials
}

// Description returns the scene being rendered.
func (m *Manager) Description() *Description {
	return m.desc
}

// Close deletes every uploaded texture and resets the slot table.
func (m *Manager) Close() {
	for _, s := range m.textures.Slots() {
		if s.ID != 0 {
			m.backend.DeleteTexture(s.ID)
		}
	}
	m.textures.Reset()
	m.prepared = false
	m.steps = nil
}
