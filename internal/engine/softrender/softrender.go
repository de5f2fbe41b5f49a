// Package softrender rasterizes scenes on the CPU with fauxgl, for headless
// rendering without a GL context.
package softrender

import (
	"fmt"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

var _ scene.Backend = (*Renderer)(nil)

// Config holds software renderer options.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	// Supersample renders at this multiple of the output size and
	// downsamples for antialiasing. Values below 1 mean 1.
	Supersample int
}

type batchKey struct {
	kind  mesh.Kind
	parts mesh.Parts
}

// Renderer is a scene backend drawing into an in-memory image.
type Renderer struct {
	config Config
	ctx    *fauxgl.Context

	textures map[uint32]*texture.Image
	nextID   uint32
	units    []*texture.Image

	meshes  map[mesh.Kind]*mesh.Mesh
	batches map[batchKey][]*fauxgl.Triangle

	state state
}

// state mirrors the uniforms of the GL scene shader.
type state struct {
	model    math.Mat4
	normal   math.Mat3
	viewProj math.Mat4
	eye      math.Vec3

	color      math.Vec4
	useTexture bool
	tex        *texture.Image
	uvScale    math.Vec2

	material material.Material
	lights   []lighting.PointLight
	lit      bool
}

// New creates a renderer with a cleared color and depth buffer.
func New(cfg Config) *Renderer {
	cfg.Supersample = max(cfg.Supersample, 1)
	ctx := fauxgl.NewContext(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
	ctx.Cull = fauxgl.CullNone
	ctx.AlphaBlend = true

	r := &Renderer{
		config:   cfg,
		ctx:      ctx,
		textures: make(map[uint32]*texture.Image),
		meshes:   make(map[mesh.Kind]*mesh.Mesh),
		batches:  make(map[batchKey][]*fauxgl.Triangle),
		state: state{
			model:    math.Identity(),
			viewProj: math.Identity(),
			normal:   math.Identity().NormalMatrix(),
			color:    math.RGBA(1, 1, 1, 1),
			uvScale:  math.Vec2{X: 1, Y: 1},
		},
	}
	r.Begin()
	return r
}

// Begin clears the color and depth buffers.
func (r *Renderer) Begin() {
	c := r.config.ClearColor
	r.ctx.ClearColorBufferWith(fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: 1})
	r.ctx.ClearDepthBuffer()
}

// SetView sets the camera used by following draws.
func (r *Renderer) SetView(view, projection math.Mat4, eye math.Vec3) {
	r.state.viewProj = projection.Mul(view)
	r.state.eye = eye
}

// Image returns the rendered frame at the configured output size.
func (r *Renderer) Image() image.Image {
	img := r.ctx.Image()
	if r.config.Supersample > 1 {
		img = resize.Resize(uint(r.config.Width), uint(r.config.Height), img, resize.Bilinear)
	}
	return img
}

// UploadTexture keeps a reference to img.
func (r *Renderer) UploadTexture(img *texture.Image) (uint32, error) {
	if img.Channels != 3 && img.Channels != 4 {
		return 0, fmt.Errorf("%d channels: %w", img.Channels, texture.ErrUnsupportedChannels)
	}
	r.nextID++
	r.textures[r.nextID] = img
	return r.nextID, nil
}

// BindTextures maps slot i to the image uploaded as slots[i].ID.
func (r *Renderer) BindTextures(slots []texture.Slot) {
	r.units = r.units[:0]
	for _, s := range slots {
		r.units = append(r.units, r.textures[s.ID])
	}
}

func (r *Renderer) DeleteTexture(id uint32) {
	delete(r.textures, id)
}

// UploadMesh converts a mesh to fauxgl triangles on first draw.
func (r *Renderer) UploadMesh(m *mesh.Mesh) error {
	r.meshes[m.Kind] = m
	for k := range r.batches {
		if k.kind == m.Kind {
			delete(r.batches, k)
		}
	}
	return nil
}

func (r *Renderer) SetModel(model math.Mat4) {
	r.state.model = model
	r.state.normal = model.NormalMatrix()
}

func (r *Renderer) SetColor(c math.Vec4) {
	r.state.useTexture = false
	r.state.color = c
}

func (r *Renderer) SetTexture(slot int) {
	r.state.useTexture = true
	r.state.tex = nil
	if slot >= 0 && slot < len(r.units) {
		r.state.tex = r.units[slot]
	}
}

func (r *Renderer) SetUVScale(u, v float32) {
	r.state.uvScale = math.Vec2{X: u, Y: v}
}

func (r *Renderer) SetMaterial(m material.Material) {
	r.state.material = m
}

func (r *Renderer) SetLights(lights []lighting.PointLight, enabled bool) {
	r.state.lights = append(r.state.lights[:0], lights[:min(len(lights), lighting.MaxPointLights)]...)
	r.state.lit = enabled
}

// Draw rasterizes the selected parts with a snapshot of the current state.
func (r *Renderer) Draw(kind mesh.Kind, parts mesh.Parts) {
	tris := r.batch(kind, parts)
	if len(tris) == 0 {
		return
	}
	s := r.state
	s.lights = append([]lighting.PointLight(nil), r.state.lights...)
	r.ctx.Shader = &drawShader{state: s}
	r.ctx.DrawTriangles(tris)
}

func (r *Renderer) batch(kind mesh.Kind, parts mesh.Parts) []*fauxgl.Triangle {
	key := batchKey{kind, parts}
	if tris, ok := r.batches[key]; ok {
		return tris
	}
	m, ok := r.meshes[kind]
	if !ok {
		return nil
	}
	var tris []*fauxgl.Triangle
	m.Triangles(parts, func(a, b, c mesh.Vertex) {
		tris = append(tris, &fauxgl.Triangle{V1: vertex(a), V2: vertex(b), V3: vertex(c)})
	})
	r.batches[key] = tris
	return tris
}

func vertex(v mesh.Vertex) fauxgl.Vertex {
	return fauxgl.Vertex{
		Position: vec(v.Position),
		Normal:   vec(v.Normal),
		Texture:  fauxgl.Vector{X: float64(v.UV.X), Y: float64(v.UV.Y)},
	}
}

func vec(v math.Vec3) fauxgl.Vector {
	return fauxgl.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func unvec(v fauxgl.Vector) math.Vec3 {
	return math.V3(float32(v.X), float32(v.Y), float32(v.Z))
}
