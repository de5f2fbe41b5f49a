// Package renderer draws scenes with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/framebuffer"
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/engine/scene/shaders"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

var _ scene.Backend = (*Renderer)(nil)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	MSAA       bool
}

// Renderer is the OpenGL scene backend.
type Renderer struct {
	config Config

	program  *shader.Program
	meshes   map[mesh.Kind]*gpuMesh
	textures map[uint32]bool

	// Offscreen target for screenshots, created on first use.
	capture *framebuffer.Framebuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[mesh.Kind]*gpuMesh),
		textures: make(map[uint32]bool),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// Create shader program
	var err error
	r.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	// Untextured white with unit UV scale until the scene says otherwise
	r.program.Use()
	r.program.SetVec2("UVscale", 1, 1)
	r.program.SetVec4("objectColor", math.RGBA(1, 1, 1, 1))

	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	for id := range r.textures {
		r.DeleteTexture(id)
	}
	if r.capture != nil {
		r.capture.Destroy()
		r.capture = nil
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// SetView uploads the camera matrices and eye position.
func (r *Renderer) SetView(view, projection math.Mat4, eye math.Vec3) {
	r.program.Use()
	r.program.SetMat4("view", view)
	r.program.SetMat4("projection", projection)
	r.program.SetVec3("viewPosition", eye)
}

// ReadPixels renders draw into an offscreen target the size of the viewport
// and returns its RGBA pixels, bottom row first.
func (r *Renderer) ReadPixels(draw func()) ([]byte, error) {
	w, h := int32(r.config.Width), int32(r.config.Height)
	if r.capture == nil {
		fb, err := framebuffer.New(w, h)
		if err != nil {
			return nil, err
		}
		r.capture = fb
	} else {
		r.capture.Resize(w, h)
	}

	// Render into the capture target, then restore the window framebuffer
	restore := r.capture.BindWithViewport()
	c := r.config.ClearColor
	r.capture.Clear(c[0], c[1], c[2], 1)
	r.program.Use()
	draw()
	restore()

	return r.capture.ReadPixels(), nil
}

// SetModel sets the model matrix and the matching normal matrix.
func (r *Renderer) SetModel(model math.Mat4) {
	r.program.SetMat4("model", model)
	r.program.SetMat3("normalMatrix", model.NormalMatrix())
}

func (r *Renderer) SetColor(c math.Vec4) {
	r.program.SetBool("bUseTexture", false)
	r.program.SetVec4("objectColor", c)
}

func (r *Renderer) SetTexture(slot int) {
	r.program.SetBool("bUseTexture", true)
	r.program.SetSampler2D("objectTexture", slot)
}

func (r *Renderer) SetUVScale(u, v float32) {
	r.program.SetVec2("UVscale", u, v)
}

func (r *Renderer) SetMaterial(m material.Material) {
	r.program.SetVec3("material.ambientColor", m.AmbientColor)
	r.program.SetFloat("material.ambientStrength", m.AmbientStrength)
	r.program.SetVec3("material.diffuseColor", m.DiffuseColor)
	r.program.SetVec3("material.specularColor", m.SpecularColor)
	r.program.SetFloat("material.shininess", m.Shininess)
}

func (r *Renderer) SetLights(lights []lighting.PointLight, enabled bool) {
	r.program.SetBool("bUseLighting", enabled)
	// Point light uniforms
	n := min(len(lights), lighting.MaxPointLights)
	r.program.SetInt("numLights", int32(n))
	for i, l := range lights[:n] {
		r.program.SetVec3(lighting.UniformName(i, "position"), l.Position)
		r.program.SetVec3(lighting.UniformName(i, "ambientColor"), l.AmbientColor)
		r.program.SetVec3(lighting.UniformName(i, "diffuseColor"), l.DiffuseColor)
		r.program.SetVec3(lighting.UniformName(i, "specularColor"), l.SpecularColor)
		r.program.SetFloat(lighting.UniformName(i, "focalStrength"), l.FocalStrength)
		r.program.SetFloat(lighting.UniformName(i, "specularIntensity"), l.SpecularIntensity)
	}
}

// Draw issues one draw call per selected part range.
func (r *Renderer) Draw(kind mesh.Kind, parts mesh.Parts) {
	m, ok := r.meshes[kind]
	if !ok {
		logger.Warn("mesh not uploaded", zap.Stringer("mesh", kind))
		return
	}
	m.draw(parts)
}
