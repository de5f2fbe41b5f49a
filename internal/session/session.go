// Package session ties a scene, a backend and a camera together. The
// windowed viewer and headless rendering both drive the scene through it.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Backend is a scene backend that also accepts camera matrices.
type Backend interface {
	scene.Backend
	SetView(view, projection math.Mat4, eye math.Vec3)
}

// Session is a prepared scene viewed through a camera.
type Session struct {
	backend Backend
	scene   *scene.Manager

	fly   *camera.FlyCamera
	orbit *camera.OrbitCamera
	mode  string

	Projection camera.Projection
}

// New loads the configured scene description and sets up the cameras.
// Call Prepare before rendering.
func New(backend Backend, cfg *config.Config) (*Session, error) {
	desc, err := scene.LoadFile(cfg.Scene.File)
	if err != nil {
		return nil, err
	}
	return NewWithDescription(backend, cfg, desc), nil
}

// NewWithDescription is New with an already loaded description.
func NewWithDescription(backend Backend, cfg *config.Config, desc *scene.Description) *Session {
	cc := cfg.Camera
	eye := vec3(cc.Position)
	target := vec3(cc.Target)

	return &Session{
		backend: backend,
		scene: scene.NewManager(backend, desc, scene.Options{
			TextureDir:     cfg.Scene.TextureDir,
			MaxTextureSize: cfg.Scene.MaxTextureSize,
			Lighting:       cfg.Scene.Lighting,
		}),
		fly:   camera.NewFlyCamera(eye, target, cc.MoveSpeed, cc.MouseSensitivity),
		orbit: camera.NewOrbitCamera(eye, target),
		mode:  cc.Mode,
		Projection: camera.Projection{
			Orthographic: cc.Orthographic,
			FOV:          cc.FOV,
			Near:         cc.Near,
			Far:          cc.Far,
			OrthoHeight:  cc.OrthoHeight,
		},
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.V3(a[0], a[1], a[2])
}

// Prepare loads the scene's resources into the backend.
func (s *Session) Prepare(ctx context.Context) error {
	if err := s.scene.PrepareScene(ctx); err != nil {
		return fmt.Errorf("preparing scene: %w", err)
	}
	return nil
}

// Scene returns the scene manager.
func (s *Session) Scene() *scene.Manager {
	return s.scene
}

// Camera returns the active camera.
func (s *Session) Camera() camera.Controller {
	if s.mode == "orbit" {
		return s.orbit
	}
	return s.fly
}

// Mode returns the active camera mode, "fly" or "orbit".
func (s *Session) Mode() string {
	if s.mode == "orbit" {
		return "orbit"
	}
	return "fly"
}

// ToggleCamera switches between the fly and orbit cameras.
func (s *Session) ToggleCamera() {
	if s.Mode() == "fly" {
		s.mode = "orbit"
	} else {
		s.mode = "fly"
	}
	logger.Info("camera mode", zap.String("mode", s.mode))
}

// SetOrthographic selects the projection.
func (s *Session) SetOrthographic(ortho bool) {
	if s.Projection.Orthographic == ortho {
		return
	}
	s.Projection.Orthographic = ortho
	logger.Info("projection changed", zap.Bool("orthographic", ortho))
}

// ToggleLighting flips scene lighting and returns the new state.
func (s *Session) ToggleLighting() bool {
	on := !s.scene.Lighting()
	s.scene.SetLighting(on)
	logger.Info("lighting", zap.Bool("enabled", on))
	return on
}

// Render uploads the camera matrices and draws the scene.
func (s *Session) Render(width, height int) {
	cam := s.Camera()
	aspect := float32(width) / float32(max(height, 1))
	s.backend.SetView(cam.ViewMatrix(), s.Projection.Matrix(aspect), cam.Position())
	s.scene.RenderScene()
}

// Close releases the scene's textures.
func (s *Session) Close() {
	s.scene.Close()
}
