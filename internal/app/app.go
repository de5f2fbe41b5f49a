// Package app implements the interactive viewer loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/debug"
	"github.com/Faultbox/deskscene/internal/engine/input"
	"github.com/Faultbox/deskscene/internal/engine/renderer"
	"github.com/Faultbox/deskscene/internal/engine/window"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/internal/session"
)

const title = "Desk Scene"

// App is the windowed viewer.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	session  *session.Session
	shots    *debug.ScreenshotCapture

	width, height int
	captured      bool
}

// New opens the window, creates the GL renderer and prepares the scene.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("scene", sceneName(cfg.Scene.File)))

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context from the window
	a.width, a.height = a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      a.width,
		Height:     a.height,
		ClearColor: cfg.Graphics.ClearColor,
		MSAA:       cfg.Graphics.MSAA > 0,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.session, err = session.New(a.renderer, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := a.session.Prepare(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.shots = debug.NewScreenshotCapture("screenshots", "deskscene")
	a.setCaptured(a.session.Mode() == "fly")

	logger.Info("viewer initialized")
	return a, nil
}

func sceneName(file string) string {
	if file == "" {
		return "built-in desk"
	}
	return file
}

// Run runs the main loop until the window closes, ESC is pressed or ctx is
// canceled.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.updateCamera(dt)

		a.renderer.Begin()
		a.session.Render(a.width, a.height)
		a.renderer.End()

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			a.window.SetTitle(fmt.Sprintf("%s - %d FPS", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if left := frameBudget - time.Since(now); left > 0 {
				time.Sleep(left)
			}
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			// Event sizes are in window points; GL wants pixels
			a.width, a.height = a.window.DrawableSize()
			a.renderer.Resize(a.width, a.height)
			logger.Debug("window resized",
				zap.Int("points_w", event.Width), zap.Int("points_h", event.Height),
				zap.Int("pixels_w", a.width), zap.Int("pixels_h", a.height))

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_P:
				a.session.SetOrthographic(false)
			case sdl.SCANCODE_O:
				a.session.SetOrthographic(true)
			case sdl.SCANCODE_L:
				a.session.ToggleLighting()
			case sdl.SCANCODE_C:
				a.session.ToggleCamera()
				a.setCaptured(a.session.Mode() == "fly")
			case sdl.SCANCODE_TAB:
				a.setCaptured(!a.captured)
			}
		}
	}
}

func (a *App) updateCamera(dt float32) {
	cam := a.session.Camera()

	dx, dy := a.input.MouseDelta()
	switch {
	case a.session.Mode() == "fly" && a.captured:
		cam.Look(dx, dy)
	case a.session.Mode() == "orbit" && a.input.IsButtonDown(sdl.BUTTON_LEFT):
		cam.Look(dx, dy)
	}

	if w := a.input.Wheel(); w != 0 {
		cam.Zoom(w)
	}

	move := camera.Movement{
		Forward: a.input.Axis(sdl.SCANCODE_S, sdl.SCANCODE_W),
		Right:   a.input.Axis(sdl.SCANCODE_A, sdl.SCANCODE_D),
		Up:      a.input.Axis(sdl.SCANCODE_Q, sdl.SCANCODE_E),
	}
	if !move.IsZero() {
		cam.Move(move, dt)
	}

	if a.input.IsKeyDown(sdl.SCANCODE_LSHIFT) && !move.IsZero() {
		// Shift doubles the step
		cam.Move(move, dt)
	}
}

func (a *App) setCaptured(captured bool) {
	a.captured = captured
	a.window.SetMouseCaptured(captured)
}

func (a *App) screenshot() {
	pixels, err := a.renderer.ReadPixels(func() {
		a.renderer.Begin()
		a.session.Render(a.width, a.height)
		a.renderer.End()
	})
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.CaptureFromPixels(pixels, a.width, a.height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and closes the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.session != nil {
		a.session.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
