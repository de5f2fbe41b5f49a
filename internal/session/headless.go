package session

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/debug"
	"github.com/Faultbox/deskscene/internal/engine/softrender"
	"github.com/Faultbox/deskscene/internal/logger"
)

// headlessSupersample is the antialiasing factor for offscreen frames.
const headlessSupersample = 2

// RenderImage draws one frame of the configured scene on the CPU.
func RenderImage(ctx context.Context, cfg *config.Config) (image.Image, error) {
	start := time.Now()
	r := softrender.New(softrender.Config{
		Width:       cfg.Headless.Width,
		Height:      cfg.Headless.Height,
		ClearColor:  cfg.Graphics.ClearColor,
		Supersample: headlessSupersample,
	})

	s, err := New(r, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.Prepare(ctx); err != nil {
		return nil, err
	}
	defer s.Close()

	s.Render(cfg.Headless.Width, cfg.Headless.Height)
	img := r.Image()

	logger.Info("headless frame rendered",
		zap.Int("width", cfg.Headless.Width),
		zap.Int("height", cfg.Headless.Height),
		zap.Duration("elapsed", time.Since(start)))
	return img, nil
}

// RenderHeadless renders one frame and writes it to cfg.Headless.Output.
func RenderHeadless(ctx context.Context, cfg *config.Config) error {
	img, err := RenderImage(ctx, cfg)
	if err != nil {
		return err
	}
	if err := debug.SavePNG(cfg.Headless.Output, img); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Headless.Output, err)
	}
	logger.Info("frame saved", zap.String("path", cfg.Headless.Output))
	return nil
}
