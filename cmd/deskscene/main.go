// Package main is the entry point for the desk scene viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/app"
	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/internal/session"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fail(fmt.Errorf("config error: %w", err))
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(fmt.Errorf("logger error: %w", err))
	}
	defer logger.Sync()

	logger.Info("=== Desk Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("config not saved", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	if config.PickScene() {
		path, err := dialog.File().Title("Open scene").Filter("Scene description", "yaml", "yml").Load()
		switch {
		case err == dialog.ErrCancelled:
			logger.Info("no scene picked, using built-in desk")
		case err != nil:
			logger.Warn("file dialog failed", zap.Error(err))
		default:
			cfg.Scene.File = path
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Headless.Enabled {
		if err := session.RenderHeadless(ctx, cfg); err != nil {
			logger.Error("headless render failed", zap.Error(err))
			exit(err)
		}
		return
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		exit(err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		a.Close()
		exit(err)
	}

	logger.Info("viewer closed normally")
}

// fail reports an error raised before the logger exists.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	if config.DialogErrors() {
		dialog.Message("%v", err).Title("Desk Scene").Error()
	}
	os.Exit(1)
}

func exit(err error) {
	if config.DialogErrors() {
		dialog.Message("%v", err).Title("Desk Scene").Error()
	}
	logger.Sync()
	os.Exit(1)
}
