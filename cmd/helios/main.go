// Package main is the entry point for the Helios solar system
// simulator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/config"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Helios ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the simulation
	loop, err := sim.New(simConfig(cfg))
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}
	defer loop.Close()

	if err := loop.Run(); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulation closed normally")
}

// simConfig maps the file-backed settings onto the loop's runtime
// configuration.
func simConfig(cfg *config.Config) sim.Config {
	volume := cfg.Audio.SFXVolume
	if cfg.Audio.Muted {
		volume = 0
	}
	return sim.Config{
		Title:          cfg.Display.Title,
		Width:          cfg.Display.Width,
		Height:         cfg.Display.Height,
		Fullscreen:     cfg.Display.Fullscreen,
		VSync:          cfg.Display.VSync,
		SkyboxPath:     cfg.Assets.SkyboxPath,
		ShipModelPath:  cfg.Assets.ShipModelPath,
		FragmentBudget: cfg.Render.FragmentBudget,
		CaptureDir:     cfg.Capture.Dir,
		SFXVolume:      volume,
		Debug:          cfg.Render.Debug,
	}
}
