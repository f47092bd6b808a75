// Package main renders a frame sequence of the solar system to PNG
// files without opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/helios/internal/config"
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/debug"
	"github.com/Faultbox/helios/internal/engine/framebuffer"
	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/internal/sim"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Sugar.Errorf("capture failed: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	width, height := cfg.Display.Width, cfg.Display.Height
	frames := cfg.Capture.Frames
	logger.Sugar.Infof("rendering %d frames at %dx%d into %s", frames, width, height, cfg.Capture.Dir)

	fb := framebuffer.New(width, height)
	cam := camera.New(float32(width), float32(height))
	system := sim.NewSolarSystem()
	scene := sim.NewScene(fb, cfg.Render.FragmentBudget, system, mesh.Ship(), nil)
	capture := debug.NewScreenshotCapture(cfg.Capture.Dir, "frame")

	// The camera holds its starting pose; motion comes from the system
	// advancing under it.
	frame := sim.Frame{
		ShowOrbits: true,
		ShowSkybox: true,
		Debug:      cfg.Render.Debug,
	}

	for i := 0; i < frames; i++ {
		system.Advance(sim.TimeStep)
		scene.Draw(cam, system, frame)

		w, h := fb.Size()
		path, err := capture.CaptureIndexed(fb.Pixels(), w, h, i)
		if err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		if i == 0 {
			logger.Sugar.Infof("first frame written to %s", path)
		}
	}

	stats := scene.Stats()
	logger.Sugar.Infof("done: %d frames, last frame drew %d triangles and %d fragments",
		frames, stats.Triangles, stats.Fragments)
	return nil
}
