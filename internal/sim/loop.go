package sim

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/assets"
	"github.com/Faultbox/helios/internal/engine/audio"
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/debug"
	"github.com/Faultbox/helios/internal/engine/framebuffer"
	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/internal/engine/picking"
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/internal/engine/texture"
	"github.com/Faultbox/helios/internal/engine/window"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/pkg/math"
)

// Camera modes cycled by the C key.
const (
	ModeFree = iota
	ModeFollow
	ModeOrbit
)

// TimeStep is the fixed simulation step per rendered frame.
const TimeStep = 0.01

const (
	frameDelay = 16 * time.Millisecond

	moveSpeed = 5.0
	turnSpeed = 0.05

	// pushbackGap is how far outside a body's surface the camera lands
	// after a collision. It exceeds the camera's collision margin, so a
	// pushed-back camera is no longer colliding.
	pushbackGap = 15.0

	// The ship rides ahead of the camera, below the view axis and off
	// to the side of the reticle.
	shipLead      = 140.0
	shipDrop      = 25.0
	shipSide      = 12.0
	shipClearance = 8.0
)

// Config selects the window, assets and pipeline limits for a run.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// SkyboxPath points at an equirectangular sky image; empty selects
	// the procedural starfield. ShipModelPath points at an OBJ hull;
	// empty selects the built-in one.
	SkyboxPath    string
	ShipModelPath string

	// FragmentBudget caps the fragments a single triangle may emit.
	// Zero or negative disables the cap.
	FragmentBudget int

	// CaptureDir receives screenshots; empty disables capture.
	CaptureDir string

	SFXVolume float64

	// Debug starts the session with the overlay grid and selection
	// outline visible. The G key flips it at runtime either way.
	Debug bool
}

// Controls is one frame's worth of decoded input. Toggle fields fire on
// the key's falling-to-pressed edge only; movement fields reflect keys
// held down.
type Controls struct {
	WarpTo int // body index, -1 when no warp key fired

	// Pick carries a left click in framebuffer pixels.
	Pick         bool
	PickX, PickY int

	ToggleOrbits bool
	CycleMode    bool
	ToggleSkybox bool
	ToggleShip   bool
	ToggleDebug  bool
	Screenshot   bool
	Quit         bool

	Forward, Back bool
	Left, Right   bool
	Up, Down      bool

	YawLeft, YawRight  bool
	PitchUp, PitchDown bool
}

// Loop owns the interactive session: window, input, audio, camera and
// scene, advanced one fixed step per rendered frame.
type Loop struct {
	config  Config
	running bool

	window  *window.Window
	input   *input.Input
	audio   *audio.Manager
	capture *debug.ScreenshotCapture

	fb     *framebuffer.Framebuffer
	cam    *camera.Camera
	system *SolarSystem
	scene  *Scene

	mode         int
	currentBody  int
	showOrbits   bool
	showSkybox   bool
	showShip     bool
	debugOverlay bool

	shipPosition math.Vec3
	shipRotation math.Vec3
}

// New creates the session: window, input, framebuffer, camera, scene
// geometry and audio. Missing optional assets degrade with a warning
// instead of failing.
func New(cfg Config) (*Loop, error) {
	logger.Info("initializing simulation",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	l := &Loop{
		config:       cfg,
		system:       NewSolarSystem(),
		showOrbits:   true,
		showSkybox:   true,
		showShip:     true,
		debugOverlay: cfg.Debug,
	}

	var err error
	l.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	l.input = input.New()
	l.fb = framebuffer.New(cfg.Width, cfg.Height)
	l.cam = camera.New(float32(cfg.Width), float32(cfg.Height))

	loc := assets.NewLocator("assets")
	l.scene = NewScene(l.fb, cfg.FragmentBudget, l.system, loadShip(loc, cfg.ShipModelPath), loadPanorama(loc, cfg.SkyboxPath))

	if cfg.CaptureDir != "" {
		l.capture = debug.NewScreenshotCapture(cfg.CaptureDir, "helios")
	}

	l.audio = audio.New(cfg.SFXVolume)
	if err := l.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
		l.audio = nil
	}

	logger.Info("simulation initialized", zap.Int("bodies", len(l.system.Bodies)))
	return l, nil
}

// Run drives the frame loop until quit is requested or the window
// closes.
func (l *Loop) Run() error {
	l.running = true

	frameCount := 0
	fpsTimer := time.Now()
	var frameTime time.Duration

	logger.Info("starting frame loop")

	for l.running {
		frameStart := time.Now()

		if l.input.Update() {
			break
		}
		for _, event := range l.input.Events() {
			if event.Type == input.EventWindowResize {
				l.resize(event.Width, event.Height)
			}
		}

		controls := l.readControls()
		if controls.Quit {
			break
		}
		l.advance(controls)

		l.scene.Draw(l.cam, l.system, l.frame())
		if controls.Screenshot {
			l.screenshot()
		}

		width, height := l.fb.Size()
		if err := l.window.Present(l.fb.Pixels(), width, height); err != nil {
			return fmt.Errorf("failed to present frame: %w", err)
		}

		frameCount++
		frameTime = time.Since(frameStart)
		if time.Since(fpsTimer) >= time.Second {
			stats := l.scene.Stats()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("frame", fmt.Sprintf("%.2fms", float64(frameTime.Microseconds())/1000)),
				zap.Int("triangles", stats.Triangles),
				zap.Int("culled", stats.Culled),
				zap.Int("fragments", stats.Fragments),
				zap.Int("truncated", stats.Truncated),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if wait := frameDelay - time.Since(frameStart); wait > 0 {
			time.Sleep(wait)
		}
	}
	return nil
}

// Close releases audio and window resources.
func (l *Loop) Close() {
	logger.Info("closing simulation")

	if l.audio != nil {
		l.audio.Close()
	}
	if l.window != nil {
		l.window.Close()
	}
}

// readControls decodes this frame's events and key state. Warp keys and
// toggles come from key-down events so holding a key fires them once;
// movement reads the live key state.
func (l *Loop) readControls() Controls {
	c := Controls{WarpTo: -1}

	for _, event := range l.input.Events() {
		switch event.Type {
		case input.EventKeyDown:
			switch event.Key {
			case input.KeyEscape:
				c.Quit = true
			case input.Key1, input.Key2, input.Key3, input.Key4, input.Key5, input.Key6:
				c.WarpTo = event.Key - input.Key1
			case input.KeyO:
				c.ToggleOrbits = true
			case input.KeyC:
				c.CycleMode = true
			case input.KeyB:
				c.ToggleSkybox = true
			case input.KeyN:
				c.ToggleShip = true
			case input.KeyG:
				c.ToggleDebug = true
			case input.KeyF12:
				c.Screenshot = true
			}

		case input.EventMouseDown:
			if event.Button == input.MouseLeft {
				c.Pick = true
				c.PickX, c.PickY = event.X, event.Y
			}
		}
	}

	c.Forward = l.input.IsKeyDown(input.KeyW)
	c.Back = l.input.IsKeyDown(input.KeyS)
	c.Left = l.input.IsKeyDown(input.KeyA)
	c.Right = l.input.IsKeyDown(input.KeyD)
	c.Up = l.input.IsKeyDown(input.KeyQ)
	c.Down = l.input.IsKeyDown(input.KeyE)
	c.YawLeft = l.input.IsKeyDown(input.KeyLeft)
	c.YawRight = l.input.IsKeyDown(input.KeyRight)
	c.PitchUp = l.input.IsKeyDown(input.KeyUp)
	c.PitchDown = l.input.IsKeyDown(input.KeyDown)

	return c
}

// advance applies one frame of input to the camera and steps the
// simulation: warp and toggles, free movement, the fixed time step,
// mode placement, collision pushback, then ship placement.
func (l *Loop) advance(c Controls) {
	// Warp aims at the body's pre-step position; the eased transit
	// covers the gap as the body keeps moving.
	if c.WarpTo >= 0 {
		if body := l.system.Body(c.WarpTo); body != nil {
			pos := body.Position(l.system.Time)
			l.cam.StartWarp(pos.Add(viewOffset(body.Radius)))
			l.cam.Target = pos
			l.currentBody = c.WarpTo
			if l.audio != nil {
				l.audio.PlayWarp()
			}
		}
	}

	// A click hands the selection to the body under the cursor without
	// starting a transit.
	if c.Pick {
		if picked := l.pickBody(c.PickX, c.PickY); picked >= 0 {
			l.currentBody = picked
		}
	}

	if c.ToggleOrbits {
		l.showOrbits = !l.showOrbits
	}
	if c.CycleMode {
		l.mode = (l.mode + 1) % 3
	}
	if c.ToggleSkybox {
		l.showSkybox = !l.showSkybox
	}
	if c.ToggleShip {
		l.showShip = !l.showShip
	}
	if c.ToggleDebug {
		l.debugOverlay = !l.debugOverlay
	}

	if c.Forward {
		l.cam.MoveForward(moveSpeed)
	}
	if c.Back {
		l.cam.MoveForward(-moveSpeed)
	}
	if c.Left {
		l.cam.MoveRight(-moveSpeed)
	}
	if c.Right {
		l.cam.MoveRight(moveSpeed)
	}
	if c.Up {
		l.cam.MoveUp(moveSpeed)
	}
	if c.Down {
		l.cam.MoveUp(-moveSpeed)
	}
	if c.YawLeft {
		l.cam.RotateYaw(-turnSpeed)
	}
	if c.YawRight {
		l.cam.RotateYaw(turnSpeed)
	}
	if c.PitchUp {
		l.cam.RotatePitch(turnSpeed)
	}
	if c.PitchDown {
		l.cam.RotatePitch(-turnSpeed)
	}

	l.system.Advance(TimeStep)
	l.cam.Update(TimeStep)

	// Follow and orbit modes reposition the camera every frame once the
	// warp transit has finished.
	if !l.cam.Warping {
		if body := l.system.Body(l.currentBody); body != nil {
			switch l.mode {
			case ModeFollow:
				l.cam.FollowBody(body.Position(l.system.Time), viewOffset(body.Radius))
			case ModeOrbit:
				angle := l.system.Time * 0.3
				distance := body.Radius * 8
				offset := math.Vec3{
					X: distance * math.Cos(angle),
					Y: body.Radius * 2,
					Z: distance * math.Sin(angle),
				}
				l.cam.FollowBody(body.Position(l.system.Time), offset)
			}
		}
	}

	l.pushbackCamera()
	l.placeShip()
}

// viewOffset is the stand-off viewing position above and behind a body
// of the given radius, used by warp targeting and follow mode.
func viewOffset(radius float32) math.Vec3 {
	return math.Vec3{Y: radius * 3, Z: radius * 5}
}

// pickBody returns the index of the nearest body whose sphere the ray
// through the given pixel hits, or -1 when the click lands on empty
// space.
func (l *Loop) pickBody(x, y int) int {
	width, height := l.fb.Size()
	ray := picking.ScreenRay(
		l.cam.Position, l.cam.ForwardDirection(), l.cam.Up,
		l.cam.Fov, l.cam.Aspect,
		float32(x), float32(y), float32(width), float32(height),
	)

	picked := -1
	var nearest float32
	for i := range l.system.Bodies {
		body := &l.system.Bodies[i]
		dist, ok := ray.IntersectSphere(body.Position(l.system.Time), body.Radius)
		if !ok {
			continue
		}
		if picked < 0 || dist < nearest {
			picked, nearest = i, dist
		}
	}
	return picked
}

// pushbackCamera ejects the camera from any body it has entered. The
// landing spot is outside the collision margin, so the cue fires only
// on contact frames.
func (l *Loop) pushbackCamera() {
	collided := false
	for i := range l.system.Bodies {
		body := &l.system.Bodies[i]
		pos := body.Position(l.system.Time)
		if !l.cam.CheckCollision(pos, body.Radius) {
			continue
		}
		direction := l.cam.Position.Sub(pos).Normalize()
		l.cam.Position = pos.Add(direction.Scale(body.Radius + pushbackGap))
		collided = true
	}
	if collided && l.audio != nil {
		l.audio.PlayCollision()
	}
}

// placeShip stations the hull relative to the camera and keeps it clear
// of body surfaces.
func (l *Loop) placeShip() {
	forward := l.cam.ForwardDirection().Normalize()
	up := l.cam.Up.Normalize()
	right := forward.Cross(up).Normalize()

	pos := l.cam.Position.
		Add(forward.Scale(shipLead)).
		Sub(up.Scale(shipDrop)).
		Add(right.Scale(shipSide))

	for i := range l.system.Bodies {
		body := &l.system.Bodies[i]
		center := body.Position(l.system.Time)
		toShip := pos.Sub(center)
		distance := toShip.Length()
		min := body.Radius + shipClearance
		if distance > 0 && distance < min {
			pos = center.Add(toShip.Normalize().Scale(min))
		}
	}

	l.shipPosition = pos
	l.shipRotation = math.Vec3{X: -l.cam.Pitch, Y: l.cam.Yaw - math.Pi/2}
}

func (l *Loop) frame() Frame {
	return Frame{
		ShipPosition: l.shipPosition,
		ShipRotation: l.shipRotation,
		ShowOrbits:   l.showOrbits,
		ShowSkybox:   l.showSkybox,
		ShowShip:     l.showShip,
		Debug:        l.debugOverlay,
		SelectedBody: l.currentBody,
	}
}

func (l *Loop) resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	l.fb.Resize(width, height)
	l.cam.Aspect = float32(width) / float32(height)
	logger.Debug("framebuffer resized", zap.Int("width", width), zap.Int("height", height))
}

func (l *Loop) screenshot() {
	if l.capture == nil {
		logger.Warn("screenshot requested but capture directory is not configured")
		return
	}
	path, err := l.capture.CaptureFromImage(l.fb.Image())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// loadShip reads the hull from path, falling back to the built-in hull
// when the path is empty, missing or unreadable.
func loadShip(loc *assets.Locator, path string) []render.Vertex {
	if path == "" {
		return mesh.Ship()
	}
	resolved, err := loc.Resolve(path)
	if err != nil {
		logger.Warn("using built-in ship hull", zap.Error(err))
		return mesh.Ship()
	}
	ship, err := mesh.LoadOBJ(resolved)
	if err != nil {
		logger.Warn("using built-in ship hull", zap.String("path", resolved), zap.Error(err))
		return mesh.Ship()
	}
	logger.Info("ship model loaded", zap.String("path", resolved), zap.Int("vertices", len(ship)))
	return ship
}

// loadPanorama reads the sky image from path, falling back to the
// procedural starfield when the path is empty, missing or unreadable.
func loadPanorama(loc *assets.Locator, path string) *texture.Texture {
	if path == "" {
		return nil
	}
	resolved, err := loc.Resolve(path)
	if err != nil {
		logger.Warn("using procedural starfield", zap.Error(err))
		return nil
	}
	tex, err := texture.Load(resolved)
	if err != nil {
		logger.Warn("using procedural starfield", zap.String("path", resolved), zap.Error(err))
		return nil
	}
	logger.Info("sky panorama loaded", zap.String("path", resolved))
	return tex
}
