// Package window owns the SDL2 shell: a resizable window plus the
// streaming texture the software framebuffer is presented through.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/logger"
)

func init() {
	// SDL window and renderer calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window and the renderer that blits the software
// framebuffer onto it.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	texWidth  int
	texHeight int
}

// New creates a new window and its presentation renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.ensureTexture(cfg.Width, cfg.Height); err != nil {
		w.renderer.Destroy()
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, err
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// ensureTexture keeps the streaming texture sized to the framebuffer,
// recreating it after a resize.
func (w *Window) ensureTexture(width, height int) error {
	if w.texture != nil && width == w.texWidth && height == w.texHeight {
		return nil
	}
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}

	texture, err := w.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	w.texture = texture
	w.texWidth = width
	w.texHeight = height
	return nil
}

// Present uploads the packed 0xRRGGBB framebuffer and flips it to the
// screen.
func (w *Window) Present(pixels []uint32, width, height int) error {
	if len(pixels) < width*height {
		return fmt.Errorf("pixel buffer holds %d pixels, need %d", len(pixels), width*height)
	}
	if err := w.ensureTexture(width, height); err != nil {
		return err
	}

	if err := w.texture.UpdateRGBA(nil, pixels, width); err != nil {
		return fmt.Errorf("SDL_UpdateTexture failed: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Close destroys the renderer and window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
