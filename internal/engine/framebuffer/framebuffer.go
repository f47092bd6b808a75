// Package framebuffer provides the software color and depth target the
// rasterizer draws into.
package framebuffer

import (
	"image"
	"image/color"

	"github.com/Faultbox/helios/pkg/math"
)

// DefaultBackground is the clear color used when none is configured.
const DefaultBackground = 0x000011

// Framebuffer is a CPU render target: a row-major plane of packed 0xRRGGBB
// color words plus a float32 depth plane of the same dimensions.
type Framebuffer struct {
	width  int
	height int

	pixels []uint32
	depth  []float32

	background   uint32
	currentColor uint32
}

// New creates a framebuffer with the specified dimensions.
func New(width, height int) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb := &Framebuffer{
		width:      width,
		height:     height,
		pixels:     make([]uint32, width*height),
		depth:      make([]float32, width*height),
		background: DefaultBackground,
	}
	fb.Clear()

	return fb
}

// SetBackground sets the packed 0xRRGGBB color used by Clear.
func (fb *Framebuffer) SetBackground(hex uint32) {
	fb.background = hex
}

// Clear fills the color plane with the background color and resets every
// depth sample to +Inf.
func (fb *Framebuffer) Clear() {
	inf := math.Inf(1)
	for i := range fb.pixels {
		fb.pixels[i] = fb.background
		fb.depth[i] = inf
	}
}

// SetCurrentColor sets the packed 0xRRGGBB color written by Point.
func (fb *Framebuffer) SetCurrentColor(hex uint32) {
	fb.currentColor = hex
}

// Point writes the current color at (x, y) if the sample is nearer than
// what the depth plane already holds. Out-of-bounds coordinates are
// ignored.
func (fb *Framebuffer) Point(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	idx := y*fb.width + x
	if depth < fb.depth[idx] {
		fb.pixels[idx] = fb.currentColor
		fb.depth[idx] = depth
	}
}

// Pixels returns the packed row-major color plane. The slice is owned by
// the framebuffer and is valid until the next Resize.
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.pixels
}

// Image copies the color plane into an opaque RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			px := fb.pixels[y*fb.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: 255,
			})
		}
	}
	return img
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Resize reallocates both planes if the dimensions have changed. The new
// content is cleared.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.width && height == fb.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb.width = width
	fb.height = height
	fb.pixels = make([]uint32, width*height)
	fb.depth = make([]float32, width*height)
	fb.Clear()
}
