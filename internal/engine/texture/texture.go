// Package texture provides image loading and texture sampling for the
// software renderer.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/helios/pkg/math"
)

// Texture is a decoded image as a row-major grid of packed 0xRRGGBB words.
type Texture struct {
	Width  int
	Height int

	data []uint32
}

// Load reads and decodes an image file. PNG, JPEG, BMP and TGA are
// supported; TGA is dispatched on the file extension because the format
// has no magic bytes to sniff.
func Load(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture %s: %w", path, err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	return FromImage(img), nil
}

// FromImage converts a decoded image into a sampleable texture.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	t := &Texture{
		Width:  w,
		Height: h,
		data:   make([]uint32, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			t.data[y*w+x] = uint32(r16>>8)<<16 | uint32(g16>>8)<<8 | uint32(b16>>8)
		}
	}
	return t
}

// Sample returns the nearest texel for (u, v). Coordinates are clamped,
// not wrapped, to [0, 1].
func (t *Texture) Sample(u, v float32) uint32 {
	u = math.Clamp(u, 0, 1)
	v = math.Clamp(v, 0, 1)

	x := minInt(int(u*float32(t.Width)), t.Width-1)
	y := minInt(int(v*float32(t.Height)), t.Height-1)

	return t.data[y*t.Width+x]
}

// SampleBilinear returns the bilinear blend of the four texels around
// (u, v). Coordinates are clamped, not wrapped, to [0, 1], so the
// equirectangular u=0/1 boundary shows a seam.
func (t *Texture) SampleBilinear(u, v float32) uint32 {
	u = math.Clamp(u, 0, 1)
	v = math.Clamp(v, 0, 1)

	fx := u * float32(t.Width)
	fy := v * float32(t.Height)

	x0 := minInt(int(fx), t.Width-1)
	y0 := minInt(int(fy), t.Height-1)
	x1 := minInt(x0+1, t.Width-1)
	y1 := minInt(y0+1, t.Height-1)

	fracX := fx - float32(x0)
	fracY := fy - float32(y0)

	r00, g00, b00 := unpack(t.data[y0*t.Width+x0])
	r10, g10, b10 := unpack(t.data[y0*t.Width+x1])
	r01, g01, b01 := unpack(t.data[y1*t.Width+x0])
	r11, g11, b11 := unpack(t.data[y1*t.Width+x1])

	r0 := r00*(1-fracX) + r10*fracX
	g0 := g00*(1-fracX) + g10*fracX
	b0 := b00*(1-fracX) + b10*fracX

	r1 := r01*(1-fracX) + r11*fracX
	g1 := g01*(1-fracX) + g11*fracX
	b1 := b01*(1-fracX) + b11*fracX

	r := r0*(1-fracY) + r1*fracY
	g := g0*(1-fracY) + g1*fracY
	b := b0*(1-fracY) + b1*fracY

	return uint32(r*255)<<16 | uint32(g*255)<<8 | uint32(b*255)
}

func unpack(c uint32) (r, g, b float32) {
	r = float32((c>>16)&0xFF) / 255
	g = float32((c>>8)&0xFF) / 255
	b = float32(c&0xFF) / 255
	return r, g, b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
