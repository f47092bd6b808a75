package render

import "github.com/Faultbox/helios/pkg/math"

// Color is an 8-bit RGB display color.
type Color struct {
	R, G, B uint8
}

// ColorFromFloats converts float channels to a Color, clamping each to [0, 1].
func ColorFromFloats(r, g, b float32) Color {
	return Color{
		R: uint8(math.Clamp(r, 0, 1) * 255),
		G: uint8(math.Clamp(g, 0, 1) * 255),
		B: uint8(math.Clamp(b, 0, 1) * 255),
	}
}

// ColorFromHex unpacks a 0xRRGGBB color word.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color into a 0xRRGGBB word.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Floats returns the channels as floats in [0, 1].
func (c Color) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
