package shading

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/internal/engine/texture"
	"github.com/Faultbox/helios/pkg/math"
)

// shadeStarfield renders the procedural night sky: a per-direction hash
// thresholded into bright stars, dim stars and deep space.
func shadeStarfield(modelPos math.Vec3) render.Color {
	dir := modelPos.Normalize()
	h := Hash(dir.X*100 + dir.Y*200 + dir.Z*300)

	switch {
	case h > 0.995:
		brightness := (h - 0.995) / 0.005
		return render.ColorFromFloats(1, 1, brightness)
	case h > 0.98:
		brightness := (h - 0.98) / 0.015 * 0.5
		return render.ColorFromFloats(brightness, brightness, brightness)
	default:
		return render.ColorFromFloats(0.01, 0.01, 0.02)
	}
}

// shadePanorama samples an equirectangular sky image along the sample
// direction, falling back to the procedural starfield when no image is
// bound.
func shadePanorama(modelPos math.Vec3, panorama *texture.Texture) render.Color {
	if panorama == nil {
		return shadeStarfield(modelPos)
	}

	dir := modelPos.Normalize()
	u := math.Atan2(dir.Z, dir.X)/(2*math.Pi) + 0.5
	v := math.Acos(math.Clamp(dir.Y, -1, 1)) / math.Pi

	return render.ColorFromHex(panorama.SampleBilinear(u, v))
}
