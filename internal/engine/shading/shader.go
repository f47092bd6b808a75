package shading

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/internal/engine/texture"
	"github.com/Faultbox/helios/pkg/math"
)

// Kind selects one of the surface programs.
type Kind int

const (
	Star Kind = iota
	RockyPlanet
	GasGiant
	Moon
	Ship
	Ring
	Orbit
	SkyboxStars
	SkyboxPanorama
)

// Surface is a fragment shader over the closed set of surface programs.
// Panorama is the equirectangular sky image used by the SkyboxPanorama
// kind; when nil that kind falls back to the procedural starfield.
type Surface struct {
	Kind     Kind
	Panorama *texture.Texture
}

// Shade evaluates the selected surface program at one interpolated sample.
func (s Surface) Shade(v1, v2, v3 *render.ShadedVertex, modelPos, worldPos, normal math.Vec3, uv math.Vec2) render.Color {
	switch s.Kind {
	case Star:
		return shadeStar(modelPos, normal)
	case RockyPlanet:
		return shadeRockyPlanet(modelPos, worldPos, normal)
	case GasGiant:
		return shadeGasGiant(modelPos, worldPos, normal)
	case Moon:
		return shadeMoon(modelPos, worldPos, normal)
	case Ship:
		return shadeShip(worldPos, normal)
	case Ring:
		return shadeRing(modelPos, worldPos, normal, uv)
	case Orbit:
		return render.ColorFromFloats(0.3, 0.6, 0.9)
	case SkyboxStars:
		return shadeStarfield(modelPos)
	case SkyboxPanorama:
		return shadePanorama(modelPos, s.Panorama)
	default:
		return render.Color{}
	}
}
