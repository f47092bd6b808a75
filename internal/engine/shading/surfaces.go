package shading

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// normalOr returns the normalized normal, or fallback when it is zero.
func normalOr(n, fallback math.Vec3) math.Vec3 {
	if n.Dot(n) > 0 {
		return n.Normalize()
	}
	return fallback
}

// pointLight evaluates the sun at the world origin for a surface sample:
// the diffuse term against the light direction and a distance attenuation
// with per-body reach and floor.
func pointLight(worldPos, normal math.Vec3, reach, floor float32) (diffuse, attenuation float32) {
	lightDir := math.Vec3{}.Sub(worldPos)
	distance := math.Max(lightDir.Length(), 1)
	lightDir = lightDir.Scale(1 / distance)

	diffuse = math.Max(normal.Dot(lightDir), 0)
	attenuation = math.Clamp(reach/distance, floor, 1)
	return diffuse, attenuation
}

// shadeStar renders the sun: self-lit warm surface with noise variation, a
// glow toward the local xy center and a directional flare.
func shadeStar(modelPos, normal math.Vec3) render.Color {
	n := normalOr(normal, math.Vec3{Z: 1})

	lightDir := math.Vec3{X: -0.2, Y: 0.6, Z: -1}.Normalize()
	intensity := math.Max(n.Dot(lightDir), 0)

	base := math.Vec3{X: 1, Y: 0.7, Z: 0.3}
	variation := 0.1 * FBM(modelPos.Scale(5), 3)

	centerDist := math.Sqrt(modelPos.X*modelPos.X + modelPos.Y*modelPos.Y)
	cg := 1 - math.Min(centerDist, 1)
	glow := cg * cg * 0.3

	flare := intensity * intensity * intensity * 0.3

	r := math.Clamp(base.X+variation+glow+flare, 0, 1)
	g := math.Clamp(base.Y+variation*0.5+glow*0.8+flare*0.9, 0, 1)
	b := math.Clamp(base.Z+variation*0.3+glow*0.5, 0, 1)

	lightFactor := intensity*0.6 + 0.4
	return render.ColorFromFloats(r*lightFactor, g*lightFactor, b*lightFactor)
}

// shadeRockyPlanet renders an earth-like surface: continents from a noise
// threshold, latitude climate bands, ocean depth variation.
func shadeRockyPlanet(modelPos, worldPos, normal math.Vec3) render.Color {
	n := normalOr(normal, math.Vec3{Y: 1})

	diffuse, attenuation := pointLight(worldPos, n, 1200, 0.35)
	shade := math.Clamp((diffuse*0.85+0.15)*attenuation, 0.1, 1)

	radius := math.Max(modelPos.Length(), 1e-5)
	lat := math.Acos(math.Clamp(modelPos.Y/radius, -1, 1))
	climate := math.Abs(lat / math.Pi)

	var base math.Vec3
	if FBM(modelPos.Scale(2), 4) > 0.1 {
		green := math.Vec3{X: 0.2, Y: 0.6, Z: 0.2}
		brown := math.Vec3{X: 0.4, Y: 0.3, Z: 0.2}
		snow := math.Vec3{X: 0.9, Y: 0.9, Z: 0.95}

		switch {
		case climate > 0.7:
			base = green.Scale(0.3).Add(snow.Scale(0.7))
		case climate < 0.3:
			base = green.Scale(0.8).Add(brown.Scale(0.2))
		default:
			elevation := FBM(modelPos.Scale(4), 3)*0.5 + 0.5
			mix := elevation * 0.5
			base = green.Scale(1 - mix).Add(brown.Scale(mix))
		}
	} else {
		depth := FBM(modelPos.Scale(3), 3)*0.3 + 0.7
		deep := math.Vec3{Y: 0.2, Z: 0.5}
		shallow := math.Vec3{X: 0.2, Y: 0.4, Z: 0.7}
		base = deep.Scale(depth).Add(shallow.Scale(1 - depth))
	}

	base = base.Scale(shade)
	return render.ColorFromFloats(base.X, base.Y, base.Z)
}

// shadeGasGiant renders banded clouds with turbulent swirls and a fixed
// anchor spot on the normalized surface direction.
func shadeGasGiant(modelPos, worldPos, normal math.Vec3) render.Color {
	n := normalOr(normal, math.Vec3{Y: 1})

	diffuse, attenuation := pointLight(worldPos, n, 1500, 0.35)
	shade := (diffuse*0.8 + 0.2) * attenuation

	radius := math.Max(modelPos.Length(), 1e-5)
	lat := math.Clamp(modelPos.Y/radius, -1, 1)

	band := math.Sin(lat*8)*0.5 + 0.5
	swirl := (FBM(modelPos.Scale(3), 4)*2 - 1) * 0.3
	variation := FBM(modelPos.Scale(5), 3) * 0.2

	spotPos := math.Vec3{Y: 0.3, Z: 0.8}
	dir := modelPos
	if dir.Dot(dir) > 0 {
		dir = dir.Normalize()
	}
	spotDist := dir.Sub(spotPos).Length()
	var spot float32
	if spotDist < 0.3 {
		s := 1 - spotDist/0.3
		spot = s * s * 0.4
	}

	dark := math.Vec3{X: 0.5, Y: 0.3, Z: 0.2}
	light := math.Vec3{X: 0.8, Y: 0.7, Z: 0.6}
	redSpot := math.Vec3{X: 0.8, Y: 0.3, Z: 0.2}

	base := dark.Scale(1 - band).Add(light.Scale(band))
	base = base.Add(math.Vec3{X: swirl, Y: swirl * 0.5, Z: -swirl * 0.3})
	base = base.Add(math.Vec3{X: variation, Y: variation * 0.5, Z: -variation * 0.3})
	base = base.Scale(1 - spot).Add(redSpot.Scale(spot))

	return render.ColorFromFloats(base.X*shade, base.Y*shade, base.Z*shade)
}

// shadeMoon renders a cratered gray surface.
func shadeMoon(modelPos, worldPos, normal math.Vec3) render.Color {
	n := normalOr(normal, math.Vec3{Y: 1})

	diffuse, attenuation := pointLight(worldPos, n, 1000, 0.35)
	shade := (diffuse*0.9 + 0.1) * attenuation

	craters := FBM(modelPos.Scale(8), 4)
	depth := math.Abs(craters-0.5) * 2
	var crater float32
	if depth > 0.7 {
		crater = depth * 0.3
	}

	gray := math.Clamp(0.5-crater, 0.2, 0.8)
	v := math.Clamp(gray*shade, 0.1, 1)
	return render.ColorFromFloats(v, v, v)
}

// shadeShip renders a metallic blue-gray hull blended toward a highlight
// tint with the diffuse term.
func shadeShip(worldPos, normal math.Vec3) render.Color {
	n := normalOr(normal, math.Vec3{Y: 1})

	diffuse, attenuation := pointLight(worldPos, n, 800, 0.3)
	brightness := (diffuse*0.8 + 0.2) * attenuation

	base := math.Vec3{X: 0.4, Y: 0.5, Z: 0.7}
	highlight := math.Vec3{X: 0.6, Y: 0.7, Z: 0.9}
	color := base.Scale(1 - diffuse*0.3).Add(highlight.Scale(diffuse * 0.3))

	return render.ColorFromFloats(color.X*brightness, color.Y*brightness, color.Z*brightness)
}

// shadeRing renders a dusty ring: radial gradient on the tex-coord v axis
// (0 inner edge, 1 outer edge) with noise speckle.
func shadeRing(modelPos, worldPos, normal math.Vec3, uv math.Vec2) render.Color {
	n := normalOr(normal, math.Vec3{Y: 1})

	diffuse, attenuation := pointLight(worldPos, n, 1400, 0.35)
	lightFactor := (diffuse*0.6 + 0.4) * attenuation

	radial := uv.Y
	inner := math.Vec3{X: 0.4, Y: 0.35, Z: 0.3}
	outer := math.Vec3{X: 0.5, Y: 0.45, Z: 0.4}
	color := inner.Scale(1 - radial).Add(outer.Scale(radial))

	variation := FBM(modelPos.Scale(10), 2) * 0.1
	r := math.Clamp(color.X+variation, 0, 1)
	g := math.Clamp(color.Y+variation, 0, 1)
	b := math.Clamp(color.Z+variation, 0, 1)

	return render.ColorFromFloats(r*lightFactor, g*lightFactor, b*lightFactor)
}
