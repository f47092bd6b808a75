package shading

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/internal/engine/texture"
	"github.com/Faultbox/helios/pkg/math"
)

// shade evaluates a surface with nil vertex context; the surface programs
// only read the interpolated arguments.
func shade(s Surface, modelPos, worldPos, normal math.Vec3, uv math.Vec2) render.Color {
	return s.Shade(nil, nil, nil, modelPos, worldPos, normal, uv)
}

func colorNear(a, b render.Color, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol && diff(a.B, b.B) <= tol
}

func TestOrbitConstantColor(t *testing.T) {
	want := render.ColorFromFloats(0.3, 0.6, 0.9)
	inputs := []math.Vec3{{}, {X: 100, Y: -5, Z: 3}, {X: 0.1, Y: 0.1, Z: 0.1}}
	for _, p := range inputs {
		got := shade(Surface{Kind: Orbit}, p, p, p, math.Vec2{X: 0.5})
		if got != want {
			t.Errorf("expected %v for every input, got %v", want, got)
		}
	}
}

func TestStarCenterGlow(t *testing.T) {
	// At the model origin the noise terms vanish and the zero normal falls
	// back to (0, 0, 1), which faces away from the fixed light: intensity 0,
	// full center glow.
	got := shade(Surface{Kind: Star}, math.Vec3{}, math.Vec3{}, math.Vec3{}, math.Vec2{})
	want := render.Color{R: 102, G: 95, B: 45}
	if !colorNear(got, want, 1) {
		t.Errorf("expected about %v, got %v", want, got)
	}
}

func TestRockyPlanetOceanAtOrigin(t *testing.T) {
	// FBM at the origin is zero, so the continent threshold selects ocean
	// with depth 0.7. The sample faces the sun at distance 600 for full
	// diffuse and attenuation 1.
	got := shade(Surface{Kind: RockyPlanet},
		math.Vec3{}, math.Vec3{Z: 600}, math.Vec3{Z: -1}, math.Vec2{})
	want := render.Color{R: 15, G: 66, B: 142}
	if !colorNear(got, want, 1) {
		t.Errorf("expected about %v, got %v", want, got)
	}
}

func TestGasGiantMidBandAtOrigin(t *testing.T) {
	// Latitude 0 puts the sample mid-band; FBM terms vanish at the origin,
	// leaving the swirl floor of -0.3 and no spot contribution.
	got := shade(Surface{Kind: GasGiant},
		math.Vec3{}, math.Vec3{Z: 750}, math.Vec3{Z: -1}, math.Vec2{})
	want := render.Color{R: 89, G: 89, B: 124}
	if !colorNear(got, want, 1) {
		t.Errorf("expected about %v, got %v", want, got)
	}
}

func TestMoonFlatGrayWithoutCraters(t *testing.T) {
	// Find a surface point whose crater depth stays below the activation
	// threshold, so the shader returns the base gray scaled only by light.
	candidates := []math.Vec3{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: 1.1, Y: 0.7, Z: 2.3},
		{X: 5, Y: 3, Z: 1},
		{X: -2.5, Y: 0.4, Z: 7.7},
		{X: 0.9, Y: -4.2, Z: 2.2},
		{X: 3.3, Y: 3.3, Z: -3.3},
	}
	var p math.Vec3
	found := false
	for _, cand := range candidates {
		depth := abs(FBM(cand.Scale(8), 4)-0.5) * 2
		if depth <= 0.7 {
			p = cand
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no candidate point with crater depth below the threshold")
	}

	// Sun-facing at distance 500: diffuse 1, attenuation 1, shading 1.
	got := shade(Surface{Kind: Moon}, p, math.Vec3{Z: 500}, math.Vec3{Z: -1}, math.Vec2{})
	want := render.Color{R: 127, G: 127, B: 127}
	if !colorNear(got, want, 1) {
		t.Errorf("expected flat gray %v, got %v", want, got)
	}
	if got.R != got.G || got.G != got.B {
		t.Errorf("expected equal channels, got %v", got)
	}
}

func TestShipLitBrighterThanUnlit(t *testing.T) {
	lit := shade(Surface{Kind: Ship}, math.Vec3{}, math.Vec3{Z: 400}, math.Vec3{Z: -1}, math.Vec2{})
	unlit := shade(Surface{Kind: Ship}, math.Vec3{}, math.Vec3{Z: 400}, math.Vec3{Z: 1}, math.Vec2{})

	if lit.R <= unlit.R || lit.G <= unlit.G || lit.B <= unlit.B {
		t.Errorf("expected the sun-facing sample to be brighter: lit %v, unlit %v", lit, unlit)
	}

	want := render.Color{R: 117, G: 142, B: 193}
	if !colorNear(lit, want, 1) {
		t.Errorf("expected about %v, got %v", want, lit)
	}
}

func TestRingRadialGradient(t *testing.T) {
	worldPos := math.Vec3{Z: 700}
	normal := math.Vec3{Y: 1}

	inner := shade(Surface{Kind: Ring}, math.Vec3{}, worldPos, normal, math.Vec2{Y: 0})
	outer := shade(Surface{Kind: Ring}, math.Vec3{}, worldPos, normal, math.Vec2{Y: 1})

	if outer.R <= inner.R || outer.G <= inner.G || outer.B <= inner.B {
		t.Errorf("expected the outer edge brighter than the inner: inner %v, outer %v", inner, outer)
	}
}

func TestStarfieldChannels(t *testing.T) {
	deepSpace := render.ColorFromFloats(0.01, 0.01, 0.02)
	deepCount := 0
	total := 0

	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			for z := 1; z <= 2; z++ {
				dir := math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
				got := shade(Surface{Kind: SkyboxStars}, dir, math.Vec3{}, math.Vec3{}, math.Vec2{})
				if got.R != got.G {
					t.Errorf("direction %v: expected matching red and green, got %v", dir, got)
				}
				if got == deepSpace {
					deepCount++
				}
				total++
			}
		}
	}
	if deepCount == 0 {
		t.Errorf("expected deep space to dominate %d samples", total)
	}
}

func TestPanoramaFallsBackWithoutTexture(t *testing.T) {
	dir := math.Vec3{X: 0.3, Y: 0.5, Z: -0.8}
	got := shade(Surface{Kind: SkyboxPanorama}, dir, math.Vec3{}, math.Vec3{}, math.Vec2{})
	want := shade(Surface{Kind: SkyboxStars}, dir, math.Vec3{}, math.Vec3{}, math.Vec2{})
	if got != want {
		t.Errorf("expected the procedural starfield %v, got %v", want, got)
	}
}

func TestPanoramaSamplesBoundTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	sky := Surface{Kind: SkyboxPanorama, Panorama: texture.FromImage(img)}

	got := shade(sky, math.Vec3{X: 0.2, Y: 0.4, Z: 0.6}, math.Vec3{}, math.Vec3{}, math.Vec2{})
	want := render.Color{R: 255}
	if got != want {
		t.Errorf("expected the texture color %v, got %v", want, got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
