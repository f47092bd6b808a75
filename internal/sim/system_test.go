package sim

import (
	"testing"

	"github.com/Faultbox/helios/internal/engine/shading"
	"github.com/Faultbox/helios/pkg/math"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func vecNear(a, b math.Vec3, eps float32) bool {
	return absf(a.X-b.X) <= eps && absf(a.Y-b.Y) <= eps && absf(a.Z-b.Z) <= eps
}

func TestCatalogShape(t *testing.T) {
	s := NewSolarSystem()
	if len(s.Bodies) != 6 {
		t.Fatalf("bodies = %d, want 6", len(s.Bodies))
	}

	names := []string{"Sol", "Mercurio", "Terra", "Jupiter", "Marte", "Saturno"}
	for i, want := range names {
		if got := s.Bodies[i].Name; got != want {
			t.Errorf("body %d name = %q, want %q", i, got, want)
		}
	}

	sol := s.Body(0)
	if sol.Surface.Kind != shading.Star {
		t.Errorf("Sol surface = %v, want star", sol.Surface.Kind)
	}
	if sol.OrbitRadius != 0 {
		t.Errorf("Sol orbit radius = %v, want 0", sol.OrbitRadius)
	}

	jupiter := s.Body(3)
	if !jupiter.HasRings || jupiter.RingInner != 40 || jupiter.RingOuter != 60 {
		t.Errorf("Jupiter rings = %v %v..%v, want 40..60",
			jupiter.HasRings, jupiter.RingInner, jupiter.RingOuter)
	}
	if len(jupiter.Moons) != 2 {
		t.Fatalf("Jupiter moons = %d, want 2", len(jupiter.Moons))
	}
	if jupiter.Moons[1].Name != "Europa" || jupiter.Moons[1].InitialAngle != 2 {
		t.Errorf("Europa = %+v", jupiter.Moons[1])
	}

	marte := s.Body(4)
	if marte.HasRings || len(marte.Moons) != 0 {
		t.Errorf("Marte should be bare, got rings=%v moons=%d", marte.HasRings, len(marte.Moons))
	}
}

func TestStarStaysAtOrigin(t *testing.T) {
	s := NewSolarSystem()
	sol := s.Body(0)
	for _, tm := range []float32{0, 1, 17.5, 400} {
		if got := sol.Position(tm); got != (math.Vec3{}) {
			t.Errorf("Sol at t=%v is %+v, want origin", tm, got)
		}
	}
}

func TestBodyPositionFollowsOrbit(t *testing.T) {
	s := NewSolarSystem()
	terra := s.Body(2)

	// At t=0 only the initial angle applies.
	angle := terra.InitialAngle
	want := math.Vec3{X: 350 * math.Cos(angle), Z: 350 * math.Sin(angle)}
	if got := terra.Position(0); !vecNear(got, want, 1e-3) {
		t.Errorf("Terra at t=0 = %+v, want %+v", got, want)
	}

	// Positions stay on the orbit circle in the ecliptic plane.
	for _, tm := range []float32{0.25, 3, 42} {
		p := terra.Position(tm)
		if p.Y != 0 {
			t.Errorf("Terra at t=%v left the plane: y=%v", tm, p.Y)
		}
		r := math.Sqrt(p.X*p.X + p.Z*p.Z)
		if absf(r-350) > 1e-2 {
			t.Errorf("Terra at t=%v radius = %v, want 350", tm, r)
		}
	}
}

func TestBodyRotationRates(t *testing.T) {
	s := NewSolarSystem()
	sol := s.Body(0)

	rot := sol.Rotation(2)
	if absf(rot.X-1.0) > 1e-5 {
		t.Errorf("Sol x spin at t=2 = %v, want 1.0", rot.X)
	}
	if absf(rot.Y-0.7) > 1e-5 {
		t.Errorf("Sol y spin at t=2 = %v, want 0.7", rot.Y)
	}
	if rot.Z != 0 {
		t.Errorf("Sol z spin = %v, want 0", rot.Z)
	}
}

func TestMoonOrbitsParent(t *testing.T) {
	s := NewSolarSystem()
	terra := s.Body(2)
	luna := &terra.Moons[0]

	for _, tm := range []float32{0, 1.3, 9} {
		parent := terra.Position(tm)
		p := luna.Position(parent, tm)
		d := p.Sub(parent)
		if d.Y != 0 {
			t.Errorf("Luna at t=%v left the plane: y=%v", tm, d.Y)
		}
		r := math.Sqrt(d.X*d.X + d.Z*d.Z)
		if absf(r-50) > 1e-2 {
			t.Errorf("Luna at t=%v distance from Terra = %v, want 50", tm, r)
		}
	}
}

func TestAdvanceAccumulatesTime(t *testing.T) {
	s := NewSolarSystem()
	for i := 0; i < 100; i++ {
		s.Advance(0.01)
	}
	if absf(s.Time-1.0) > 1e-4 {
		t.Errorf("time after 100 steps = %v, want 1.0", s.Time)
	}
}

func TestBodyIndexBounds(t *testing.T) {
	s := NewSolarSystem()
	if s.Body(-1) != nil {
		t.Error("Body(-1) should be nil")
	}
	if s.Body(len(s.Bodies)) != nil {
		t.Error("Body(len) should be nil")
	}
	if s.Body(5) == nil || s.Body(5).Name != "Saturno" {
		t.Error("Body(5) should be Saturno")
	}
}
