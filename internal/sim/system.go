// Package sim owns the solar system: the body catalog, the scene that
// draws it through the rasterization pipeline, and the interactive
// frame loop that binds camera, input, window and audio together.
package sim

import (
	"github.com/Faultbox/helios/internal/engine/shading"
	"github.com/Faultbox/helios/pkg/math"
)

// CelestialBody describes one body of the system: static orbital
// parameters plus the surface program that shades it. Position and spin
// are closed-form functions of simulation time, so bodies never
// accumulate state of their own.
type CelestialBody struct {
	Name          string
	Surface       shading.Surface
	Radius        float32
	OrbitRadius   float32
	OrbitSpeed    float32
	RotationSpeed float32
	InitialAngle  float32

	HasRings  bool
	RingInner float32
	RingOuter float32

	Moons []Moon
}

// Moon orbits its parent body on the ecliptic plane.
type Moon struct {
	Name         string
	Radius       float32
	OrbitRadius  float32
	OrbitSpeed   float32
	InitialAngle float32
}

// Position returns the body's world position at simulation time t.
// Orbits are circular and coplanar; the sun sits at the origin.
func (b *CelestialBody) Position(t float32) math.Vec3 {
	angle := b.InitialAngle + t*b.OrbitSpeed
	return math.Vec3{
		X: b.OrbitRadius * math.Cos(angle),
		Z: b.OrbitRadius * math.Sin(angle),
	}
}

// Rotation returns the body's spin Euler angles at simulation time t.
func (b *CelestialBody) Rotation(t float32) math.Vec3 {
	return math.Vec3{
		X: t * b.RotationSpeed,
		Y: t * b.RotationSpeed * 0.7,
	}
}

// Position returns the moon's world position at simulation time t given
// its parent's position.
func (m *Moon) Position(parent math.Vec3, t float32) math.Vec3 {
	angle := m.InitialAngle + t*m.OrbitSpeed
	return parent.Add(math.Vec3{
		X: m.OrbitRadius * math.Cos(angle),
		Z: m.OrbitRadius * math.Sin(angle),
	})
}

// SolarSystem is the shipped catalog plus the global time accumulator.
type SolarSystem struct {
	Bodies []CelestialBody
	Time   float32
}

// NewSolarSystem builds the shipped six-body catalog: a star, three
// rocky planets, and two ringed gas giants.
func NewSolarSystem() *SolarSystem {
	return &SolarSystem{
		Bodies: []CelestialBody{
			{
				Name:          "Sol",
				Surface:       shading.Surface{Kind: shading.Star},
				Radius:        50,
				RotationSpeed: 0.5,
			},
			{
				Name:          "Mercurio",
				Surface:       shading.Surface{Kind: shading.RockyPlanet},
				Radius:        15,
				OrbitRadius:   200,
				OrbitSpeed:    0.8,
				RotationSpeed: 0.6,
				Moons: []Moon{
					{Name: "Luna 1", Radius: 5, OrbitRadius: 40, OrbitSpeed: 1.2},
				},
			},
			{
				Name:          "Terra",
				Surface:       shading.Surface{Kind: shading.RockyPlanet},
				Radius:        18,
				OrbitRadius:   350,
				OrbitSpeed:    0.5,
				RotationSpeed: 0.4,
				InitialAngle:  1.5,
				Moons: []Moon{
					{Name: "Luna", Radius: 6, OrbitRadius: 50, OrbitSpeed: 0.9},
				},
			},
			{
				Name:          "Jupiter",
				Surface:       shading.Surface{Kind: shading.GasGiant},
				Radius:        35,
				OrbitRadius:   550,
				OrbitSpeed:    0.3,
				RotationSpeed: 0.25,
				InitialAngle:  3.0,
				HasRings:      true,
				RingInner:     40,
				RingOuter:     60,
				Moons: []Moon{
					{Name: "Io", Radius: 8, OrbitRadius: 70, OrbitSpeed: 1.5},
					{Name: "Europa", Radius: 7, OrbitRadius: 90, OrbitSpeed: 1.2, InitialAngle: 2},
				},
			},
			{
				Name:          "Marte",
				Surface:       shading.Surface{Kind: shading.RockyPlanet},
				Radius:        12,
				OrbitRadius:   750,
				OrbitSpeed:    0.25,
				RotationSpeed: 0.35,
				InitialAngle:  4.5,
			},
			{
				Name:          "Saturno",
				Surface:       shading.Surface{Kind: shading.GasGiant},
				Radius:        30,
				OrbitRadius:   950,
				OrbitSpeed:    0.2,
				RotationSpeed: 0.2,
				InitialAngle:  6.0,
				HasRings:      true,
				RingInner:     35,
				RingOuter:     55,
			},
		},
	}
}

// Advance moves simulation time forward by dt seconds.
func (s *SolarSystem) Advance(dt float32) {
	s.Time += dt
}

// Body returns the body at index, or nil when the index is out of
// range.
func (s *SolarSystem) Body(index int) *CelestialBody {
	if index < 0 || index >= len(s.Bodies) {
		return nil
	}
	return &s.Bodies[index]
}
