// Package shading implements the procedural surface shader library: noise
// primitives and a closed set of surface programs selected by Kind.
package shading

import "github.com/Faultbox/helios/pkg/math"

// Hash scrambles a scalar into [0, 1) with the classic sine trick.
func Hash(n float32) float32 {
	return math.Fract(math.Sin(n*12.9898) * 43758.5453)
}

// Hash3 folds a point into a scalar and hashes it.
func Hash3(p math.Vec3) float32 {
	return Hash(p.X*12.9898 + p.Y*78.233 + p.Z*45.164)
}

// Smoothstep is the cubic Hermite ramp between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := math.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Noise is 3D value noise: trilinear interpolation of lattice-corner
// hashes with smoothstep-eased fractional weights.
func Noise(p math.Vec3) float32 {
	i := math.Vec3{X: math.Floor(p.X), Y: math.Floor(p.Y), Z: math.Floor(p.Z)}
	f := p.Sub(i)

	ux := Smoothstep(0, 1, f.X)
	uy := Smoothstep(0, 1, f.Y)
	uz := Smoothstep(0, 1, f.Z)

	a := Hash3(i)
	b := Hash3(math.Vec3{X: i.X + 1, Y: i.Y, Z: i.Z})
	c := Hash3(math.Vec3{X: i.X, Y: i.Y + 1, Z: i.Z})
	d := Hash3(math.Vec3{X: i.X + 1, Y: i.Y + 1, Z: i.Z})
	e := Hash3(math.Vec3{X: i.X, Y: i.Y, Z: i.Z + 1})
	g := Hash3(math.Vec3{X: i.X + 1, Y: i.Y, Z: i.Z + 1})
	h := Hash3(math.Vec3{X: i.X, Y: i.Y + 1, Z: i.Z + 1})
	k := Hash3(math.Vec3{X: i.X + 1, Y: i.Y + 1, Z: i.Z + 1})

	x1 := a + (b-a)*ux
	x2 := c + (d-c)*ux
	y1 := x1 + (x2-x1)*uy

	x3 := e + (g-e)*ux
	x4 := h + (k-h)*ux
	y2 := x3 + (x4-x3)*uy

	return y1 + (y2-y1)*uz
}

// FBM sums octaves of Noise, each layer doubling frequency and halving
// amplitude from a start of amplitude 0.5 and frequency 1.
func FBM(p math.Vec3, octaves int) float32 {
	var value float32
	amplitude := float32(0.5)
	frequency := float32(1)

	for i := 0; i < octaves; i++ {
		value += amplitude * Noise(p.Scale(frequency))
		amplitude *= 0.5
		frequency *= 2
	}
	return value
}
