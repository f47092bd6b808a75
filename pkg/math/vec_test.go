package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 20}
	got := a.Lerp(b, 0.5)
	want := Vec2{5, 10}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3.Normalize() of zero vector = %v, want zero vector", got)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{0, 0, 60}
	got := a.Distance(b)
	if got != 60 {
		t.Errorf("Vec3.Distance() = %v, want 60", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 200, 500}
	b := Vec3{0, 0, 0}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Vec3.Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Vec3.Lerp(t=1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	want := Vec3{0, 100, 250}
	if mid != want {
		t.Errorf("Vec3.Lerp(t=0.5) = %v, want %v", mid, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float32
		want      float32
	}{
		{"below", -2, 0, 1, 0},
		{"inside", 0.5, 0, 1, 0.5},
		{"above", 3, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFract(t *testing.T) {
	if got := Fract(1.25); abs(got-0.25) > 1e-6 {
		t.Errorf("Fract(1.25) = %v, want 0.25", got)
	}
	// Fract of a negative stays in [0,1)
	if got := Fract(-0.25); abs(got-0.75) > 1e-6 {
		t.Errorf("Fract(-0.25) = %v, want 0.75", got)
	}
}
