// Package picking casts world-space rays through screen pixels for
// selecting bodies by click.
package picking

import (
	"github.com/Faultbox/helios/pkg/math"
)

// Ray is a half line with a unit direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenRay builds the world-space ray through a screen pixel for a
// perspective view. forward and up define the view basis and fov is
// the vertical field of view in degrees, matching the projection the
// frame was rendered with.
func ScreenRay(origin, forward, up math.Vec3, fov, aspect, x, y, width, height float32) Ray {
	// Pixel to normalized device coordinates, top of the screen at +1.
	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height

	f := forward.Normalize()
	right := f.Cross(up).Normalize()
	trueUp := right.Cross(f)

	tanHalf := math.Tan(fov * math.Pi / 360)
	dir := f.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(trueUp.Scale(ndcY * tanHalf))

	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// IntersectSphere returns the distance along the ray to the sphere
// surface. A miss, or a sphere entirely behind the origin, reports ok
// false. A ray starting inside the sphere hits the far side.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, ok bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
