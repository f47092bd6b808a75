package mesh

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// Ship builds the procedural fallback hull used when no OBJ model is
// available: a unit-scale faceted prism pointed along +Z, widest
// amidships and tapering toward both ends.
func Ship() []render.Vertex {
	nose := math.Vec3{Z: 1}
	topFront := math.Vec3{Y: 0.5, Z: 0.5}
	bottomFront := math.Vec3{Y: -0.5, Z: 0.5}
	leftFront := math.Vec3{X: -0.3, Z: 0.5}
	rightFront := math.Vec3{X: 0.3, Z: 0.5}

	tail := math.Vec3{Z: -1}
	topBack := math.Vec3{Y: 0.3, Z: -0.5}
	bottomBack := math.Vec3{Y: -0.3, Z: -0.5}
	leftBack := math.Vec3{X: -0.2, Z: -0.5}
	rightBack := math.Vec3{X: 0.2, Z: -0.5}

	var out []render.Vertex
	tri := func(a, b, c, normal math.Vec3) {
		for _, p := range []math.Vec3{a, b, c} {
			out = append(out, render.Vertex{Position: p, Normal: normal})
		}
	}

	// Nose cone.
	front := math.Vec3{Z: 1}
	tri(nose, topFront, leftFront, front)
	tri(nose, leftFront, bottomFront, front)
	tri(nose, bottomFront, rightFront, front)
	tri(nose, rightFront, topFront, front)

	// Tail cone.
	back := math.Vec3{Z: -1}
	tri(tail, leftBack, topBack, back)
	tri(tail, bottomBack, leftBack, back)
	tri(tail, rightBack, bottomBack, back)
	tri(tail, topBack, rightBack, back)

	// Upper hull.
	up := math.Vec3{Y: 1}
	tri(topFront, rightFront, rightBack, up)
	tri(topFront, rightBack, topBack, up)
	tri(topFront, topBack, leftBack, up)
	tri(topFront, leftBack, leftFront, up)

	// Lower hull.
	down := math.Vec3{Y: -1}
	tri(bottomFront, leftBack, rightBack, down)
	tri(bottomFront, rightBack, rightFront, down)
	tri(bottomFront, leftFront, leftBack, down)

	// Port and starboard chines.
	left := math.Vec3{X: -1}
	tri(leftFront, leftBack, bottomFront, left)
	tri(leftFront, topFront, leftBack, left)

	right := math.Vec3{X: 1}
	tri(rightFront, bottomFront, rightBack, right)
	tri(rightFront, rightBack, topFront, right)

	return out
}
