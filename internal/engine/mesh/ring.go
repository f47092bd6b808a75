package mesh

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// Ring builds a flat annulus on the y=0 plane, two triangles per
// segment. Texture V runs 0 at the inner edge to 1 at the outer edge so
// a shader can grade the ring radially; normals point up.
func Ring(inner, outer float32, segments int) []render.Vertex {
	up := math.Vec3{Y: 1}
	out := make([]render.Vertex, 0, segments*6)

	for i := 0; i < segments; i++ {
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)
		a0 := u0 * 2 * math.Pi
		a1 := u1 * 2 * math.Pi

		inner0 := ringVertex(inner, a0, 0, u0, up)
		outer0 := ringVertex(outer, a0, 1, u0, up)
		inner1 := ringVertex(inner, a1, 0, u1, up)
		outer1 := ringVertex(outer, a1, 1, u1, up)

		out = append(out, inner0, outer0, inner1)
		out = append(out, inner1, outer0, outer1)
	}

	return out
}

func ringVertex(radius, angle, radial, u float32, normal math.Vec3) render.Vertex {
	return render.Vertex{
		Position: math.Vec3{
			X: radius * math.Cos(angle),
			Z: radius * math.Sin(angle),
		},
		Normal:    normal,
		TexCoords: math.Vec2{X: u, Y: radial},
	}
}
