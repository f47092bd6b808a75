package mesh

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// OrbitPath builds a closed circle polyline on the ecliptic plane. The
// run has segments+1 vertices; the last one lands back on the first so
// consuming the run pairwise draws a closed loop.
func OrbitPath(radius float32, segments int) []render.Vertex {
	vertices := make([]render.Vertex, 0, segments+1)

	for i := 0; i <= segments; i++ {
		angle := float32(i) / float32(segments) * 2 * math.Pi
		vertices = append(vertices, render.Vertex{
			Position: math.Vec3{
				X: radius * math.Cos(angle),
				Z: radius * math.Sin(angle),
			},
			Normal: math.Vec3{Y: 1},
		})
	}

	return vertices
}
