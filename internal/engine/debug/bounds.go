package debug

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// BoxOutlineVertexCount is the number of vertices in a box outline
// (12 edges, 2 endpoints each).
const BoxOutlineVertexCount = 24

// BoxOutline builds the edges of an axis-aligned cube around center
// with the given half extent, as segment pairs for Renderer.DrawLines.
func BoxOutline(center math.Vec3, half float32) []render.Vertex {
	min := center.Sub(math.Vec3{X: half, Y: half, Z: half})
	max := center.Add(math.Vec3{X: half, Y: half, Z: half})

	return []render.Vertex{
		// Bottom face (4 edges)
		cornerVertex(min.X, min.Y, min.Z), cornerVertex(max.X, min.Y, min.Z),
		cornerVertex(max.X, min.Y, min.Z), cornerVertex(max.X, min.Y, max.Z),
		cornerVertex(max.X, min.Y, max.Z), cornerVertex(min.X, min.Y, max.Z),
		cornerVertex(min.X, min.Y, max.Z), cornerVertex(min.X, min.Y, min.Z),

		// Top face (4 edges)
		cornerVertex(min.X, max.Y, min.Z), cornerVertex(max.X, max.Y, min.Z),
		cornerVertex(max.X, max.Y, min.Z), cornerVertex(max.X, max.Y, max.Z),
		cornerVertex(max.X, max.Y, max.Z), cornerVertex(min.X, max.Y, max.Z),
		cornerVertex(min.X, max.Y, max.Z), cornerVertex(min.X, max.Y, min.Z),

		// Vertical edges (4 edges)
		cornerVertex(min.X, min.Y, min.Z), cornerVertex(min.X, max.Y, min.Z),
		cornerVertex(max.X, min.Y, min.Z), cornerVertex(max.X, max.Y, min.Z),
		cornerVertex(max.X, min.Y, max.Z), cornerVertex(max.X, max.Y, max.Z),
		cornerVertex(min.X, min.Y, max.Z), cornerVertex(min.X, max.Y, max.Z),
	}
}

func cornerVertex(x, y, z float32) render.Vertex {
	return render.Vertex{Position: math.Vec3{X: x, Y: y, Z: z}}
}

// OutlineShader colors every fragment of an overlay the same.
func OutlineShader(c render.Color) render.Shader {
	return outlineShader{color: c}
}

type outlineShader struct {
	color render.Color
}

func (s outlineShader) Shade(_, _, _ *render.ShadedVertex, _, _, _ math.Vec3, _ math.Vec2) render.Color {
	return s.color
}
