package debug

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// Grid line colors. Regular lines are dim gray so the grid reads as a
// reference plane; the two world axes are picked out in tinted tones.
var (
	gridLineColor  = render.Color{R: 64, G: 64, B: 64}
	gridAxisXColor = render.Color{R: 160, G: 64, B: 64}
	gridAxisZColor = render.Color{R: 64, G: 64, B: 160}
)

// EclipticGrid builds a reference grid on the orbital plane as segment
// pairs for Renderer.DrawLines, reaching extent world units out from
// the origin with one line every step units. The lines through the
// origin take the axis colors.
func EclipticGrid(extent, step float32) []render.Vertex {
	if extent <= 0 || step <= 0 {
		return nil
	}

	n := int(extent / step)
	vertices := make([]render.Vertex, 0, (2*n+1)*4)

	for i := -n; i <= n; i++ {
		d := float32(i) * step

		alongZ := gridLineColor
		alongX := gridLineColor
		if i == 0 {
			alongZ = gridAxisZColor
			alongX = gridAxisXColor
		}

		vertices = append(vertices,
			gridVertex(d, -extent, alongZ),
			gridVertex(d, extent, alongZ),
			gridVertex(-extent, d, alongX),
			gridVertex(extent, d, alongX),
		)
	}
	return vertices
}

// gridVertex sits on the y=0 plane with an up-facing normal.
func gridVertex(x, z float32, c render.Color) render.Vertex {
	return render.Vertex{
		Position: math.Vec3{X: x, Z: z},
		Normal:   math.Vec3{Y: 1},
		Color:    c,
	}
}

// VertexColors shades each segment with its first vertex's authored
// color.
func VertexColors() render.Shader {
	return vertexColorShader{}
}

type vertexColorShader struct{}

func (vertexColorShader) Shade(v1, _, _ *render.ShadedVertex, _, _, _ math.Vec3, _ math.Vec2) render.Color {
	return v1.Color
}
