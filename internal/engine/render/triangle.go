package render

import "github.com/Faultbox/helios/pkg/math"

// Screen coordinates are clamped to this range before rasterization, so a
// degenerate projection cannot produce a runaway scan.
const (
	minCoord float32 = -10000
	maxCoord float32 = 20000
)

// Shader computes the display color of one covered pixel. v1, v2, v3 are
// the primitive's original vertices; the remaining arguments are the
// attributes interpolated at the pixel center.
type Shader interface {
	Shade(v1, v2, v3 *ShadedVertex, modelPos, worldPos, normal math.Vec3, uv math.Vec2) Color
}

// Triangle rasterizes one triangle: a bounding-box scan over pixel
// centers, closed-interval barycentric coverage, attribute interpolation,
// and one shader call per covered pixel. The bounding box is clamped to
// the width-by-height framebuffer extent. budget caps the emitted
// fragments (<= 0 means unlimited); the second return value reports
// whether a fragment was actually dropped to honor it.
func Triangle(v1, v2, v3 *ShadedVertex, shader Shader, width, height float32, budget int) ([]Fragment, bool) {
	a, b, c := v1.Screen, v2.Screen, v3.Screen

	minX, minY, maxX, maxY := boundingBox(a, b, c)

	minX = maxInt(minX, 0)
	minY = maxInt(minY, 0)
	maxX = minInt(maxX, int(width)-1)
	maxY = minInt(maxY, int(height)-1)
	if minX > maxX || minY > maxY {
		return nil, false
	}

	area := edgeFunction(a, b, c)
	if math.Abs(area) < 0.0001 {
		return nil, false
	}

	var fragments []Fragment
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.Vec3{X: float32(x) + 0.5, Y: float32(y) + 0.5}

			w1 := edgeFunction(b, c, p) / area
			w2 := edgeFunction(c, a, p) / area
			w3 := edgeFunction(a, b, p) / area

			if w1 < 0 || w1 > 1 || w2 < 0 || w2 > 1 || w3 < 0 || w3 > 1 {
				continue
			}

			if budget > 0 && len(fragments) >= budget {
				return fragments, true
			}

			normal := baryLerp(v1.WorldNormal, v2.WorldNormal, v3.WorldNormal, w1, w2, w3)
			if normal.Dot(normal) > 0 {
				normal = normal.Normalize()
			}
			modelPos := baryLerp(v1.Position, v2.Position, v3.Position, w1, w2, w3)
			worldPos := baryLerp(v1.WorldPos, v2.WorldPos, v3.WorldPos, w1, w2, w3)
			uv := v1.TexCoords.Scale(w1).Add(v2.TexCoords.Scale(w2)).Add(v3.TexCoords.Scale(w3))

			color := shader.Shade(v1, v2, v3, modelPos, worldPos, normal, uv)
			depth := a.Z*w1 + b.Z*w2 + c.Z*w3

			fragments = append(fragments, Fragment{X: x, Y: y, Depth: depth, Color: color})
		}
	}
	return fragments, false
}

// boundingBox returns the integer pixel bounds covering the three screen
// positions, coordinates pre-clamped to the rasterizer range.
func boundingBox(a, b, c math.Vec3) (minX, minY, maxX, maxY int) {
	ax := math.Clamp(a.X, minCoord, maxCoord)
	ay := math.Clamp(a.Y, minCoord, maxCoord)
	bx := math.Clamp(b.X, minCoord, maxCoord)
	by := math.Clamp(b.Y, minCoord, maxCoord)
	cx := math.Clamp(c.X, minCoord, maxCoord)
	cy := math.Clamp(c.Y, minCoord, maxCoord)

	minX = int(math.Floor(math.Min(ax, math.Min(bx, cx))))
	minY = int(math.Floor(math.Min(ay, math.Min(by, cy))))
	maxX = int(math.Ceil(math.Max(ax, math.Max(bx, cx))))
	maxY = int(math.Ceil(math.Max(ay, math.Max(by, cy))))
	return minX, minY, maxX, maxY
}

// edgeFunction returns twice the signed area of (a, b, c) in screen space;
// the sign encodes winding.
func edgeFunction(a, b, c math.Vec3) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

func baryLerp(a, b, c math.Vec3, w1, w2, w3 float32) math.Vec3 {
	return a.Scale(w1).Add(b.Scale(w2)).Add(c.Scale(w3))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
