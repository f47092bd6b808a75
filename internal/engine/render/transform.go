package render

import "github.com/Faultbox/helios/pkg/math"

// TransformVertex runs the vertex stage: model/view/projection transform,
// perspective divide, NDC to screen mapping, and normal transform. The
// function is total; degenerate inputs are clamped instead of rejected.
func TransformVertex(v Vertex, u *Uniforms) ShadedVertex {
	pos := math.Vec4{v.Position.X, v.Position.Y, v.Position.Z, 1}

	world := u.Model.MulVec4(pos)

	mvp := u.Projection.Mul(u.View).Mul(u.Model)
	clip := mvp.MulVec4(pos)

	w := clip[3]
	if math.Abs(w) <= 0.0001 {
		w = 1
	}
	ndcX := math.Clamp(clip[0]/w, -10, 10)
	ndcY := math.Clamp(clip[1]/w, -10, 10)
	ndcZ := math.Clamp(clip[2]/w, -10, 10)

	// Screen y grows downward, so NDC y is inverted in the mapping.
	screenX := (math.Clamp(ndcX, -1, 1) + 1) * 0.5 * u.ScreenWidth
	screenY := (1 - math.Clamp(ndcY, -1, 1)) * 0.5 * u.ScreenHeight

	normal := u.Model.NormalMatrix().MulVec3(v.Normal)
	if normal.Dot(normal) > 0 {
		normal = normal.Normalize()
	}

	return ShadedVertex{
		Vertex:      v,
		Screen:      math.Vec3{X: screenX, Y: screenY, Z: ndcZ},
		WorldPos:    math.Vec3{X: world[0], Y: world[1], Z: world[2]},
		WorldNormal: normal,
	}
}
