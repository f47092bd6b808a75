// Package render implements the CPU rasterization pipeline: vertex
// transformation, line and triangle rasterizers with barycentric attribute
// interpolation, and a Renderer that feeds fragments into a depth-tested
// sink.
package render

import "github.com/Faultbox/helios/pkg/math"

// Vertex is a model-space mesh vertex with its authoring-time attributes.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	TexCoords math.Vec2
	Color     Color
}

// ShadedVertex is the output of the vertex stage. It keeps the original
// attributes and adds the derived ones: Screen holds the framebuffer-space
// position with z as the relative depth key, WorldPos and WorldNormal are
// the world-space position and transformed normal. Rasterizers and shaders
// accept only ShadedVertex, so un-transformed data cannot reach them.
type ShadedVertex struct {
	Vertex

	Screen      math.Vec3
	WorldPos    math.Vec3
	WorldNormal math.Vec3
}

// Fragment is one rasterized sample at an integer pixel coordinate.
type Fragment struct {
	X, Y  int
	Depth float32
	Color Color
}

// Uniforms carries the per-draw transform state shared by every vertex of
// a draw call. ScreenWidth and ScreenHeight are the live framebuffer
// extents; the rasterizers derive their clip region from them.
type Uniforms struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4

	ScreenWidth  float32
	ScreenHeight float32
}
