package mesh

import "github.com/Faultbox/helios/internal/engine/render"

// SkyDomeRadius keeps the dome close enough to bound raster area while
// staying behind every body after the depth test.
const SkyDomeRadius = 800

// SkyDome builds an inward-facing sphere rendered around the camera
// with a rotation-only view, so the sky appears infinitely far away.
func SkyDome(radius float32, segments int) []render.Vertex {
	return stitchQuads(sphereGrid(radius, segments, true), segments)
}
