// Package mesh provides procedural geometry builders and OBJ model
// loading. Every builder returns a flat non-indexed triangle list; the
// orbit path builder returns a polyline run instead.
package mesh

import (
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// Sphere builds a UV sphere. Rows sweep latitude from the north pole,
// columns sweep longitude; each vertex carries its unit position as the
// normal and equirectangular texture coordinates.
func Sphere(radius float32, segments int) []render.Vertex {
	return stitchQuads(sphereGrid(radius, segments, false), segments)
}

// sphereGrid lays out the (segments+1)x(segments+1) vertex lattice
// shared by Sphere and SkyDome. Inward flips the normals toward the
// center.
func sphereGrid(radius float32, segments int, inward bool) []render.Vertex {
	vertices := make([]render.Vertex, 0, (segments+1)*(segments+1))

	for i := 0; i <= segments; i++ {
		v := float32(i) / float32(segments)
		theta := v * math.Pi
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for j := 0; j <= segments; j++ {
			u := float32(j) / float32(segments)
			phi := u * 2 * math.Pi

			position := math.Vec3{
				X: radius * sinTheta * math.Cos(phi),
				Y: radius * cosTheta,
				Z: radius * sinTheta * math.Sin(phi),
			}
			normal := position.Normalize()
			if inward {
				normal = normal.Scale(-1)
			}

			vertices = append(vertices, render.Vertex{
				Position:  position,
				Normal:    normal,
				TexCoords: math.Vec2{X: u, Y: v},
			})
		}
	}

	return vertices
}

// stitchQuads expands the lattice into two triangles per quad.
func stitchQuads(grid []render.Vertex, segments int) []render.Vertex {
	out := make([]render.Vertex, 0, segments*segments*6)

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			current := i*(segments+1) + j
			next := current + 1
			below := (i+1)*(segments+1) + j
			belowNext := below + 1

			out = append(out, grid[current], grid[next], grid[below])
			out = append(out, grid[next], grid[belowNext], grid[below])
		}
	}

	return out
}
