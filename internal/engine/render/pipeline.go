package render

// Sink receives depth-tested pixels. Implementations must reject
// out-of-bounds coordinates in Point.
type Sink interface {
	SetCurrentColor(hex uint32)
	Point(x, y int, depth float32)
}

// Stats counts pipeline work since the last ResetStats.
type Stats struct {
	Triangles int // triangles submitted
	Culled    int // triangles rejected before the scan produced anything
	Fragments int // fragments forwarded to the sink
	Truncated int // triangles cut short by the fragment budget
}

// Renderer drives the rasterizers over vertex runs and forwards the
// resulting fragments to a sink.
type Renderer struct {
	sink   Sink
	budget int
	stats  Stats
}

// New creates a Renderer writing to sink. budget caps the fragments a
// single triangle may emit; <= 0 disables the cap.
func New(sink Sink, budget int) *Renderer {
	return &Renderer{sink: sink, budget: budget}
}

// Stats returns the counters accumulated since the last ResetStats.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ResetStats zeroes the per-frame counters.
func (r *Renderer) ResetStats() {
	r.stats = Stats{}
}

// DrawTriangles shades vertices in groups of three and rasterizes each
// group with shader. A trailing partial group is ignored.
func (r *Renderer) DrawTriangles(vertices []Vertex, u *Uniforms, shader Shader) {
	for i := 0; i+2 < len(vertices); i += 3 {
		sv1 := TransformVertex(vertices[i], u)
		sv2 := TransformVertex(vertices[i+1], u)
		sv3 := TransformVertex(vertices[i+2], u)

		r.stats.Triangles++
		fragments, truncated := Triangle(&sv1, &sv2, &sv3, shader, u.ScreenWidth, u.ScreenHeight, r.budget)
		if truncated {
			r.stats.Truncated++
		}
		if len(fragments) == 0 {
			r.stats.Culled++
			continue
		}
		r.blit(fragments)
	}
}

// DrawLines shades vertices in pairs and draws each pair as an
// independent segment. A trailing unpaired vertex is ignored.
func (r *Renderer) DrawLines(vertices []Vertex, u *Uniforms, shader Shader) {
	for i := 0; i+1 < len(vertices); i += 2 {
		a := TransformVertex(vertices[i], u)
		b := TransformVertex(vertices[i+1], u)
		color := shader.Shade(&a, &b, &a, a.Position, a.WorldPos, a.WorldNormal, a.TexCoords)
		r.blit(Line(&a, &b, color))
	}
}

// DrawPolyline shades the run and draws a line between each consecutive
// vertex pair. The segment color comes from a single shader evaluation at
// the segment's first vertex.
func (r *Renderer) DrawPolyline(vertices []Vertex, u *Uniforms, shader Shader) {
	if len(vertices) < 2 {
		return
	}
	prev := TransformVertex(vertices[0], u)
	for i := 1; i < len(vertices); i++ {
		cur := TransformVertex(vertices[i], u)
		color := shader.Shade(&prev, &cur, &prev, prev.Position, prev.WorldPos, prev.WorldNormal, prev.TexCoords)
		r.blit(Line(&prev, &cur, color))
		prev = cur
	}
}

func (r *Renderer) blit(fragments []Fragment) {
	for _, f := range fragments {
		r.sink.SetCurrentColor(f.Color.Hex())
		r.sink.Point(f.X, f.Y, f.Depth)
		r.stats.Fragments++
	}
}
