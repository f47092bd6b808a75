package sim

import (
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/debug"
	"github.com/Faultbox/helios/internal/engine/framebuffer"
	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/internal/engine/shading"
	"github.com/Faultbox/helios/internal/engine/texture"
	"github.com/Faultbox/helios/pkg/math"
)

const (
	sphereSegments  = 20
	moonSegments    = 16
	ringSegments    = 36
	orbitSegments   = 48
	skyDomeSegments = 16

	// shipScale converts the unit-sized hull into world units.
	shipScale = 25

	// The reference grid reaches past the outermost orbit.
	gridExtent = 1200
	gridStep   = 100

	// selectionScale sizes the outline box relative to the body it marks.
	selectionScale = 1.2
)

var selectionColor = render.Color{R: 255, G: 180, B: 40}

// Scene caches the shared geometry of the system and draws one frame of
// it into the framebuffer. Spheres are unit-sized and scaled per body by
// the model matrix, so one mesh serves every planet.
type Scene struct {
	fb       *framebuffer.Framebuffer
	renderer *render.Renderer

	planetSphere []render.Vertex
	moonSphere   []render.Vertex
	skyDome      []render.Vertex
	ship         []render.Vertex

	// Indexed alongside system.Bodies; nil where the body has no orbit
	// or no rings.
	orbits [][]render.Vertex
	rings  [][]render.Vertex

	skySurface    shading.Surface
	grid          []render.Vertex
	gridShader    render.Shader
	outlineShader render.Shader
}

// Frame carries the per-frame draw state that lives outside the system
// itself: ship placement, the visibility toggles, and the debug
// overlays.
type Frame struct {
	ShipPosition math.Vec3
	ShipRotation math.Vec3

	ShowOrbits bool
	ShowSkybox bool
	ShowShip   bool

	// Debug turns on the ecliptic grid and the outline around
	// SelectedBody. SelectedBody is only read while Debug is set.
	Debug        bool
	SelectedBody int
}

// NewScene builds the cached geometry for system. budget caps the
// fragments a single triangle may emit, ship is the hull mesh, and a
// non-nil panorama switches the sky dome from the procedural starfield
// to the equirectangular texture.
func NewScene(fb *framebuffer.Framebuffer, budget int, system *SolarSystem, ship []render.Vertex, panorama *texture.Texture) *Scene {
	s := &Scene{
		fb:            fb,
		renderer:      render.New(fb, budget),
		planetSphere:  mesh.Sphere(1, sphereSegments),
		moonSphere:    mesh.Sphere(1, moonSegments),
		skyDome:       mesh.SkyDome(mesh.SkyDomeRadius, skyDomeSegments),
		ship:          ship,
		orbits:        make([][]render.Vertex, len(system.Bodies)),
		rings:         make([][]render.Vertex, len(system.Bodies)),
		skySurface:    shading.Surface{Kind: shading.SkyboxStars},
		grid:          debug.EclipticGrid(gridExtent, gridStep),
		gridShader:    debug.VertexColors(),
		outlineShader: debug.OutlineShader(selectionColor),
	}
	if panorama != nil {
		s.skySurface = shading.Surface{Kind: shading.SkyboxPanorama, Panorama: panorama}
	}

	for i := range system.Bodies {
		body := &system.Bodies[i]
		if body.OrbitRadius > 0 {
			s.orbits[i] = mesh.OrbitPath(body.OrbitRadius, orbitSegments)
		}
		if body.HasRings {
			// Ring extents are authored in world units; the shared model
			// matrix scales by body radius, so bake the inverse in here.
			s.rings[i] = mesh.Ring(body.RingInner/body.Radius, body.RingOuter/body.Radius, ringSegments)
		}
	}
	return s
}

// Stats returns the pipeline counters accumulated by the last Draw.
func (s *Scene) Stats() render.Stats {
	return s.renderer.Stats()
}

// Draw renders one frame: sky dome, orbit paths, bodies with rings and
// moons, the ship, and the debug overlays when enabled. Depth testing
// orders the output, so draw order only matters for the dome, which
// must cover the cleared background before anything nearer lands.
func (s *Scene) Draw(cam *camera.Camera, system *SolarSystem, frame Frame) {
	s.fb.Clear()
	s.renderer.ResetStats()

	width, height := s.fb.Size()
	u := render.Uniforms{
		Model:        math.Identity(),
		View:         cam.ViewMatrix(),
		Projection:   cam.ProjectionMatrix(),
		ScreenWidth:  float32(width),
		ScreenHeight: float32(height),
	}

	if frame.ShowSkybox {
		sky := u
		sky.View = u.View.NoTranslation()
		s.renderer.DrawTriangles(s.skyDome, &sky, s.skySurface)
	}

	if frame.Debug {
		s.renderer.DrawLines(s.grid, &u, s.gridShader)
	}

	if frame.ShowOrbits {
		for _, path := range s.orbits {
			if path == nil {
				continue
			}
			s.renderer.DrawPolyline(path, &u, shading.Surface{Kind: shading.Orbit})
		}
	}

	t := system.Time
	for i := range system.Bodies {
		body := &system.Bodies[i]
		pos := body.Position(t)

		bodyU := u
		bodyU.Model = modelMatrix(pos, body.Radius, body.Rotation(t))
		s.renderer.DrawTriangles(s.planetSphere, &bodyU, body.Surface)

		if ring := s.rings[i]; ring != nil {
			ringU := u
			ringU.Model = modelMatrix(pos, body.Radius, math.Vec3{Z: t * 0.1})
			s.renderer.DrawTriangles(ring, &ringU, shading.Surface{Kind: shading.Ring})
		}

		for m := range body.Moons {
			moon := &body.Moons[m]
			moonU := u
			moonU.Model = modelMatrix(moon.Position(pos, t), moon.Radius, math.Vec3{X: t * 0.4, Y: t * 0.4})
			s.renderer.DrawTriangles(s.moonSphere, &moonU, shading.Surface{Kind: shading.Moon})
		}
	}

	if frame.ShowShip && len(s.ship) > 0 {
		shipU := u
		shipU.Model = modelMatrix(frame.ShipPosition, shipScale, frame.ShipRotation)
		s.renderer.DrawTriangles(s.ship, &shipU, shading.Surface{Kind: shading.Ship})
	}

	if frame.Debug {
		if body := system.Body(frame.SelectedBody); body != nil {
			box := debug.BoxOutline(body.Position(t), body.Radius*selectionScale)
			s.renderer.DrawLines(box, &u, s.outlineShader)
		}
	}
}

// modelMatrix composes translation, uniform scale, and Z then Y then X
// Euler rotation into a single model transform.
func modelMatrix(position math.Vec3, scale float32, rotation math.Vec3) math.Mat4 {
	return math.Translate(position.X, position.Y, position.Z).
		Mul(math.Scale(scale, scale, scale)).
		Mul(math.RotateZ(rotation.Z)).
		Mul(math.RotateY(rotation.Y)).
		Mul(math.RotateX(rotation.X))
}
