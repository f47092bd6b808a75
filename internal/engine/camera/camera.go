// Package camera implements the free-flight viewpoint: spherical
// yaw/pitch orientation, eased warp transit between bodies, follow
// placement, and a sphere collision probe.
package camera

import "github.com/Faultbox/helios/pkg/math"

// collisionMargin keeps the viewpoint clear of a body's surface.
const collisionMargin = 10.0

// maxPitch stops the look direction just short of the poles.
const maxPitch = 1.57

// Camera is a free-look camera parameterized by yaw, pitch and distance.
// Target is recomputed from those three after every move or rotation, so
// translating never changes the look direction. FollowBody and warp
// completion set Position and Target directly and then resynchronize the
// spherical parameters from the resulting view vector.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	// Frustum parameters. Fov is in degrees.
	Fov    float32
	Near   float32
	Far    float32
	Aspect float32

	// Spherical look parameters.
	Yaw      float32
	Pitch    float32
	Distance float32

	// Warp transit state.
	Warping      bool
	warpStart    math.Vec3
	warpTarget   math.Vec3
	warpProgress float32
}

// New creates a camera above and behind the origin, looking at it.
func New(width, height float32) *Camera {
	position := math.Vec3{X: 0, Y: 200, Z: 500}
	target := math.Vec3{}
	direction := target.Sub(position).Normalize()

	return &Camera{
		Position: position,
		Target:   target,
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		Fov:      60,
		Near:     0.1,
		Far:      10000,
		Aspect:   width / height,
		Yaw:      math.Atan2(direction.Z, direction.X),
		Pitch:    math.Asin(direction.Y),
		Distance: target.Sub(position).Length(),
	}
}

// ViewMatrix returns the look-at view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the symmetric perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.Fov*math.Pi/180, c.Aspect, c.Near, c.Far)
}

// Update advances an active warp by dt seconds. Progress accrues at 2
// units per second; on completion the position snaps exactly to the warp
// target and the spherical parameters resynchronize.
func (c *Camera) Update(dt float32) {
	if !c.Warping {
		return
	}

	c.warpProgress = math.Min(c.warpProgress+dt*2.0, 1.0)
	if c.warpProgress >= 1 {
		c.Position = c.warpTarget
		c.Warping = false
		c.warpProgress = 0
		c.syncFromTarget()
		return
	}

	t := easeInOutCubic(c.warpProgress)
	c.Position = c.warpStart.Lerp(c.warpTarget, t)
}

// StartWarp begins an eased transit toward target. Calling it mid-warp
// restarts the transit from wherever the camera is now.
func (c *Camera) StartWarp(target math.Vec3) {
	c.warpStart = c.Position
	c.warpTarget = target
	c.warpProgress = 0
	c.Warping = true
}

// FollowBody places the camera at position+offset looking at position.
func (c *Camera) FollowBody(position, offset math.Vec3) {
	c.Target = position
	c.Position = position.Add(offset)
	c.syncFromTarget()
}

// MoveForward translates along the current look direction.
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.ForwardDirection().Scale(distance))
	c.updateTarget()
}

// MoveRight translates along forward crossed with up.
func (c *Camera) MoveRight(distance float32) {
	right := c.ForwardDirection().Cross(c.Up).Normalize()
	c.Position = c.Position.Add(right.Scale(distance))
	c.updateTarget()
}

// MoveUp translates along the world up axis.
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(c.Up.Scale(distance))
	c.updateTarget()
}

// RotateYaw turns the look direction horizontally. Accumulation is
// unbounded; full turns are allowed.
func (c *Camera) RotateYaw(angle float32) {
	c.Yaw += angle
	c.updateTarget()
}

// RotatePitch tilts the look direction vertically, clamped short of the
// poles.
func (c *Camera) RotatePitch(angle float32) {
	c.Pitch = math.Clamp(c.Pitch+angle, -maxPitch, maxPitch)
	c.updateTarget()
}

// ForwardDirection returns the unit look direction derived from yaw and
// pitch.
func (c *Camera) ForwardDirection() math.Vec3 {
	return math.Vec3{
		X: math.Cos(c.Yaw) * math.Cos(c.Pitch),
		Y: math.Sin(c.Pitch),
		Z: math.Sin(c.Yaw) * math.Cos(c.Pitch),
	}
}

// CheckCollision reports whether the camera sits inside the keep-out
// sphere around a body. The caller repositions; the camera never moves
// itself.
func (c *Camera) CheckCollision(center math.Vec3, radius float32) bool {
	return c.Position.Distance(center) < radius+collisionMargin
}

func (c *Camera) updateTarget() {
	c.Target = c.Position.Add(c.ForwardDirection().Scale(c.Distance))
}

// syncFromTarget rederives yaw, pitch and distance from the current
// position and target. A zero-length view vector leaves them unchanged.
func (c *Camera) syncFromTarget() {
	direction := c.Target.Sub(c.Position)
	distance := direction.Length()
	if distance <= 0 {
		return
	}

	dir := direction.Scale(1 / distance)
	c.Distance = distance
	c.Yaw = math.Atan2(dir.Z, dir.X)
	c.Pitch = math.Asin(dir.Y)
}

// easeInOutCubic is a symmetric two-piece cubic: slow start, slow stop.
func easeInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
