package scene

import (
	"math"

	"orrery/gfx/softgl"
)

const (
	minDistance = 5
	maxDistance = 100
)

// Camera orbits Center on the XZ plane at Distance. Eye.Y is left alone by
// Orbit and Zoom.
type Camera struct {
	Eye    softgl.Vec3
	Center softgl.Vec3
	Up     softgl.Vec3

	Angle    softgl.Scalar
	Distance softgl.Scalar

	// Changed is set by every mutation. Callers clear it.
	Changed bool
}

// NewCamera places a camera at eye looking at center. Distance is the full
// eye to center distance; Angle is taken from the eye's XZ offset.
func NewCamera(eye, center, up softgl.Vec3) *Camera {
	c := &Camera{Eye: eye, Center: center, Up: up, Changed: true}
	c.resync()
	return c
}

// Orbit rotates the eye around Center by delta radians.
func (c *Camera) Orbit(delta softgl.Scalar) {
	c.Angle += delta
	c.place()
}

// Zoom changes Distance by delta, clamped to [5, 100].
func (c *Camera) Zoom(delta softgl.Scalar) {
	c.Distance = min(max(c.Distance+delta, minDistance), maxDistance)
	c.place()
}

// MoveCenter translates both eye and center.
func (c *Camera) MoveCenter(dir softgl.Vec3) {
	c.Center = c.Center.Add(dir)
	c.Eye = c.Eye.Add(dir)
	c.Changed = true
}

// View returns the look-at matrix for the current eye.
func (c *Camera) View() softgl.Mat4 {
	return softgl.Mat4LookAt(c.Eye, c.Center, c.Up)
}

func (c *Camera) place() {
	s, co := math.Sincos(float64(c.Angle))
	c.Eye.X = c.Center.X + c.Distance*softgl.Scalar(co)
	c.Eye.Z = c.Center.Z + c.Distance*softgl.Scalar(s)
	c.Changed = true
}

// resync derives Angle and Distance from Eye and Center.
func (c *Camera) resync() {
	d := c.Eye.Sub(c.Center)
	c.Distance = d.Len()
	if d.X != 0 || d.Z != 0 {
		c.Angle = softgl.Scalar(math.Atan2(float64(d.Z), float64(d.X)))
	}
}
