package scene

import (
	"math"

	"orrery/gfx/softgl"
)

// Body is a sphere that spins about its Y axis and travels a circular orbit
// of OrbitRadius around the origin in the XZ plane.
type Body struct {
	Name string

	OrbitRadius   softgl.Scalar
	Scale         softgl.Scalar
	RotationSpeed softgl.Scalar // rad/s
	OrbitSpeed    softgl.Scalar // rad/s

	Rotation   softgl.Scalar
	OrbitAngle softgl.Scalar
	Position   softgl.Vec3

	Shader softgl.Shader

	// WarpOffset is added to Position to get the eye of a warp to this body.
	WarpOffset softgl.Vec3
}

// NewBody returns a body at angle zero of its orbit.
func NewBody(name string, orbitRadius, scale, rotationSpeed, orbitSpeed softgl.Scalar, shader softgl.Shader) *Body {
	return &Body{
		Name:          name,
		OrbitRadius:   orbitRadius,
		Scale:         scale,
		RotationSpeed: rotationSpeed,
		OrbitSpeed:    orbitSpeed,
		Position:      softgl.V3(orbitRadius, 0, 0),
		Shader:        shader,
	}
}

// Update advances spin and orbit by dt seconds.
func (b *Body) Update(dt softgl.Scalar) {
	b.Rotation += b.RotationSpeed * dt
	b.OrbitAngle += b.OrbitSpeed * dt

	s, c := math.Sincos(float64(b.OrbitAngle))
	b.Position.X = b.OrbitRadius * softgl.Scalar(c)
	b.Position.Z = b.OrbitRadius * softgl.Scalar(s)
}

// Model returns the body's object transform.
func (b *Body) Model() softgl.Mat4 {
	return softgl.Mat4Model(b.Position, b.Scale, softgl.V3(0, b.Rotation, 0))
}

// System is a sun and the planets around it.
type System struct {
	Sun     *Body
	Planets []*Body
}

var (
	overviewEye = softgl.V3(0, 15, 35)
	sunEye      = softgl.V3(0, 5, 8)
)

// DefaultSystem returns the sun and five planets.
func DefaultSystem() *System {
	planet := func(name string, r, scale, spin, orbit softgl.Scalar, sh softgl.Shader, off softgl.Vec3) *Body {
		b := NewBody(name, r, scale, spin, orbit, sh)
		b.WarpOffset = off
		return b
	}
	return &System{
		Sun: NewBody("sun", 0, 2, 0.2, 0, SunShader{}),
		Planets: []*Body{
			planet("mercury", 5, 0.4, 1.0, 0.8, RockyShader{}, softgl.V3(0, 2, 3)),
			planet("venus", 7, 0.6, 0.8, 0.6, EarthShader{}, softgl.V3(0, 2, 4)),
			planet("earth", 10, 0.7, 1.2, 0.5, EarthShader{}, softgl.V3(0, 2, 4)),
			planet("mars", 13, 0.5, 1.1, 0.4, RedShader{}, softgl.V3(0, 2, 3)),
			planet("jupiter", 18, 1.5, 0.5, 0.2, GasShader{}, softgl.V3(0, 3, 6)),
		},
	}
}

// Update advances every body by dt seconds.
func (s *System) Update(dt softgl.Scalar) {
	s.Sun.Update(dt)
	for _, p := range s.Planets {
		p.Update(dt)
	}
}

// Bodies returns the sun followed by the planets.
func (s *System) Bodies() []*Body {
	out := make([]*Body, 0, len(s.Planets)+1)
	out = append(out, s.Sun)
	return append(out, s.Planets...)
}

// WarpTarget returns the eye and center for a warp slot: 0 is the overview,
// 1 the sun and 2 onwards the planets in order. ok is false for slots with no
// body.
func (s *System) WarpTarget(slot int) (eye, center softgl.Vec3, ok bool) {
	switch {
	case slot == 0:
		return overviewEye, softgl.Vec3{}, true
	case slot == 1:
		return sunEye, softgl.Vec3{}, true
	case slot >= 2 && slot-2 < len(s.Planets):
		p := s.Planets[slot-2]
		return p.Position.Add(p.WarpOffset), p.Position, true
	}
	return softgl.Vec3{}, softgl.Vec3{}, false
}

// PreviewSystem places a single non-orbiting body with shader at the origin.
func PreviewSystem(shader softgl.Shader) *System {
	return &System{Sun: NewBody("preview", 0, 2, 0.4, 0, shader)}
}
