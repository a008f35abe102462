package scene

import (
	"math"

	"orrery/gfx/softgl"
)

// Projection defaults.
const (
	DefaultFOV  = math.Pi / 3
	DefaultNear = 0.1
	DefaultFar  = 100
)

// Renderer draws a System as seen by a Camera.
type Renderer struct {
	System *System
	Camera *Camera
	Sphere softgl.Mesh

	FOV, Near, Far softgl.Scalar
	// Orbits toggles the orbit paths.
	Orbits bool

	skybox *Skybox
	time   softgl.Scalar
}

// FrameStats summarizes one frame.
type FrameStats struct {
	softgl.DrawStats
	Stars         int
	OrbitSegments int
}

// NewRenderer returns a renderer with the default projection and orbit paths
// on. sphere is drawn for every body.
func NewRenderer(sys *System, cam *Camera, sphere softgl.Mesh) *Renderer {
	return &Renderer{
		System: sys,
		Camera: cam,
		Sphere: sphere,
		FOV:    DefaultFOV,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Orbits: true,
	}
}

// Time returns the accumulated animation time in seconds.
func (r *Renderer) Time() softgl.Scalar { return r.time }

// Uniforms returns the per-frame uniforms for fb with an identity model.
func (r *Renderer) Uniforms(fb *softgl.Framebuffer) softgl.Uniforms {
	w, h := softgl.Scalar(fb.Width()), softgl.Scalar(fb.Height())
	aspect := softgl.Scalar(1)
	if h > 0 {
		aspect = w / h
	}
	u := softgl.NewUniforms()
	u.Projection = softgl.Mat4Perspective(r.FOV, aspect, r.Near, r.Far)
	u.View = r.Camera.View()
	u.Viewport = softgl.Mat4Viewport(w, h)
	u.Time = r.time
	return u
}

// Frame advances the system by dt seconds and draws it: clear, stars, orbit
// paths, then every body.
func (r *Renderer) Frame(fb *softgl.Framebuffer, dt softgl.Scalar) FrameStats {
	var st FrameStats
	r.time += dt

	fb.Clear()
	if r.skybox == nil || !r.skybox.Fits(fb) {
		r.skybox = NewSkybox(fb.Width(), fb.Height())
	}
	st.Stars = r.skybox.Draw(fb)

	r.System.Update(dt)
	u := r.Uniforms(fb)

	if r.Orbits {
		for _, p := range r.System.Planets {
			st.OrbitSegments += DrawOrbit(fb, p.OrbitRadius, u, OrbitColor)
		}
	}

	for _, b := range r.System.Bodies() {
		u.Model = b.Model()
		st.Add(softgl.DrawMesh(r.Sphere, fb, u, b.Shader))
	}
	return st
}
