package scene

import "orrery/gfx/softgl"

// DefaultWarpDuration is how long a warp takes, in seconds.
const DefaultWarpDuration = 1.5

// Warp moves a camera eye to a target along a smoothstep curve.
type Warp struct {
	Duration softgl.Scalar

	from     softgl.Vec3
	to       softgl.Vec3
	progress softgl.Scalar
	active   bool
}

// NewWarp returns an idle warp. A non-positive duration means
// DefaultWarpDuration.
func NewWarp(duration softgl.Scalar) *Warp {
	if !(duration > 0) {
		duration = DefaultWarpDuration
	}
	return &Warp{Duration: duration}
}

// Start begins a warp from the camera's current eye to eye, and points the
// camera at center right away.
func (w *Warp) Start(c *Camera, eye, center softgl.Vec3) {
	w.from = c.Eye
	w.to = eye
	w.progress = 0
	w.active = true
	c.Center = center
	c.Changed = true
}

// Active reports whether a warp is in progress.
func (w *Warp) Active() bool { return w.active }

// Progress returns the linear progress of the current or last warp in [0, 1].
func (w *Warp) Progress() softgl.Scalar { return w.progress }

// Update advances the warp by dt seconds and moves the camera. It returns
// whether the warp is still running afterwards.
func (w *Warp) Update(c *Camera, dt softgl.Scalar) bool {
	if !w.active {
		return false
	}
	w.progress += dt / w.Duration
	if w.progress >= 1 {
		w.progress = 1
		w.active = false
	}
	c.Eye = w.from.Lerp(w.to, smoothstep(w.progress))
	c.resync()
	c.Changed = true
	return w.active
}

func smoothstep(t softgl.Scalar) softgl.Scalar {
	return t * t * (3 - 2*t)
}
