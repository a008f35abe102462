package scene

import (
	"math"

	"orrery/gfx/softgl"
)

const (
	orbitSegments = 150
	// maxLineSteps bounds a single Bresenham walk.
	maxLineSteps = 2000
	// maxLineLen2 is the largest squared pixel length still drawn.
	maxLineLen2 = 1e6
	// maxScreenCoord rejects endpoints that projected absurdly far.
	maxScreenCoord = 10000
)

// OrbitColor is the color of orbit paths.
var OrbitColor = softgl.RGB(60, 60, 80)

// DrawOrbit traces a circle of radius around the origin in the XZ plane as
// orbitSegments line segments. Segments with an endpoint that does not
// project cleanly are skipped. It returns the number of segments drawn.
func DrawOrbit(fb *softgl.Framebuffer, radius softgl.Scalar, u softgl.Uniforms, c softgl.Color) int {
	pv := u.Projection.Mul(u.View)
	point := func(i int) softgl.Vec3 {
		a := float64(i) / orbitSegments * 2 * math.Pi
		s, co := math.Sincos(a)
		return softgl.V3(radius*softgl.Scalar(co), 0, radius*softgl.Scalar(s))
	}

	drawn := 0
	p0, ok0 := projectPoint(point(0), pv, u.Viewport)
	for i := 0; i < orbitSegments; i++ {
		p1, ok1 := projectPoint(point(i+1), pv, u.Viewport)
		if ok0 && ok1 {
			if DrawLine(fb, int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), p0.Z, c) {
				drawn++
			}
		}
		p0, ok0 = p1, ok1
	}
	return drawn
}

// projectPoint maps a world point to screen space. It fails when the clip w
// is near zero, the point is well off screen, depth is outside the NDC range,
// or the screen position is not finite or absurdly large.
func projectPoint(p softgl.Vec3, pv, viewport softgl.Mat4) (softgl.Vec3, bool) {
	clip := pv.MulVec4(p.Vec4(1))
	if abs(clip.W) < 0.001 {
		return softgl.Vec3{}, false
	}
	ndc := softgl.Vec4{X: clip.X / clip.W, Y: clip.Y / clip.W, Z: clip.Z / clip.W, W: 1}
	if abs(ndc.X) > 2 || abs(ndc.Y) > 2 {
		return softgl.Vec3{}, false
	}
	if ndc.Z < -1 || ndc.Z > 1 {
		return softgl.Vec3{}, false
	}
	s := viewport.MulVec4(ndc).Vec3()
	if !finite(s.X) || !finite(s.Y) || !finite(s.Z) {
		return softgl.Vec3{}, false
	}
	if abs(s.X) > maxScreenCoord || abs(s.Y) > maxScreenCoord {
		return softgl.Vec3{}, false
	}
	return s, true
}

// DrawLine walks a Bresenham line from (x0, y0) to (x1, y1) writing c at a
// constant depth through the depth test. It gives up after maxLineSteps and
// refuses lines longer than 1000 pixels or with a non-finite depth. It
// reports whether the line was attempted.
func DrawLine(fb *softgl.Framebuffer, x0, y0, x1, y1 int, depth softgl.Scalar, c softgl.Color) bool {
	if !finite(depth) {
		return false
	}
	dx, dy := x1-x0, y1-y0
	if float64(dx*dx+dy*dy) > maxLineLen2 {
		return false
	}

	dx, dy = absInt(dx), absInt(dy)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for steps := 0; ; steps++ {
		fb.Write(x, y, depth, c)
		if x == x1 && y == y1 {
			break
		}
		if steps >= maxLineSteps {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func finite(v softgl.Scalar) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
