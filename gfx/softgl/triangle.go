package softgl

import "math"

// minBaryDenom is the smallest |denominator| for which barycentric weights are
// computed. Below it the triangle has no area.
const minBaryDenom = 1e-10

// Triangle fills the screen-space triangle v1, v2, v3 into fb and returns the
// number of pixels written.
//
// Every pixel whose center lies inside the triangle or on one of its edges is
// shaded. Edges are inclusive, so two triangles sharing an edge may both cover
// the pixels along it; the depth test keeps the first of two equal depths.
// Fragments with a non-finite or negative interpolated depth are skipped.
func Triangle[S Shader](v1, v2, v3 Vertex, fb *Framebuffer, shader S) int {
	if fb == nil || fb.width == 0 || fb.height == 0 {
		return 0
	}
	a, b, c := v1.Position, v2.Position, v3.Position
	if isNaN(a.X) || isNaN(a.Y) || isNaN(b.X) || isNaN(b.Y) || isNaN(c.X) || isNaN(c.Y) {
		return 0
	}

	minXf := max(min(a.X, b.X, c.X), 0)
	minYf := max(min(a.Y, b.Y, c.Y), 0)
	maxXf := min(max(a.X, b.X, c.X), Scalar(fb.width-1))
	maxYf := min(max(a.Y, b.Y, c.Y), Scalar(fb.height-1))
	if minXf > maxXf || minYf > maxYf {
		return 0
	}
	minX, minY := int(minXf), int(minYf)
	maxX, maxY := int(maxXf), int(maxYf)

	written := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w1, w2, w3 := barycentric(Scalar(x)+0.5, Scalar(y)+0.5, a, b, c)
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			depth := w1*a.Z + w2*b.Z + w3*c.Z
			if !isFinite(depth) || depth < 0 {
				continue
			}

			normal := v1.Normal.Mul(w1).Add(v2.Normal.Mul(w2)).Add(v3.Normal.Mul(w3)).Normalize()
			tex := v1.TexCoords.Mul(w1).Add(v2.TexCoords.Mul(w2)).Add(v3.TexCoords.Mul(w3))

			frag := Fragment{
				Position:  V3(Scalar(x), Scalar(y), depth),
				Normal:    normal,
				Depth:     depth,
				TexCoords: tex,
			}
			if fb.Write(x, y, depth, shader.Shade(frag)) {
				written++
			}
		}
	}
	return written
}

// barycentric returns the weights of the point (px, py) against the x/y
// projection of triangle a, b, c. A triangle without area yields (-1, -1, -1),
// which no pixel accepts.
func barycentric(px, py Scalar, a, b, c Vec3) (w1, w2, w3 Scalar) {
	v0x, v0y := b.X-a.X, b.Y-a.Y
	v1x, v1y := c.X-a.X, c.Y-a.Y
	v2x, v2y := px-a.X, py-a.Y

	d00 := v0x*v0x + v0y*v0y
	d01 := v0x*v1x + v0y*v1y
	d11 := v1x*v1x + v1y*v1y
	d20 := v2x*v0x + v2y*v0y
	d21 := v2x*v1x + v2y*v1y

	denom := d00*d11 - d01*d01
	if denom < minBaryDenom && denom > -minBaryDenom {
		return -1, -1, -1
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return 1 - v - w, v, w
}

func isNaN(v Scalar) bool { return math.IsNaN(float64(v)) }
