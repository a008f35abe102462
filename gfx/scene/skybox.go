package scene

import "orrery/gfx/softgl"

// StarDepth is the depth stars are written at. Any geometry in front of the
// far plane covers them.
const StarDepth = 1000

type star struct {
	x, y int
	c    softgl.Color
}

// Skybox is a fixed star field for one framebuffer size. Star placement is a
// pure function of the pixel coordinates.
type Skybox struct {
	width, height int
	stars         []star
}

// NewSkybox computes the stars for a width x height target.
func NewSkybox(width, height int) *Skybox {
	s := &Skybox{width: width, height: height}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := starHash(x, y)
			if r >= 100 {
				continue
			}
			b := softgl.Scalar(r%3)/2*0.6 + 0.6
			s.stars = append(s.stars, star{x: x, y: y, c: softgl.ColorFromFloat(b, b, b)})
		}
	}
	return s
}

// starHash is a value in [0, 10000); about 1% of pixels land below 100.
// All arithmetic wraps.
func starHash(x, y int) uint64 {
	seed := uint64(x)*73856093 ^ uint64(y)*19349663
	return ((seed*1103515245 + 12345) / 65536) % 10000
}

// Len returns the number of stars.
func (s *Skybox) Len() int { return len(s.stars) }

// Fits reports whether the star field was built for fb's size.
func (s *Skybox) Fits(fb *softgl.Framebuffer) bool {
	return s.width == fb.Width() && s.height == fb.Height()
}

// Draw writes every star at StarDepth and returns how many landed.
func (s *Skybox) Draw(fb *softgl.Framebuffer) int {
	n := 0
	for _, st := range s.stars {
		if fb.Write(st.x, st.y, StarDepth, st.c) {
			n++
		}
	}
	return n
}
