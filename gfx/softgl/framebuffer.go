package softgl

import "math"

// Framebuffer owns a packed color buffer and a depth buffer of the same size,
// both indexed row*width+col. Depth starts at +Inf and a write only lands when
// it is strictly nearer than what is already stored.
type Framebuffer struct {
	width  int
	height int
	color  []uint32
	depth  []float32

	background Color
	current    Color
}

var infDepth = float32(math.Inf(1))

// NewFramebuffer allocates a width x height framebuffer. Color starts at zero,
// depth at +Inf. Non-positive sizes produce an empty framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	fb := &Framebuffer{
		width:      width,
		height:     height,
		color:      make([]uint32, width*height),
		depth:      make([]float32, width*height),
		background: RGB(0, 0, 0),
		current:    RGB(0xFF, 0xFF, 0xFF),
	}
	for i := range fb.depth {
		fb.depth[i] = infDepth
	}
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Pixels returns the packed 0xRRGGBB color buffer. Callers must not modify it.
func (fb *Framebuffer) Pixels() []uint32 { return fb.color }

func (fb *Framebuffer) SetBackgroundColor(c Color) { fb.background = c }
func (fb *Framebuffer) SetCurrentColor(c Color)    { fb.current = c }
func (fb *Framebuffer) BackgroundColor() Color     { return fb.background }
func (fb *Framebuffer) CurrentColor() Color        { return fb.current }

// Clear resets every pixel to the background color and every depth to +Inf.
func (fb *Framebuffer) Clear() {
	if len(fb.color) == 0 {
		return
	}
	fb.color[0] = fb.background.Packed()
	fb.depth[0] = infDepth
	for i := 1; i < len(fb.color); i *= 2 {
		copy(fb.color[i:], fb.color[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// Write stores color and depth at (x, y) if the pixel is in range, depth is
// finite and depth is strictly less than the stored depth. Anything else is
// dropped. It reports whether the pixel was written.
func (fb *Framebuffer) Write(x, y int, depth float32, c Color) bool {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return false
	}
	if !isFinite(depth) {
		return false
	}
	idx := y*fb.width + x
	if depth >= fb.depth[idx] {
		return false
	}
	fb.color[idx] = c.Packed()
	fb.depth[idx] = depth
	return true
}

// Point is Write with the current color.
func (fb *Framebuffer) Point(x, y int, depth float32) bool {
	return fb.Write(x, y, depth, fb.current)
}

// Overlay sets the color at (x, y) without a depth test and without touching
// the depth buffer. It is meant for 2D overlays drawn after the geometry.
func (fb *Framebuffer) Overlay(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.color[y*fb.width+x] = c.Packed()
}

// ColorAt returns the color at (x, y), or black when out of range.
func (fb *Framebuffer) ColorAt(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return Color{}
	}
	return ColorFromPacked(fb.color[y*fb.width+x])
}

// DepthAt returns the stored depth at (x, y), or +Inf when out of range.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return infDepth
	}
	return fb.depth[y*fb.width+x]
}
