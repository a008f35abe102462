package hal

import (
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// DisplayerSurface presents frames on any tinygo display driver. Frames are
// scaled to the device size by nearest neighbour.
type DisplayerSurface struct {
	dev drivers.Displayer
}

// NewDisplayerSurface wraps dev.
func NewDisplayerSurface(dev drivers.Displayer) *DisplayerSurface {
	return &DisplayerSurface{dev: dev}
}

func (s *DisplayerSurface) Present(pix []uint32, w, h int) error {
	dw, dh := s.dev.Size()
	if dw <= 0 || dh <= 0 || w <= 0 || h <= 0 || len(pix) < w*h {
		return s.dev.Display()
	}
	for y := 0; y < int(dh); y++ {
		row := pix[(y*h/int(dh))*w:]
		for x := 0; x < int(dw); x++ {
			p := row[x*w/int(dw)]
			s.dev.SetPixel(int16(x), int16(y), color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF})
		}
	}
	return s.dev.Display()
}

// ImageDisplayer is an in-memory drivers.Displayer. SetPixel draws into a back
// buffer and Display publishes it.
type ImageDisplayer struct {
	mu       sync.Mutex
	back     *image.RGBA
	front    *image.RGBA
	displays uint64
}

var _ drivers.Displayer = (*ImageDisplayer)(nil)

// NewImageDisplayer allocates a w x h displayer. Sizes are clamped to the
// int16 range the driver interface uses.
func NewImageDisplayer(w, h int) *ImageDisplayer {
	w = min(max(w, 0), 1<<15-1)
	h = min(max(h, 0), 1<<15-1)
	r := image.Rect(0, 0, w, h)
	return &ImageDisplayer{back: image.NewRGBA(r), front: image.NewRGBA(r)}
}

func (d *ImageDisplayer) Size() (x, y int16) {
	b := d.back.Rect
	return int16(b.Dx()), int16(b.Dy())
}

func (d *ImageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.mu.Lock()
	d.back.SetRGBA(int(x), int(y), c)
	d.mu.Unlock()
}

func (d *ImageDisplayer) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.front.Pix, d.back.Pix)
	d.displays++
	return nil
}

// Image returns a copy of the last displayed frame.
func (d *ImageDisplayer) Image() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := image.NewRGBA(d.front.Rect)
	copy(out.Pix, d.front.Pix)
	return out
}

// Displays returns how many times Display was called.
func (d *ImageDisplayer) Displays() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.displays
}
