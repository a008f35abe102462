package hal

import (
	"errors"
	"image/color"
	"testing"
)

func TestDisplayerSurfaceScales(t *testing.T) {
	// 2x2 frame: red, green / blue, white
	pix := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0xFFFFFF}
	dev := NewImageDisplayer(4, 4)
	if err := NewDisplayerSurface(dev).Present(pix, 2, 2); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img := dev.Image()
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{0xFF, 0, 0, 0xFF}},
		{1, 1, color.RGBA{0xFF, 0, 0, 0xFF}},
		{3, 0, color.RGBA{0, 0xFF, 0, 0xFF}},
		{0, 3, color.RGBA{0, 0, 0xFF, 0xFF}},
		{2, 2, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if dev.Displays() != 1 {
		t.Fatalf("Displays() = %d, want 1", dev.Displays())
	}
}

func TestDisplayerSurfaceShortFrame(t *testing.T) {
	dev := NewImageDisplayer(2, 2)
	if err := NewDisplayerSurface(dev).Present([]uint32{1}, 2, 2); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if got := dev.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("short frame drew %v", got)
	}
}

func TestImageDisplayerDoubleBuffer(t *testing.T) {
	dev := NewImageDisplayer(1, 1)
	dev.SetPixel(0, 0, color.RGBA{1, 2, 3, 4})
	if got := dev.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("pixel visible before Display: %v", got)
	}
	dev.Display()
	if got := dev.Image().RGBAAt(0, 0); got != (color.RGBA{1, 2, 3, 4}) {
		t.Fatalf("pixel after Display = %v", got)
	}
	if x, y := dev.Size(); x != 1 || y != 1 {
		t.Fatalf("Size() = %d, %d", x, y)
	}
}

type failingDev struct{ *ImageDisplayer }

func (failingDev) Display() error { return errors.New("bus error") }

func TestDisplayerSurfaceError(t *testing.T) {
	s := NewDisplayerSurface(failingDev{NewImageDisplayer(1, 1)})
	if err := s.Present([]uint32{0}, 1, 1); err == nil {
		t.Fatalf("Present() error = nil, want device error")
	}
}
