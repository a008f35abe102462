// Package present turns packed softgl color buffers into images for display
// and snapshots.
package present

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ToRGBA unpacks a w x h buffer of 0xRRGGBB values into dst, which is
// reallocated when nil or of a different size. The result is opaque.
func ToRGBA(dst *image.RGBA, src []uint32, w, h int) *image.RGBA {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	if dst == nil || dst.Rect.Dx() != w || dst.Rect.Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	n := min(len(src), w*h)
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			i := y*w + x
			o := x * 4
			if i >= n {
				row[o], row[o+1], row[o+2], row[o+3] = 0, 0, 0, 0xFF
				continue
			}
			p := src[i]
			row[o] = uint8(p >> 16)
			row[o+1] = uint8(p >> 8)
			row[o+2] = uint8(p)
			row[o+3] = 0xFF
		}
	}
	return dst
}

// Resample scales src to fill dst with bilinear filtering.
func Resample(dst, src *image.RGBA) {
	if dst.Rect.Empty() || src.Rect.Empty() {
		return
	}
	if dst.Rect.Size() == src.Rect.Size() {
		xdraw.Copy(dst, dst.Rect.Min, src, src.Rect, xdraw.Src, nil)
		return
	}
	xdraw.BiLinear.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("present: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("present: close %s: %w", path, cerr)
		}
	}()
	return WritePNG(f, img)
}
