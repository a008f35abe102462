package app

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"orrery/gfx/softgl"
	"orrery/internal/buildinfo"
)

var (
	hudFont  tinyfont.Fonter = &tinyfont.TomThumb
	hudColor                 = color.RGBA{R: 0xE0, G: 0xE0, B: 0xF0, A: 0xFF}
)

const (
	hudLineHeight = 7
	hudMargin     = 4
)

// overlay draws tinyfont glyphs straight into the color buffer, on top of
// whatever geometry is there.
type overlay struct {
	fb *softgl.Framebuffer
}

var _ drivers.Displayer = overlay{}

func (d overlay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d overlay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.Overlay(int(x), int(y), softgl.RGB(c.R, c.G, c.B))
}

func (d overlay) Display() error { return nil }

// drawLines writes lines top to bottom starting at the margin, wrapping each
// to the framebuffer width. It stops at the bottom edge.
func drawLines(fb *softgl.Framebuffer, lines []string, c color.RGBA) {
	d := overlay{fb: fb}
	_, adv := tinyfont.LineWidth(hudFont, "0")
	cols := 1
	if adv > 0 {
		cols = max((fb.Width()-2*hudMargin)/int(adv), 1)
	}

	y := hudMargin + hudLineHeight
	for _, line := range lines {
		for {
			if y > fb.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, hudFont, hudMargin, int16(y), chunk, c)
			y += hudLineHeight
			if rest == "" {
				break
			}
			line = rest
		}
	}
}

func (v *viewer) hudLines() []string {
	st := v.last
	fps := 0.0
	if d := v.h.Time().FrameDelta().Seconds(); d > 0 {
		fps = 1 / d
	}
	cam := v.camera
	return []string{
		"ORRERY " + buildinfo.Short(),
		fmt.Sprintf("FPS %.0f  TRIS %d/%d  PX %d", fps, st.Drawn, st.Triangles, st.Pixels),
		fmt.Sprintf("TARGET %s  DIST %.1f", v.target, cam.Distance),
		"ARROWS ORBIT/ZOOM  0-6 WARP  O ORBITS  H HUD  ESC QUIT",
	}
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
