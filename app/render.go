package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"orrery/gfx/softgl"
)

var panicColor = color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}

// render draws one frame. A panic inside the pipeline is turned into an error
// and the frame is replaced with the panic text so the window shows what
// happened.
func (v *viewer) render(dt softgl.Scalar) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		v.log.Error("app: render panic", "panic", r, "stack", string(stack))

		v.fb.Clear()
		lines := []string{"RENDER PANIC:", fmt.Sprint(r)}
		for _, l := range strings.Split(string(stack), "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		drawLines(v.fb, lines, panicColor)
		_ = v.h.Display().Present(v.fb.Pixels(), v.fb.Width(), v.fb.Height())
		err = fmt.Errorf("app: render panic: %v", r)
	}()

	v.last = v.renderer.Frame(v.fb, dt)
	if v.hud {
		drawLines(v.fb, v.hudLines(), hudColor)
	}
	return nil
}
