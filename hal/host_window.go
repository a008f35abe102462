//go:build cgo

package hal

import (
	"errors"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"orrery/gfx/present"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Logger *slog.Logger
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "orrery"
	}
	return c
}

// RunWindow opens a desktop window, steps the app once per tick and shows the
// frames it presents. It blocks until the window closes or the step returns
// ErrQuit.
func RunWindow(newApp AppFactory, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	disp := newWindowDisplay(cfg.Width, cfg.Height)
	kbd := newKeyQueue()
	h := newHostHAL(cfg.Logger, disp, kbd, newHostTime(time.Second/time.Duration(cfg.TPS), nil))

	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, disp: disp, kbd: kbd, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	h.logger.Info("hal: window open", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	return ebiten.RunGame(g)
}

// windowDisplay holds the latest frame resampled to the window size.
type windowDisplay struct {
	mu    sync.Mutex
	src   *image.RGBA
	dst   *image.RGBA
	dirty bool
}

func newWindowDisplay(w, h int) *windowDisplay {
	return &windowDisplay{dst: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (d *windowDisplay) Present(pix []uint32, w, h int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.src = present.ToRGBA(d.src, pix, w, h)
	present.Resample(d.dst, d.src)
	d.dirty = true
	return nil
}

type hostGame struct {
	h    *hostHAL
	disp *windowDisplay
	kbd  *keyQueue
	img  *ebiten.Image
	step func() error
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	g.h.t.step()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.disp
	d.mu.Lock()
	defer d.mu.Unlock()

	b := d.dst.Bounds()
	if g.img == nil {
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if d.dirty {
		g.img.WritePixels(d.dst.Pix)
		d.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.disp.dst.Bounds()
	return b.Dx(), b.Dy()
}
