// Package app is the orrery viewer: it wires the scene, the software
// rasterizer and the HUD to a hal.HAL and exposes a per-frame step.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"orrery/gfx/mesh"
	"orrery/gfx/scene"
	"orrery/gfx/softgl"
	"orrery/hal"
)

// ErrQuit is returned by the step function when the user asked to leave.
var ErrQuit = hal.ErrQuit

const (
	orbitRate = 2 // rad/s
	zoomRate  = 5 // units/s

	sphereStacks = 24
	sphereSlices = 32

	// statsEvery is how many frames pass between debug stat lines.
	statsEvery = 120
)

var (
	background = softgl.RGB(0, 0, 10)
	startEye   = softgl.V3(0, 10, 20)
	worldUp    = softgl.V3(0, 1, 0)
)

// Config selects what the viewer renders.
type Config struct {
	// MeshPath is an OBJ file drawn for every body. Empty uses a built-in
	// UV sphere.
	MeshPath string
	// RenderWidth and RenderHeight size the framebuffer. Zero means 700x525.
	RenderWidth  int
	RenderHeight int
	// HUD starts with the text overlay shown.
	HUD bool
	// Preview, when set, names a single shader to show on one body instead
	// of the full system.
	Preview string
	// HideOrbits starts with orbit paths off.
	HideOrbits bool
}

func (c Config) withDefaults() Config {
	if c.RenderWidth <= 0 {
		c.RenderWidth = 700
	}
	if c.RenderHeight <= 0 {
		c.RenderHeight = 525
	}
	return c
}

type viewer struct {
	h   hal.HAL
	log *slog.Logger

	fb       *softgl.Framebuffer
	camera   *scene.Camera
	warp     *scene.Warp
	renderer *scene.Renderer

	held   map[hal.KeyCode]bool
	hud    bool
	target string
	last   scene.FrameStats
	frames uint64
}

// New builds the viewer and returns its step function. Each call of step
// reads input, renders one frame and presents it.
func New(h hal.HAL, cfg Config) (step func() error, err error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	return v.step, nil
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	cfg = cfg.withDefaults()
	log := h.Logger()
	softgl.SetLogger(log)

	sphere := mesh.UVSphere(sphereStacks, sphereSlices)
	if cfg.MeshPath != "" {
		m, err := mesh.Load(cfg.MeshPath)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		sphere = m
	}

	sys := scene.DefaultSystem()
	target := "overview"
	if cfg.Preview != "" {
		sh, ok := scene.ShaderByName(cfg.Preview)
		if !ok {
			return nil, fmt.Errorf("app: unknown shader %q", cfg.Preview)
		}
		sys = scene.PreviewSystem(sh)
		target = cfg.Preview
	}

	fb := softgl.NewFramebuffer(cfg.RenderWidth, cfg.RenderHeight)
	fb.SetBackgroundColor(background)

	cam := scene.NewCamera(startEye, softgl.Vec3{}, worldUp)
	r := scene.NewRenderer(sys, cam, sphere)
	r.Orbits = !cfg.HideOrbits

	log.Info("app: scene ready",
		"vertices", len(sphere.Vertices),
		"triangles", sphere.TriangleCount(),
		"bodies", len(sys.Bodies()),
		"width", cfg.RenderWidth,
		"height", cfg.RenderHeight,
	)

	return &viewer{
		h:        h,
		log:      log,
		fb:       fb,
		camera:   cam,
		warp:     scene.NewWarp(scene.DefaultWarpDuration),
		renderer: r,
		held:     make(map[hal.KeyCode]bool),
		hud:      cfg.HUD,
		target:   target,
	}, nil
}

func (v *viewer) step() error {
	if err := v.handleInput(); err != nil {
		return err
	}
	dt := softgl.Scalar(v.h.Time().FrameDelta().Seconds())
	v.moveCamera(dt)

	if err := v.render(dt); err != nil {
		return err
	}
	if err := v.h.Display().Present(v.fb.Pixels(), v.fb.Width(), v.fb.Height()); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}

	v.frames++
	if v.frames%statsEvery == 0 {
		v.log.Debug("app: frame",
			"frame", v.frames,
			"triangles", v.last.Triangles,
			"drawn", v.last.Drawn,
			"pixels", v.last.Pixels,
			"stars", v.last.Stars,
		)
	}
	return nil
}

func (v *viewer) handleInput() error {
	in := v.h.Input()
	if in == nil || in.Keyboard() == nil {
		return nil
	}
	events := in.Keyboard().Events()
	for len(events) > 0 {
		ev := <-events
		v.held[ev.Code] = ev.Press
		if !ev.Press {
			continue
		}
		switch ev.Code {
		case hal.KeyEscape:
			return ErrQuit
		case hal.KeyH:
			v.hud = !v.hud
		case hal.KeyO:
			v.renderer.Orbits = !v.renderer.Orbits
		default:
			if d, ok := ev.Code.Digit(); ok {
				v.warpTo(d)
			}
		}
	}
	return nil
}

func (v *viewer) warpTo(slot int) {
	sys := v.renderer.System
	eye, center, ok := sys.WarpTarget(slot)
	if !ok {
		return
	}
	v.warp.Start(v.camera, eye, center)
	switch slot {
	case 0:
		v.target = "overview"
	case 1:
		v.target = sys.Sun.Name
	default:
		v.target = sys.Planets[slot-2].Name
	}
	v.log.Info("app: warp", "target", v.target, "eye", eye, "center", center)
}

// moveCamera runs an active warp, or applies held arrow keys when idle.
func (v *viewer) moveCamera(dt softgl.Scalar) {
	if v.warp.Active() {
		v.warp.Update(v.camera, dt)
		return
	}
	if v.held[hal.KeyLeft] {
		v.camera.Orbit(dt * orbitRate)
	}
	if v.held[hal.KeyRight] {
		v.camera.Orbit(-dt * orbitRate)
	}
	if v.held[hal.KeyUp] {
		v.camera.Zoom(-dt * zoomRate)
	}
	if v.held[hal.KeyDown] {
		v.camera.Zoom(dt * zoomRate)
	}
}
