package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"orrery/gfx/present"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after that many steps. Zero runs until ctx ends.
	Ticks uint64
	// Width and Height size the virtual display. Zero means 800x600.
	Width, Height int
	// Snapshot, when set, is the path the last frame is written to as PNG.
	Snapshot string
	// Script feeds key events at given ticks, counted from 1.
	Script []ScriptedKey
	Logger *slog.Logger
}

// ScriptedKey is a key event delivered before the step of tick Tick.
type ScriptedKey struct {
	Tick  uint64
	Event KeyEvent
}

// HeadlessResult is what a headless run leaves behind.
type HeadlessResult struct {
	Ticks uint64
	// Frame is the last displayed frame, nil if nothing was presented.
	Frame *image.RGBA
}

// RunHeadless steps the app on a ticker without opening a window. Frame
// deltas are a fixed 1/Hz. A step returning ErrQuit ends the run without an
// error.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	_, err := RunHeadlessResult(ctx, newApp, cfg)
	return err
}

// RunHeadlessResult is RunHeadless that also returns the final frame.
func RunHeadlessResult(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) (HeadlessResult, error) {
	var res HeadlessResult
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return res, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	screen := NewImageDisplayer(cfg.Width, cfg.Height)
	kbd := newKeyQueue()
	h := newHostHAL(cfg.Logger, NewDisplayerSurface(screen), kbd, newFixedTime(d))

	step, err := newApp(h)
	if err != nil {
		return res, err
	}

	runErr := runTicks(ctx, h, kbd, step, d, cfg)
	res.Ticks = h.t.Frames()
	if screen.Displays() > 0 {
		res.Frame = screen.Image()
	}
	h.logger.Info("hal: headless run finished", "ticks", res.Ticks, "presented", screen.Displays())

	if cfg.Snapshot != "" && res.Frame != nil {
		if err := present.SavePNG(cfg.Snapshot, res.Frame); err != nil {
			return res, errors.Join(runErr, err)
		}
		h.logger.Info("hal: snapshot written", "path", cfg.Snapshot)
	}
	return res, runErr
}

func runTicks(ctx context.Context, h *hostHAL, kbd *keyQueue, step func() error, d time.Duration, cfg HeadlessConfig) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			for _, sk := range cfg.Script {
				if sk.Tick == tick {
					kbd.emit(sk.Event.Code, sk.Event.Press)
				}
			}
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
