package hal

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fillApp presents a solid frame each step and records the HAL it was given.
type fillApp struct {
	h      HAL
	steps  int
	keys   []KeyEvent
	deltas []time.Duration
	quitOn KeyCode
}

func (a *fillApp) factory(h HAL) (func() error, error) {
	a.h = h
	return a.step, nil
}

func (a *fillApp) step() error {
	a.steps++
	a.deltas = append(a.deltas, a.h.Time().FrameDelta())
	events := a.h.Input().Keyboard().Events()
	for len(events) > 0 {
		ev := <-events
		a.keys = append(a.keys, ev)
		if a.quitOn != KeyUnknown && ev.Code == a.quitOn && ev.Press {
			return ErrQuit
		}
	}
	pix := []uint32{0x102030, 0x102030, 0x102030, 0x102030}
	return a.h.Display().Present(pix, 2, 2)
}

func TestRunHeadlessTicks(t *testing.T) {
	app := &fillApp{}
	path := filepath.Join(t.TempDir(), "last.png")
	res, err := RunHeadlessResult(context.Background(), app.factory, HeadlessConfig{
		Hz: 1000, Ticks: 5, Width: 4, Height: 3, Snapshot: path,
	})
	if err != nil {
		t.Fatalf("RunHeadlessResult: %v", err)
	}
	if app.steps != 5 || res.Ticks != 5 {
		t.Fatalf("steps = %d, ticks = %d, want 5", app.steps, res.Ticks)
	}
	for _, d := range app.deltas {
		if d != time.Millisecond {
			t.Fatalf("FrameDelta() = %v, want 1ms", d)
		}
	}
	if res.Frame == nil || res.Frame.Bounds().Dx() != 4 || res.Frame.Bounds().Dy() != 3 {
		t.Fatalf("Frame = %v", res.Frame)
	}
	if c := res.Frame.RGBAAt(3, 2); c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Fatalf("frame pixel = %v", c)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Fatalf("snapshot width = %d, want 4", img.Bounds().Dx())
	}
}

func TestRunHeadlessScriptAndQuit(t *testing.T) {
	app := &fillApp{quitOn: KeyEscape}
	err := RunHeadless(context.Background(), app.factory, HeadlessConfig{
		Hz: 1000,
		Script: []ScriptedKey{
			{Tick: 2, Event: KeyEvent{Code: Key3, Press: true}},
			{Tick: 4, Event: KeyEvent{Code: KeyEscape, Press: true}},
		},
	})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v, want clean quit", err)
	}
	if app.steps != 4 {
		t.Fatalf("steps = %d, want 4", app.steps)
	}
	if len(app.keys) != 2 || app.keys[0].Code != Key3 {
		t.Fatalf("keys = %+v", app.keys)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, (&fillApp{}).factory, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless() error = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessFactoryError(t *testing.T) {
	boom := errors.New("no mesh")
	err := RunHeadless(context.Background(), func(HAL) (func() error, error) { return nil, boom }, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want %v", err, boom)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("render failed")
	err := RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want %v", err, boom)
	}
}
