// Package hal is the boundary between the renderer and the host: a place to
// show finished frames, a key event stream, frame timing and a logger.
package hal

import (
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrNoWindow is returned by RunWindow in builds without the window
	// backend.
	ErrNoWindow = errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")

	// ErrQuit is returned by a step function to end the run cleanly.
	ErrQuit = errors.New("hal: quit")
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyH
	KeyO
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
)

// Digit returns the digit of a number key.
func (k KeyCode) Digit() (int, bool) {
	if k < Key0 || k > Key6 {
		return 0, false
	}
	return int(k - Key0), true
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display accepts finished frames as packed 0xRRGGBB pixels, row-major,
// w x h. The display may scale the frame to its own size. pix is not retained.
type Display interface {
	Present(pix []uint32, w, h int) error
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Time reports frame pacing.
type Time interface {
	// FrameDelta is the time between the last two frames.
	FrameDelta() time.Duration
	// Frames is the number of frames stepped so far.
	Frames() uint64
}

// HAL provides the only contact point between the app and the host.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
	Time() Time
}

// AppFactory builds the per-frame step function once the HAL exists.
type AppFactory func(HAL) (step func() error, err error)
