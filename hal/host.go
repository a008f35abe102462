package hal

import (
	"io"
	"log/slog"
)

type hostHAL struct {
	logger *slog.Logger
	disp   Display
	kbd    Keyboard
	t      *hostTime
}

func newHostHAL(logger *slog.Logger, disp Display, kbd Keyboard, t *hostTime) *hostHAL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &hostHAL{logger: logger, disp: disp, kbd: kbd, t: t}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return h.disp }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time           { return h.t }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// NewLogger returns a text logger writing to w at level and above.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug, info, warn and error to a slog level. Anything else
// is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
