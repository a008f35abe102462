//go:build !cgo

package hal

import "log/slog"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Logger *slog.Logger
}

// RunWindow is unavailable without cgo.
func RunWindow(AppFactory, WindowConfig) error {
	return ErrNoWindow
}

func (k *keyQueue) poll() {}
