package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
)

func main() {
	var (
		hcfg     hal.HeadlessConfig
		wcfg     hal.WindowConfig
		acfg     app.Config
		logLevel string
		version  bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate (frames per second).")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&acfg.MeshPath, "mesh", "", "OBJ mesh drawn for every body (default: built-in UV sphere).")
	flag.IntVar(&acfg.RenderWidth, "render-w", 700, "Framebuffer width.")
	flag.IntVar(&acfg.RenderHeight, "render-h", 525, "Framebuffer height.")
	flag.IntVar(&wcfg.Width, "window-w", 800, "Window width.")
	flag.IntVar(&wcfg.Height, "window-h", 600, "Window height.")
	flag.BoolVar(&acfg.HUD, "hud", true, "Show the text overlay.")
	flag.BoolVar(&acfg.HideOrbits, "no-orbits", false, "Start with orbit paths hidden.")
	flag.StringVar(&acfg.Preview, "preview", "", "Show one body with the named shader (sun, rocky, gas, earth, red, ice, moon).")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Printf("orrery %s (commit %s, built %s)\n", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		return
	}

	logger := hal.NewLogger(os.Stdout, hal.ParseLevel(logLevel))
	logger.Info("orrery starting", "version", buildinfo.Short(), "headless", hcfg.Enabled)

	newApp := func(h hal.HAL) (func() error, error) { return app.New(h, acfg) }

	if hcfg.Enabled {
		hcfg.Width, hcfg.Height = wcfg.Width, wcfg.Height
		hcfg.Logger = logger
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	wcfg.Title = "orrery (" + buildinfo.Short() + ")"
	wcfg.TPS = hcfg.Hz
	wcfg.Logger = logger
	if err := hal.RunWindow(newApp, wcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
