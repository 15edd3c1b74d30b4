//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"kestrel/app"
	"kestrel/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		step, err := app.New(h)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
