// Package hal is the only contact point between the kernel, its demo
// threads, and the outside world. The host implementation simulates the
// board in a window (or headless); the TinyGo implementation talks to the
// real pins.
package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLine(s string)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Ticker is the 1 ms periodic tick source the kernel's timer claims
// exclusively. Each received value is a tick sequence number; ticks that
// find the channel full are dropped rather than buffered without bound.
type Ticker interface {
	Ticks() <-chan uint64
}

// Display is the status panel surface. It is a drivers.Displayer so text
// renders through tinyfont on host and hardware alike.
type Display interface {
	drivers.Displayer
	ClearRGB(r, g, b uint8)
}

// HAL bundles the platform resources the kernel demo runs against.
type HAL interface {
	Logger() Logger
	LED() LED
	Ticker() Ticker
	Display() Display
}
