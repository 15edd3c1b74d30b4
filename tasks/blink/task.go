// Package blink toggles the board LED on a fixed period. It is the
// smallest possible sleeping thread and a convenient heartbeat.
package blink

import (
	"kestrel/hal"
	"kestrel/kernel"
)

type Task struct {
	k      *kernel.Kernel
	led    hal.LED
	period uint16
}

// New returns a blinker with the given half-period in milliseconds.
func New(k *kernel.Kernel, led hal.LED, periodMS uint16) *Task {
	return &Task{k: k, led: led, period: periodMS}
}

// Run is the blinker's thread entry point.
func (t *Task) Run(id kernel.ThreadID, arg any) {
	for {
		t.led.High()
		t.k.Sleep(t.period)
		t.led.Low()
		t.k.Sleep(t.period)
	}
}
