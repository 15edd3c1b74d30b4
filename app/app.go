// Package app composes the demo system: a kernel with the stock slot
// configuration, the tick pump from the HAL timer, and the demo threads.
package app

import (
	"fmt"

	"kestrel/hal"
	"kestrel/kernel"
	"kestrel/monitor"
	"kestrel/tasks/blink"
	"kestrel/tasks/spin"
)

// New builds the kernel against the HAL and starts it. The returned step
// func is called once per host frame and fails the run on a detected
// stack overflow.
func New(h hal.HAL) (func() error, error) {
	k, err := kernel.New(kernel.DefaultConfig())
	if err != nil {
		return nil, err
	}

	log := h.Logger()
	k.SetStackOverflowHandler(func(id kernel.ThreadID) {
		log.WriteLine(fmt.Sprintf("kernel: stack overflow on t%d", id))
	})

	// The HAL timer is the kernel's tick interrupt source.
	go func() {
		for range h.Ticker().Ticks() {
			k.Tick()
		}
	}()

	bl := blink.New(k, h.LED(), 500)
	sp := spin.New(k, h.Logger())
	pan := monitor.New(k, h.Display())

	k.Start(func(id kernel.ThreadID, arg any) {
		k.CreateThread(kernel.Thread1, bl.Run, false, nil)
		k.CreateThread(kernel.Thread2, sp.Run, false, nil)
		k.CreateThread(kernel.Thread3, pan.Run, false, nil)
		for {
			k.Yield()
		}
	}, nil)

	return func() error {
		for id := kernel.ThreadID(0); id < kernel.MaxSlots; id++ {
			if !k.StackIntact(id) {
				return fmt.Errorf("stack overflow on t%d", id)
			}
		}
		return nil
	}, nil
}

// Run starts the system and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	if _, err := New(h); err != nil {
		h.Logger().WriteLine("app: " + err.Error())
		return
	}
	select {}
}
