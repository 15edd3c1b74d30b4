// Package spin runs a busy cooperative loop, yielding every iteration and
// logging a line once a second of uptime. It keeps the round-robin
// rotation occupied so the scheduler path is exercised continuously.
package spin

import (
	"fmt"

	"kestrel/hal"
	"kestrel/kernel"
)

type Task struct {
	k   *kernel.Kernel
	log hal.Logger
}

func New(k *kernel.Kernel, log hal.Logger) *Task {
	return &Task{k: k, log: log}
}

// Run is the spinner's thread entry point.
func (t *Task) Run(id kernel.ThreadID, arg any) {
	var loops uint64
	next := t.k.Millis() + 1000
	for {
		loops++
		if now := t.k.Millis(); now >= next {
			t.log.WriteLine(fmt.Sprintf("spin: t%d %d loops at %dms", id, loops, now))
			next = now + 1000
		}
		t.k.Yield()
	}
}
