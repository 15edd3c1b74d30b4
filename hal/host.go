//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	t      *hostTicker
	fb     *hostFramebuffer
}

// New returns the host HAL: stdout logging, a logged virtual LED, a 1 ms
// tick source stepped by the window or headless loop, and a small
// framebuffer for the front panel.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		t:      newHostTicker(),
		fb:     newHostFramebuffer(192, 128),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Ticker() Ticker   { return h.t }
func (h *hostHAL) Display() Display { return h.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLine(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.logger.WriteLine("led: HIGH")
	}
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.logger.WriteLine("led: LOW")
	}
	l.on = false
}
