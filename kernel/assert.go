package kernel

import "sync/atomic"

// assertHandler holds the installed assertion handler as func(string).
var assertHandler atomic.Value

// SetAssertHandler installs a process-wide handler for kernel assertion
// failures: contract violations like an out-of-range thread id reaching an
// internal conversion, or a corrupted bootstrap frame. With no handler
// installed a failure panics, which is the closest a hosted build gets to
// halting the MCU.
//
// The handler must not return control to the violated code path; if it
// returns, the kernel panics anyway.
func SetAssertHandler(fn func(msg string)) {
	assertHandler.Store(fn)
}

func knAssert(cond bool, msg string) {
	if cond {
		return
	}
	if v := assertHandler.Load(); v != nil {
		if fn, ok := v.(func(string)); ok && fn != nil {
			fn(msg)
		}
	}
	panic("kernel: assertion failed: " + msg)
}
