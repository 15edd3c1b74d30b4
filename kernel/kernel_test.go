package kernel

import (
	"runtime"
	"testing"
	"time"
)

// testConfig returns a config with n equal-size slots in a small RAM
// image, canaries on.
func testConfig(n int) Config {
	sizes := make([]uint16, n)
	for i := range sizes {
		sizes[i] = 64
	}
	return Config{
		MaxThreads:     n,
		StackSizes:     sizes,
		RAMSize:        1024,
		UseStackCanary: true,
	}
}

func mustKernel(t *testing.T, n int) *Kernel {
	t.Helper()
	k, err := New(testConfig(n))
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// recvEvent reads one instrumentation event with a timeout so a wedged
// scheduler fails the test instead of hanging it.
func recvEvent(t *testing.T, ev <-chan string) string {
	t.Helper()
	select {
	case s := <-ev:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for thread event")
		return ""
	}
}

// pumpWhileSleeping drives the tick interrupt whenever slot id is
// sleeping, until a value arrives on done. Ticks fire only against a set
// sleep bit, so the final counter value equals the requested sleep
// duration exactly.
func pumpWhileSleeping(t *testing.T, k *Kernel, id ThreadID, done <-chan uint32) uint32 {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		select {
		case v := <-done:
			return v
		default:
			if time.Now().After(deadline) {
				t.Fatal("timed out pumping ticks")
			}
			if k.ThreadSleeping(id) {
				k.Tick()
			} else {
				runtime.Gosched()
			}
		}
	}
}
