package kernel

import "testing"

func TestSleepDuration(t *testing.T) {
	k := mustKernel(t, 2)
	done := make(chan uint32, 1)

	k.Start(func(id ThreadID, arg any) {
		t0 := k.Millis()
		k.Sleep(100)
		done <- k.Millis() - t0
		k.SuspendSelf()
	}, nil)

	elapsed := pumpWhileSleeping(t, k, Thread0, done)
	if elapsed < 100 {
		t.Fatalf("slept %d ms, want at least 100", elapsed)
	}
	if elapsed > 101 {
		t.Fatalf("slept %d ms, want at most 101 with nothing else runnable", elapsed)
	}
}

func TestSleepIdlesWhenAllBlocked(t *testing.T) {
	// Slot 0 sleeping and slot 1 never created: the scheduler has to idle
	// on the tick interrupt and come back to slot 0.
	k := mustKernel(t, 2)
	done := make(chan uint32, 1)

	k.Start(func(id ThreadID, arg any) {
		t0 := k.Millis()
		k.Sleep(5)
		done <- k.Millis() - t0
		k.SuspendSelf()
	}, nil)

	if elapsed := pumpWhileSleeping(t, k, Thread0, done); elapsed != 5 {
		t.Fatalf("slept %d ms, want exactly 5", elapsed)
	}
}

func TestSleepZeroYields(t *testing.T) {
	k := mustKernel(t, 2)
	done := make(chan uint32, 1)

	// No ticks are pumped: Sleep(0) must come back on its own.
	k.Start(func(id ThreadID, arg any) {
		k.Sleep(0)
		done <- k.Millis()
		k.SuspendSelf()
	}, nil)

	if got := pumpWhileSleeping(t, k, Thread0, done); got != 0 {
		t.Fatalf("Millis = %d after Sleep(0) with no ticks", got)
	}
}

func TestSleepLongChunks(t *testing.T) {
	if testing.Short() {
		t.Skip("70k ticks")
	}
	k := mustKernel(t, 2)
	done := make(chan uint32, 1)

	k.Start(func(id ThreadID, arg any) {
		t0 := k.Millis()
		k.SleepLong(70000) // 65535 + 4465
		done <- k.Millis() - t0
		k.SuspendSelf()
	}, nil)

	// Ticks fire only while the sleep bit is set, so the aggregate is the
	// exact sum of the chunks.
	if elapsed := pumpWhileSleeping(t, k, Thread0, done); elapsed != 70000 {
		t.Fatalf("slept %d ms, want exactly 70000", elapsed)
	}
}

func TestSleepLongZero(t *testing.T) {
	k := mustKernel(t, 2)
	done := make(chan uint32, 1)

	k.Start(func(id ThreadID, arg any) {
		k.SleepLong(0)
		done <- k.Millis()
		k.SuspendSelf()
	}, nil)

	if got := pumpWhileSleeping(t, k, Thread0, done); got != 0 {
		t.Fatalf("Millis = %d after SleepLong(0) with no ticks", got)
	}
}
