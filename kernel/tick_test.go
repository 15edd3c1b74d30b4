package kernel

import "testing"

func TestMillisMonotonic(t *testing.T) {
	k := mustKernel(t, 1)

	last := k.Millis()
	for i := 0; i < 5; i++ {
		k.Tick()
		now := k.Millis()
		if now < last {
			t.Fatalf("Millis went backwards: %d after %d", now, last)
		}
		last = now
	}
	if last != 5 {
		t.Fatalf("Millis = %d after 5 ticks", last)
	}
}

func TestTickSleepAccounting(t *testing.T) {
	k := mustKernel(t, 4)

	// Two sleepers with different deadlines, installed the way Sleep
	// does it.
	k.irq.Lock()
	k.sleepCount[1] = 2
	k.sleepCount[2] = 1
	k.sleeping = 0x02 | 0x04
	k.disabled &^= 0x02 | 0x04
	k.irq.Unlock()

	k.Tick()

	if k.sleepCount[2] != 0 {
		t.Fatalf("slot 2 counter = %d, want 0", k.sleepCount[2])
	}
	if k.ThreadSleeping(Thread2) {
		t.Fatal("slot 2 sleep bit should clear when its counter hits zero")
	}
	if k.sleepCount[1] != 1 || !k.ThreadSleeping(Thread1) {
		t.Fatal("slot 1 should still be sleeping with 1 ms left")
	}

	// Sleeping set implies a positive counter for every slot.
	for i := 0; i < 4; i++ {
		if k.sleeping&bitmasks[i] != 0 && k.sleepCount[i] == 0 {
			t.Fatalf("slot %d sleeping with zero counter", i)
		}
	}

	k.Tick()
	if k.ThreadSleeping(Thread1) {
		t.Fatal("slot 1 sleep bit should clear on the second tick")
	}
	if k.sleepCount[1] != 0 {
		t.Fatalf("slot 1 counter = %d, want 0", k.sleepCount[1])
	}
}

func TestTickIgnoresDisabledAndSuspended(t *testing.T) {
	k := mustKernel(t, 2)
	k.CreateThread(Thread1, func(ThreadID, any) {}, true, nil)

	before := k.suspended
	disabledBefore := k.disabled
	for i := 0; i < 10; i++ {
		k.Tick()
	}
	if k.suspended != before || k.disabled != disabledBefore {
		t.Fatal("tick must never touch the disabled or suspended sets")
	}
}
