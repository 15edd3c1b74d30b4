package kernel

// Tick is the 1 ms timer interrupt body. It advances the system counter,
// walks the sleeping slots decrementing their counters, and clears the
// sleep bit of any counter that reaches zero. It must be invoked from
// exactly one tick source and never from a thread.
//
// The walk runs over a local snapshot and exits as soon as no sleeper
// remains at or above the current index, so the ISR cost is bounded by the
// highest sleeping slot, not the slot count. Wake-ups become visible at
// the next scheduling point; the ISR itself never schedules and never
// touches the disabled or suspended sets.
func (k *Kernel) Tick() {
	k.irq.Lock()

	k.sysCount++

	local := k.sleeping
	for i, m := 0, uint8(1); i < k.n && local>>uint(i) != 0; i, m = i+1, m<<1 {
		if local&m == 0 {
			continue
		}
		k.sleepCount[i]--
		if k.sleepCount[i] == 0 {
			local &^= m
		}
	}
	k.sleeping = local

	k.irq.Unlock()

	// Nudge an idle scheduler; drop the token if one is already pending.
	select {
	case k.tickGate <- struct{}{}:
	default:
	}
}
