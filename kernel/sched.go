package kernel

// runnable returns the next runnable slot under the round-robin rule:
// scan slot ids starting at (current+1) mod N for one full round and take
// the first whose bit is clear in the union of the disabled, suspended,
// and sleeping sets. The current slot is an ordinary candidate at the end
// of the round, which is what lets a self-replaced slot win its own CPU
// back. Returns false when every slot is blocked.
func (k *Kernel) runnable() (ThreadID, bool) {
	k.irq.Lock()
	blocked := k.disabled | k.suspended | k.sleeping
	cur := int(k.cur)
	k.irq.Unlock()

	for off := 1; off <= k.n; off++ {
		id := (cur + off) % k.n
		if blocked&bitmasks[id] == 0 {
			return ThreadID(id), true
		}
	}
	return 0, false
}

// schedule picks the next thread to run, idling until the tick interrupt
// unblocks one when the whole slot set is blocked. The idle wait runs with
// interrupts enabled; progress depends on the tick ISR clearing a sleep
// bit.
func (k *Kernel) schedule() ThreadID {
	for {
		if id, ok := k.runnable(); ok {
			return id
		}
		<-k.tickGate
	}
}

// Yield surrenders the CPU to the scheduler. It returns when the calling
// thread is next selected, or immediately when nothing else is runnable
// and the caller still is.
func (k *Kernel) Yield() {
	self := k.CurrentThread()
	k.checkCanary(self)
	next := k.schedule()
	if next == self {
		return
	}
	k.yieldTo(self, next)
}
