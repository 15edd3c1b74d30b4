package kernel

// CreateThread creates a new thread in slot id, replacing whatever the
// slot held. The slot's stack is populated with the initial bootstrap
// frame, its disabled and sleeping bits clear, its suspended bit set per
// the flag, and its sleep counter zeroed.
//
// Returns false when id is not a configured slot or entry is nil.
//
// If id is the currently running thread, CreateThread does not return:
// control transfers through the scheduler without saving the caller, and
// the slot's next run begins at entry.
func (k *Kernel) CreateThread(id ThreadID, entry ThreadFunc, suspended bool, arg any) bool {
	if !k.valid(id) || entry == nil {
		return false
	}

	k.writeFrame(id, entry, arg)

	mask := bitmasks[id]
	k.irq.Lock()
	k.disabled &^= mask
	k.sleeping &^= mask
	k.sleepCount[id] = 0
	if suspended {
		k.suspended |= mask
	} else {
		k.suspended &^= mask
	}
	self := k.cur
	k.irq.Unlock()

	k.respawn(id)

	if id == self {
		k.jumpTo(k.schedule())
	}
	return true
}

// ReplaceSelf replaces the calling thread with a new thread in the same
// slot. Does not return unless entry is nil.
func (k *Kernel) ReplaceSelf(entry ThreadFunc, suspended bool, arg any) bool {
	return k.CreateThread(k.CurrentThread(), entry, suspended, arg)
}

// Disable removes slot id from scheduling until it is re-created. The
// slot's stack contents become irrelevant. Invalid ids are ignored.
//
// If id is the currently running thread, Disable does not return.
func (k *Kernel) Disable(id ThreadID) {
	if !k.valid(id) {
		return
	}
	k.irq.Lock()
	k.disabled |= bitmasks[id]
	self := k.cur
	k.irq.Unlock()

	if id == self {
		k.jumpTo(k.schedule())
	}
}

// DisableSelf disables the calling thread. Does not return.
func (k *Kernel) DisableSelf() {
	k.irq.Lock()
	k.disabled |= k.curMask
	k.irq.Unlock()
	k.jumpTo(k.schedule())
}

// Suspend pauses slot id until Resume. Invalid ids are ignored. If id is
// the currently running thread, Suspend yields and returns after the
// thread has been resumed and selected again.
func (k *Kernel) Suspend(id ThreadID) {
	if !k.valid(id) {
		return
	}
	k.irq.Lock()
	k.suspended |= bitmasks[id]
	self := k.cur
	k.irq.Unlock()

	if id == self {
		k.Yield()
	}
}

// SuspendSelf suspends the calling thread.
func (k *Kernel) SuspendSelf() {
	k.Suspend(k.CurrentThread())
}

// Resume clears slot id's suspended bit. A disabled slot stays disabled;
// resuming a slot that is not suspended is a no-op. Invalid ids are
// ignored.
func (k *Kernel) Resume(id ThreadID) {
	if !k.valid(id) {
		return
	}
	k.irq.Lock()
	k.suspended &^= bitmasks[id]
	k.irq.Unlock()
}

// ThreadEnabled reports whether slot id holds a live thread. A live
// thread is not necessarily running; it may be suspended or sleeping.
func (k *Kernel) ThreadEnabled(id ThreadID) bool {
	if !k.valid(id) {
		return false
	}
	k.irq.Lock()
	ok := k.disabled&bitmasks[id] == 0
	k.irq.Unlock()
	return ok
}

// ThreadSuspended reports whether slot id is live but suspended.
func (k *Kernel) ThreadSuspended(id ThreadID) bool {
	if !k.valid(id) {
		return false
	}
	mask := bitmasks[id]
	k.irq.Lock()
	ok := k.disabled&mask == 0 && k.suspended&mask != 0
	k.irq.Unlock()
	return ok
}

// ThreadSleeping reports whether slot id is live and waiting out a sleep.
func (k *Kernel) ThreadSleeping(id ThreadID) bool {
	if !k.valid(id) {
		return false
	}
	mask := bitmasks[id]
	k.irq.Lock()
	ok := k.disabled&mask == 0 && k.sleeping&mask != 0
	k.irq.Unlock()
	return ok
}
