package kernel

import "testing"

func TestCreateRejects(t *testing.T) {
	k := mustKernel(t, 2)

	if k.CreateThread(Thread2, func(ThreadID, any) {}, false, nil) {
		t.Fatal("create accepted an unconfigured slot")
	}
	if k.CreateThread(Thread1, nil, false, nil) {
		t.Fatal("create accepted a nil entry point")
	}
	if k.ThreadEnabled(Thread1) {
		t.Fatal("failed create must not enable the slot")
	}
}

func TestSuspendResumeIdempotent(t *testing.T) {
	k := mustKernel(t, 3)
	k.CreateThread(Thread1, func(ThreadID, any) {}, false, nil)

	k.Suspend(Thread1)
	k.Suspend(Thread1)
	if !k.ThreadSuspended(Thread1) {
		t.Fatal("suspend lost")
	}

	k.Resume(Thread1)
	if k.ThreadSuspended(Thread1) {
		t.Fatal("resume lost")
	}
	// Resuming a slot that is not suspended stays a no-op.
	k.Resume(Thread1)
	if k.ThreadSuspended(Thread1) {
		t.Fatal("resume flipped state")
	}
}

func TestDisableIdempotentAndDominant(t *testing.T) {
	k := mustKernel(t, 3)
	k.CreateThread(Thread1, func(ThreadID, any) {}, true, nil)

	k.Disable(Thread1)
	k.Disable(Thread1)
	if k.ThreadEnabled(Thread1) {
		t.Fatal("disable lost")
	}

	// Disabled dominates: the suspended bit may still be set underneath,
	// but the predicates must not report it.
	if k.ThreadSuspended(Thread1) {
		t.Fatal("disabled slot reported suspended")
	}
	if k.ThreadSleeping(Thread1) {
		t.Fatal("disabled slot reported sleeping")
	}

	// Resume does not revive a disabled slot.
	k.Resume(Thread1)
	if k.ThreadEnabled(Thread1) {
		t.Fatal("resume revived a disabled slot")
	}
}

func TestPredicatesInvalidID(t *testing.T) {
	k := mustKernel(t, 2)

	if k.ThreadEnabled(Thread7) || k.ThreadSuspended(Thread7) || k.ThreadSleeping(Thread7) {
		t.Fatal("predicates must be false for unconfigured slots")
	}
	// Mutators ignore invalid ids.
	k.Disable(Thread7)
	k.Suspend(Thread7)
	k.Resume(Thread7)
}
