// Package kernel implements a cooperative multithreading microkernel for
// small fixed-memory targets: up to eight statically configured thread
// slots sharing one RAM image, a round-robin scheduler, and a 1 ms tick
// driving sleep accounting.
//
// Threads relinquish the CPU only through Yield, Sleep, SleepLong,
// self-suspend, self-disable, or self-replacing CreateThread. Exactly one
// thread runs at any instant; the tick interrupt is the only concurrent
// writer, and it touches only the sleeping set, the sleep counters, and
// the system counter.
package kernel

import "sync"

// ThreadID identifies a thread slot.
type ThreadID uint8

// Slot ids for a fully populated kernel.
const (
	Thread0 ThreadID = iota
	Thread1
	Thread2
	Thread3
	Thread4
	Thread5
	Thread6
	Thread7
)

// MaxSlots is the hard upper bound on configurable thread slots.
const MaxSlots = 8

// ThreadFunc is the entry point type for threads. A thread receives its
// own slot id and the opaque argument passed at creation.
//
// Entry points should not return; a slot whose entry returns is disabled
// and must be re-created to run again.
type ThreadFunc func(id ThreadID, arg any)

// tickHz is the tick rate the sleep accounting assumes.
const tickHz = 1000

// Config fixes the kernel's slot count and memory layout. All values are
// validated once, at New.
type Config struct {
	// MaxThreads is the slot count, in [1, MaxSlots].
	MaxThreads int

	// StackSizes holds one stack size per slot, each at least
	// MinStackSize. Length must equal MaxThreads.
	StackSizes []uint16

	// RAMSize is the size of the RAM image stacks are carved from.
	// Zero selects DefaultRAMSize.
	RAMSize uint16

	// TickHz is the timer rate the tick source will run at. Zero selects
	// 1000; any other value than 1000 is a configuration error, since the
	// sleep counters account in milliseconds.
	TickHz int

	// UseStackCanary places a sentinel byte at the far end of each stack
	// so overflow can be detected. The mechanism is informational; the
	// kernel reports corruption through the overflow handler and takes no
	// automatic action.
	UseStackCanary bool

	// Canary is the sentinel byte value. Zero selects DefaultCanary.
	Canary byte
}

// DefaultConfig mirrors the stock build: all eight slots with 64-byte
// stacks, canaries on, in a 2 KiB RAM image.
func DefaultConfig() Config {
	return Config{
		MaxThreads:     MaxSlots,
		StackSizes:     []uint16{64, 64, 64, 64, 64, 64, 64, 64},
		UseStackCanary: true,
	}
}

// Kernel holds the whole kernel state: the three state bytes, the current
// thread, per-slot stacks and sleep counters, and the millisecond counter.
type Kernel struct {
	n int // configured slot count

	cur     ThreadID
	curMask uint8

	disabled  uint8
	suspended uint8
	sleeping  uint8

	// irq stands in for the interrupt mask: Tick holds it for the whole
	// ISR body, and thread-context code holds it while touching state the
	// ISR shares (the sleeping set, sleep counters, system counter). It
	// also covers the bitsets and current id so concurrent observers get
	// coherent snapshots.
	irq sync.Mutex

	sleepCount [MaxSlots]uint16
	sysCount   uint32

	// tickGate wakes the idle scheduler after each tick.
	tickGate chan struct{}

	ram       []byte
	stackBase [MaxSlots]uint16
	stackSize [MaxSlots]uint16
	canaryLoc [MaxSlots]uint16
	useCanary bool
	canary    byte

	// stack holds the saved stack pointer for each slot. Written at init
	// and by thread creation, never by the ISR; the host context switch
	// does not update it.
	stack [MaxSlots]uint16

	// entryTab and argTab back the 16-bit entry and argument words of the
	// bootstrap frame; the frame stores their vectors, the trampoline
	// resolves them. See switch.go.
	entryTab [MaxSlots]ThreadFunc
	argTab   [MaxSlots]any

	// slotGate holds the dispatch gate of each slot's live incarnation.
	slotGate [MaxSlots]chan struct{}

	overflow func(ThreadID)

	started bool
}

// New validates the configuration, lays out the stacks, and returns a
// kernel initialized the way the reset-time init leaves the hardware:
// slot 0 current and sole enabled thread, its stack pointer at its base,
// all counters zero, canaries written.
func New(cfg Config) (*Kernel, error) {
	plan, err := PlanStacks(cfg)
	if err != nil {
		return nil, err
	}

	k := &Kernel{
		n:         cfg.MaxThreads,
		tickGate:  make(chan struct{}, 1),
		ram:       make([]byte, plan.RAMSize),
		useCanary: cfg.UseStackCanary,
		canary:    plan.Canary,
	}

	for i := 0; i < k.n; i++ {
		k.stackBase[i] = plan.Base[i]
		k.stackSize[i] = plan.Size[i]
		k.canaryLoc[i] = plan.CanaryLoc[i]
		k.stack[i] = plan.Base[i]
		k.sleepCount[i] = 0
		if k.useCanary {
			k.ram[k.canaryLoc[i]] = k.canary
		}
	}

	// Slot 0 is the running thread; everything else starts disabled.
	k.cur = Thread0
	k.curMask = 0x01
	k.disabled = ^k.curMask
	k.suspended = 0
	k.sleeping = 0
	k.sysCount = 0

	return k, nil
}

// Start hands the kernel to the application: entry begins executing as
// thread 0 with the given argument. It is the moment control would flow
// into main on hardware; Start itself returns immediately and the caller
// must keep the tick source running (see Tick).
//
// Start may be called once.
func (k *Kernel) Start(entry ThreadFunc, arg any) {
	knAssert(entry != nil, "nil thread 0 entry")
	knAssert(!k.started, "kernel started twice")
	k.started = true

	k.entryTab[Thread0] = entry
	k.argTab[Thread0] = arg

	g := make(chan struct{}, 1)
	k.slotGate[Thread0] = g
	go func() {
		entry(Thread0, arg)
		// Thread 0 returned: retire the slot like any other thread.
		k.Disable(Thread0)
	}()
}

// CurrentThread returns the id of the currently running thread.
func (k *Kernel) CurrentThread() ThreadID {
	k.irq.Lock()
	id := k.cur
	k.irq.Unlock()
	return id
}
