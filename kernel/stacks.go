package kernel

import "fmt"

// Stack layout constants. The initial-frame geometry is fixed by the
// register-save discipline of the context switch: entry address (2 bytes),
// argument word (2 bytes), thread id (1 byte), trampoline address (2
// bytes), and 18 bytes of callee-saved register padding. Treat the offsets
// below as generated from that ABI, not as tunables.
const (
	// MinStackSize is the smallest usable per-slot stack. A created
	// thread needs InitialStackUsage bytes just to exist; anything doing
	// real work needs headroom beyond that.
	MinStackSize = 32

	// InitialStackUsage is the space consumed by the bootstrap frame.
	InitialStackUsage = 25

	// DefaultRAMSize matches the 2 KiB RAM of the reference target.
	DefaultRAMSize = 2048

	// DefaultCanary is the sentinel written to each stack's canary byte.
	DefaultCanary = 0xAA
)

// Initial-frame offsets, relative to the saved stack pointer (base minus
// InitialStackUsage). Stacks grow downward, so higher offsets sit nearer
// the base. Offsets 1..18 are the callee-saved register area; its contents
// are irrelevant, the restore path overwrites it as registers pop.
const (
	frameEntryLo    = 25
	frameEntryHi    = 24
	frameArgLo      = 23
	frameArgHi      = 22
	frameThreadID   = 21
	frameBootLo     = 20
	frameBootHi     = 19
	frameSaveRegTop = 18
)

// StackPlan is the computed memory map for a configuration: where each
// slot's stack begins, how large it is, and where its canary byte lives.
// Stacks are carved downward from the top of RAM, slot 0 first.
type StackPlan struct {
	RAMSize   uint16
	Canary    byte
	Base      [MaxSlots]uint16
	Size      [MaxSlots]uint16
	CanaryLoc [MaxSlots]uint16
	Total     uint32
}

// PlanStacks validates cfg and derives the per-slot memory map. It is the
// runtime analog of the layout the build would otherwise fix at link time,
// and is shared by New and the mkstacks tool.
func PlanStacks(cfg Config) (StackPlan, error) {
	var p StackPlan

	if cfg.MaxThreads < 1 || cfg.MaxThreads > MaxSlots {
		return p, fmt.Errorf("kernel: MaxThreads %d outside [1, %d]", cfg.MaxThreads, MaxSlots)
	}
	if len(cfg.StackSizes) != cfg.MaxThreads {
		return p, fmt.Errorf("kernel: %d stack sizes for %d threads", len(cfg.StackSizes), cfg.MaxThreads)
	}
	if cfg.TickHz != 0 && cfg.TickHz != tickHz {
		return p, fmt.Errorf("kernel: tick rate %d Hz, sleep accounting assumes %d", cfg.TickHz, tickHz)
	}

	p.RAMSize = cfg.RAMSize
	if p.RAMSize == 0 {
		p.RAMSize = DefaultRAMSize
	}
	p.Canary = cfg.Canary
	if p.Canary == 0 {
		p.Canary = DefaultCanary
	}

	for i := 0; i < cfg.MaxThreads; i++ {
		size := cfg.StackSizes[i]
		if size < MinStackSize {
			return p, fmt.Errorf("kernel: slot %d stack size %d below minimum %d", i, size, MinStackSize)
		}
		p.Size[i] = size
		p.Total += uint32(size)
	}
	if p.Total >= uint32(p.RAMSize) {
		return p, fmt.Errorf("kernel: stacks total %d bytes, RAM is %d", p.Total, p.RAMSize)
	}

	// Slot 0 starts at the top of RAM; each further slot starts just
	// below the previous slot's region.
	base := p.RAMSize - 1
	for i := 0; i < cfg.MaxThreads; i++ {
		p.Base[i] = base
		p.CanaryLoc[i] = base - p.Size[i] + 1
		base -= p.Size[i]
	}

	return p, nil
}

// writeFrame populates slot id's stack with the initial bootstrap frame so
// the context restore lands in the trampoline with the thread's parameters
// recoverable, exactly as if the thread had previously yielded. The saved
// stack pointer ends up just below the frame.
func (k *Kernel) writeFrame(id ThreadID, entry ThreadFunc, arg any) {
	k.entryTab[id] = entry
	k.argTab[id] = arg

	sp := k.stackBase[id] - InitialStackUsage
	k.stack[id] = sp

	ev := vecEntryBase + uint16(id)
	av := vecArgBase + uint16(id)

	k.ram[sp+frameEntryLo] = byte(ev)
	k.ram[sp+frameEntryHi] = byte(ev >> 8)
	k.ram[sp+frameArgLo] = byte(av)
	k.ram[sp+frameArgHi] = byte(av >> 8)
	k.ram[sp+frameThreadID] = byte(id)
	k.ram[sp+frameBootLo] = byte(vecTrampoline & 0xFF)
	k.ram[sp+frameBootHi] = byte(vecTrampoline >> 8)
	// Bytes 1..frameSaveRegTop are the register-save area; left as-is.
}
