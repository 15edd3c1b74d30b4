//go:build !tinygo

// Command mkstacks derives and checks the per-slot stack memory map for a
// kernel configuration, the same derivation the kernel performs at init.
// It prints one row per slot with the stack base, limit, and canary
// location, and fails when the configuration cannot fit.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kestrel/internal/buildinfo"
	"kestrel/kernel"
)

func main() {
	var (
		threads = flag.Int("threads", 8, "Slot count, 1..8.")
		stacks  = flag.String("stacks", "64", "Per-slot stack sizes, comma separated; a single value applies to every slot.")
		ram     = flag.Uint("ram", kernel.DefaultRAMSize, "RAM image size in bytes.")
		canary  = flag.Bool("canary", true, "Reserve a canary byte per stack.")
		version = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("mkstacks", buildinfo.Short())
		return
	}

	sizes, err := parseSizes(*stacks, *threads)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mkstacks:", err)
		os.Exit(1)
	}
	if *ram > 0xFFFF {
		fmt.Fprintln(os.Stderr, "mkstacks: RAM size exceeds the 16-bit address space")
		os.Exit(1)
	}

	cfg := kernel.Config{
		MaxThreads:     *threads,
		StackSizes:     sizes,
		RAMSize:        uint16(*ram),
		UseStackCanary: *canary,
	}

	plan, err := kernel.PlanStacks(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mkstacks:", err)
		os.Exit(1)
	}

	fmt.Printf("RAM %d bytes, %d slots, %d bytes of stack\n", plan.RAMSize, *threads, plan.Total)
	fmt.Printf("%-6s %-8s %-8s %-8s %s\n", "slot", "base", "limit", "size", "canary")
	for i := 0; i < *threads; i++ {
		canaryCol := "-"
		if *canary {
			canaryCol = fmt.Sprintf("0x%04X", plan.CanaryLoc[i])
		}
		limit := plan.Base[i] - plan.Size[i] + 1
		fmt.Printf("T%-5d 0x%04X   0x%04X   %-8d %s\n", i, plan.Base[i], limit, plan.Size[i], canaryCol)
	}
	free := uint32(plan.RAMSize) - plan.Total
	fmt.Printf("%d bytes free below the stacks\n", free)
}

func parseSizes(s string, threads int) ([]uint16, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 1 && threads > 1 {
		one := strings.TrimSpace(parts[0])
		parts = parts[:0]
		for i := 0; i < threads; i++ {
			parts = append(parts, one)
		}
	}
	if len(parts) != threads {
		return nil, fmt.Errorf("%d stack sizes for %d threads", len(parts), threads)
	}

	sizes := make([]uint16, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad stack size %q", p)
		}
		sizes = append(sizes, uint16(v))
	}
	return sizes, nil
}
