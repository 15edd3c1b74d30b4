package kernel

// bitmasks maps a bit number to its mask. The conversion is hot enough in
// the scheduler and the predicates that a table beats shifting on the
// original hardware; the table also pins the id→bit correspondence in one
// place.
var bitmasks = [MaxSlots]uint8{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

// MaskOf converts a slot id to its membership bit. Valid ids are [0, 8).
func MaskOf(id ThreadID) uint8 {
	knAssert(id < MaxSlots, "thread id out of range")
	return bitmasks[id]
}

// valid reports whether id names a configured slot.
func (k *Kernel) valid(id ThreadID) bool {
	return int(id) < k.n
}
