package kernel

import "testing"

func TestMaskOf(t *testing.T) {
	for id := ThreadID(0); id < MaxSlots; id++ {
		if got, want := MaskOf(id), uint8(1)<<id; got != want {
			t.Fatalf("MaskOf(%d) = %#02x, want %#02x", id, got, want)
		}
	}
}

func TestMaskOfOutOfRange(t *testing.T) {
	var msg string
	SetAssertHandler(func(m string) { msg = m })
	defer SetAssertHandler(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range id")
		}
		if msg == "" {
			t.Fatal("assert handler not invoked")
		}
	}()
	MaskOf(MaxSlots)
}
