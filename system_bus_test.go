// system_bus_test.go - Address decode and damage tagging tests

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "testing"

// A small board: 1KB of RAM with the top half as an 8-words-by-8-rows
// framebuffer.
func newTestSystemBus(rom []uint32) *SystemBus {
	io := NewIOBus(IO_START, &TimerDevice{}, &SwitchesDevice{}, &InputDevice{})
	return NewSystemBus(0x400, 0x200, 8, 8, NewRAM(0x400), NewROM(ROM_START, rom), io)
}

func TestSystemBusDecodesRAMAndROM(t *testing.T) {
	bus := newTestSystemBus([]uint32{0xAB, 0xCD})

	if err := bus.WriteWord(0x100, 0x1234); err != nil {
		t.Fatal(err)
	}
	progress := uint32(10)
	v, err := bus.ReadWordForCPU(0x100, &progress)
	if err != nil || v != 0x1234 {
		t.Fatalf("RAM read = 0x%X (%v)", v, err)
	}

	v, err = bus.ReadWordForCPU(ROM_START+4, &progress)
	if err != nil || v != 0xCD {
		t.Fatalf("ROM read = 0x%X (%v)", v, err)
	}

	err = bus.WriteWord(ROM_START, 1)
	if _, ok := err.(*DeviceError); !ok {
		t.Fatalf("ROM write: expected DeviceError, got %v", err)
	}
}

func TestSystemBusMasksMisalignedAddresses(t *testing.T) {
	bus := newTestSystemBus(nil)

	if err := bus.WriteWord(0x103, 0xBEEF); err != nil {
		t.Fatal(err)
	}
	progress := uint32(10)
	v, err := bus.ReadWordForCPU(0x101, &progress)
	if err != nil || v != 0xBEEF {
		t.Fatalf("misaligned read = 0x%X (%v), expected the word at 0x100", v, err)
	}
}

func TestFramebufferWriteTagsDamage(t *testing.T) {
	bus := newTestSystemBus(nil)
	bus.ResetDamage()

	// Word 10 of the framebuffer: row 1, column 2.
	if err := bus.WriteWord(0x200+10*4, 0xFFFF_FFFF); err != nil {
		t.Fatal(err)
	}

	d := bus.ResetDamage()
	if d.Empty() {
		t.Fatal("damage still degenerate after a framebuffer write")
	}
	if d.X1 != 2 || d.X2 != 2 || d.Y1 != 1 || d.Y2 != 1 {
		t.Fatalf("damage %+v, expected the single cell (2,1)", d)
	}

	// Consuming the rectangle clears it.
	if !bus.ResetDamage().Empty() {
		t.Fatal("damage not cleared by ResetDamage")
	}
}

func TestNonFramebufferWriteLeavesDamageAlone(t *testing.T) {
	bus := newTestSystemBus(nil)
	bus.ResetDamage()

	if err := bus.WriteWord(0x100, 1); err != nil {
		t.Fatal(err)
	}
	if !bus.ResetDamage().Empty() {
		t.Fatal("low RAM write tagged damage")
	}
}

func TestPeekHasNoIOSideEffects(t *testing.T) {
	bus := newTestSystemBus([]uint32{0x42})

	if v, err := bus.PeekWord(ROM_START); err != nil || v != 0x42 {
		t.Fatalf("ROM peek = 0x%X (%v)", v, err)
	}

	_, err := bus.PeekWord(IO_START + IO_TIMER_MS)
	if _, ok := err.(*UnmappedError); !ok {
		t.Fatalf("I/O peek: expected UnmappedError, got %v", err)
	}
}

func TestFramebufferSnapshot(t *testing.T) {
	bus := newTestSystemBus(nil)

	if err := bus.WriteWord(0x200, 0x0000_0001); err != nil {
		t.Fatal(err)
	}
	words := bus.FramebufferWords()
	if len(words) != 8*8 {
		t.Fatalf("snapshot holds %d words, expected 64", len(words))
	}
	if words[0] != 1 {
		t.Fatalf("word 0 = 0x%X, expected 1", words[0])
	}
	if bus.FramebufferWidthPx() != 256 || bus.FramebufferHeightPx() != 8 {
		t.Fatalf("dimensions %dx%d", bus.FramebufferWidthPx(), bus.FramebufferHeightPx())
	}
}
