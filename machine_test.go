// machine_test.go - End-to-end machine tests

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "testing"

// A compact board for end-to-end runs: RAM 0x400, framebuffer at 0x200,
// 8 words by 8 rows (256x8 pixels).
func newTestMachine(prog []uint32) *Machine {
	return NewMachine(MachineConfig{
		MemSize:      0x400,
		DisplayStart: 0x200,
		FBWidthPx:    256,
		FBHeight:     8,
		BootROM:      prog,
	})
}

func TestMachineFramebufferWriteUpdatesDamage(t *testing.T) {
	prog := []uint32{
		encReg(OP_MOV, 1, 0, 0, true, false, false, 0x200),
		encReg(OP_MOV, 2, 0, 0, true, true, false, 0xABCD),
		encMem(2, 1, 0, true, false),
		encBr(7, false, true, false, 0, -1), // spin
	}
	m := newTestMachine(prog)
	m.ResetDamage()

	if err := m.Run(10); err != nil {
		t.Fatal(err)
	}

	d := m.ResetDamage()
	if d.Empty() {
		t.Fatalf("damage %+v still degenerate after a framebuffer store", d)
	}
}

func TestMachineRunSliceEndsWhenProgressDrains(t *testing.T) {
	// The idle loop in the fallback ROM polls the timer forever; the
	// progress budget must cut the slice short.
	m := NewMachine(MachineConfig{
		MemSize:      0x400,
		DisplayStart: 0x200,
		FBWidthPx:    256,
		FBHeight:     8,
	})

	if err := m.Run(1_000_000); err != nil {
		t.Fatal(err)
	}
	if m.CPU.Progress != 0 {
		t.Fatalf("progress = %d after an idle slice, expected 0", m.CPU.Progress)
	}
}

func TestMachineKeyboardStatusScenario(t *testing.T) {
	m := newTestMachine([]uint32{encBr(7, false, true, false, 0, -1)})

	if err := m.KeyboardInput([]byte{0x1C}); err != nil {
		t.Fatal(err)
	}

	progress := uint32(10)
	v, err := m.Bus.ReadWordForCPU(IO_START+IO_INPUT_STATUS, &progress)
	if err != nil {
		t.Fatal(err)
	}
	if v&KBD_READY_BIT == 0 {
		t.Fatal("ready bit clear after injection")
	}

	sc, err := m.Bus.ReadWordForCPU(IO_START+IO_KEYBOARD_DATA, &progress)
	if err != nil || sc != 0x1C {
		t.Fatalf("scancode = 0x%X (%v), expected 0x1C", sc, err)
	}

	v, _ = m.Bus.ReadWordForCPU(IO_START+IO_INPUT_STATUS, &progress)
	if v&KBD_READY_BIT != 0 {
		t.Fatal("ready bit still set after the dequeue")
	}
}

func TestMachineMouseInjection(t *testing.T) {
	m := newTestMachine([]uint32{encBr(7, false, true, false, 0, -1)})

	m.MouseMoved(11, 22)
	m.MouseButton(2, true)

	progress := uint32(10)
	v, _ := m.Bus.ReadWordForCPU(IO_START+IO_INPUT_STATUS, &progress)
	if v&0xFFF != 11 || v>>12&0xFFF != 22 || v>>25&1 != 1 {
		t.Fatalf("input register = 0x%08X", v)
	}
}

func TestMachineDiskAttachEject(t *testing.T) {
	m := newTestMachine([]uint32{encBr(7, false, true, false, 0, -1)})

	if err := m.AttachDisk(0, "nope"); err == nil {
		t.Fatal("slot 0 attach accepted")
	}
	if err := m.AttachDisk(1, "/does/not/exist"); err == nil {
		t.Fatal("attach of a missing image succeeded")
	}

	path := makeImage(t, 2, false)
	if err := m.AttachDisk(1, path); err != nil {
		t.Fatal(err)
	}
	if m.Bus.IO.SPI[1] == nil {
		t.Fatal("slot 1 empty after attach")
	}

	m.EjectDisk(1)
	if m.Bus.IO.SPI[1] != nil {
		t.Fatal("slot 1 still populated after eject")
	}
}

func TestMachinePeekAndView(t *testing.T) {
	prog := []uint32{
		encReg(OP_MOV, 5, 0, 0, true, false, false, 77),
		encBr(7, false, true, false, 0, -1),
	}
	m := newTestMachine(prog)

	if err := m.Run(3); err != nil {
		t.Fatal(err)
	}

	view := m.View()
	if view.R[5] != 77 {
		t.Fatalf("R5 = %d, expected 77", view.R[5])
	}
	if view.PC&^3 != view.PC {
		t.Fatalf("PC 0x%08X not word aligned", view.PC)
	}

	w, err := m.PeekWord(ROM_START)
	if err != nil || w != prog[0] {
		t.Fatalf("ROM peek = 0x%08X (%v)", w, err)
	}
}

func TestMachineStepSingleInstruction(t *testing.T) {
	prog := []uint32{
		encReg(OP_MOV, 1, 0, 0, true, false, false, 1),
		encReg(OP_MOV, 2, 0, 0, true, false, false, 2),
	}
	m := newTestMachine(prog)

	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.CPU.R[1] != 1 || m.CPU.R[2] != 0 {
		t.Fatalf("after one step R1=%d R2=%d", m.CPU.R[1], m.CPU.R[2])
	}
}
