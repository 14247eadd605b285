// system_bus.go - System bus for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
system_bus.go - Address decode between RAM, boot ROM and I/O

CPU accesses decode in priority order: RAM below memSize, then the ROM
window, then the I/O registers. Framebuffer writes additionally expand the
damage rectangle with the touched word's row and column; the frontend
consumes that rectangle once per frame via ResetDamage.

PeekWord is the debugger's side-effect-free view: same decode, but I/O
reads come back unmapped instead of perturbing device state.
*/

package main

// CPUBus is the access surface the CPU executes against. Reads are
// progress-aware so wait-like I/O registers can drain the run slice.
type CPUBus interface {
	ReadWordForCPU(addr uint32, progress *uint32) (uint32, error)
	WriteWord(addr, value uint32) error
}

type SystemBus struct {
	memSize      uint32
	displayStart uint32

	fbWidthWords int32
	fbHeight     int32
	damage       DamageRect

	RAM *RAM
	ROM *ROM
	IO  *IOBus
}

func NewSystemBus(memSize, displayStart uint32, fbWidthWords, fbHeight int32, ram *RAM, rom *ROM, io *IOBus) *SystemBus {
	return &SystemBus{
		memSize:      memSize,
		displayStart: displayStart,
		fbWidthWords: fbWidthWords,
		fbHeight:     fbHeight,
		damage:       FullDamage(fbWidthWords, fbHeight),
		RAM:          ram,
		ROM:          rom,
		IO:           io,
	}
}

// ResetDamage returns the accumulated rectangle and clears it.
func (bus *SystemBus) ResetDamage() DamageRect {
	d := bus.damage
	bus.damage = ClearedDamage(bus.fbWidthWords, bus.fbHeight)
	return d
}

func (bus *SystemBus) inRAM(addr uint32) bool {
	return addr < bus.memSize
}

func (bus *SystemBus) inFramebuffer(addr uint32) bool {
	return addr >= bus.displayStart && addr < bus.memSize
}

func (bus *SystemBus) ReadWordForCPU(addr uint32, progress *uint32) (uint32, error) {
	a := addr &^ 3
	if bus.inRAM(a) {
		return bus.RAM.ReadWord(a)
	}
	if bus.ROM.Contains(a) {
		return bus.ROM.ReadWord(a)
	}
	return bus.IO.ReadWordWithProgress(a, progress)
}

func (bus *SystemBus) WriteWord(addr, value uint32) error {
	a := addr &^ 3

	if bus.inRAM(a) {
		if err := bus.RAM.WriteWord(a, value); err != nil {
			return err
		}
		if bus.inFramebuffer(a) {
			wIndex := int32(a-bus.displayStart) / WORD_SIZE
			bus.damage.UpdateWordIndex(bus.fbWidthWords, bus.fbHeight, wIndex)
		}
		return nil
	}

	if bus.ROM.Contains(a) {
		return errDevice("write to ROM")
	}

	return bus.IO.WriteWord(a, value)
}

// PeekWord decodes like a CPU read but never touches device state.
func (bus *SystemBus) PeekWord(addr uint32) (uint32, error) {
	if bus.inRAM(addr) {
		return bus.RAM.ReadWord(addr)
	}
	if bus.ROM.Contains(addr) {
		return bus.ROM.ReadWord(addr)
	}
	return 0, &UnmappedError{Addr: addr}
}

// FramebufferWords snapshots the framebuffer as packed 1-bpp words.
func (bus *SystemBus) FramebufferWords() []uint32 {
	words := int(bus.fbWidthWords) * int(bus.fbHeight)
	out := make([]uint32, 0, words)
	for i := 0; i < words; i++ {
		w, err := bus.RAM.ReadWord(bus.displayStart + uint32(i)*WORD_SIZE)
		if err != nil {
			w = 0
		}
		out = append(out, w)
	}
	return out
}

func (bus *SystemBus) FramebufferWidthPx() int {
	return int(bus.fbWidthWords) * PIXELS_PER_WORD
}

func (bus *SystemBus) FramebufferHeightPx() int {
	return int(bus.fbHeight)
}
