// machine.go - Machine assembly and host-facing surface for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
machine.go - The wired workstation

Machine owns the CPU and the bus tree and is the only surface the frontend
talks to: advance a slice, inject input, attach or eject disks, snapshot
the framebuffer, consume the damage rectangle, peek memory for the
debugger. Nothing here runs concurrently; the frontend calls in between
its own frames.
*/

package main

// MachineConfig carries the board parameters. Zero values select the
// standard 1MB / 1024x768 layout.
type MachineConfig struct {
	MemSize      uint32
	DisplayStart uint32
	FBWidthPx    int32
	FBHeight     int32
	BootROM      []uint32
	Clipboard    ClipboardHost
	SerialTX     func(byte)
}

type Machine struct {
	CPU *CPU
	Bus *SystemBus

	disks [4]*Disk
}

func NewMachine(cfg MachineConfig) *Machine {
	if cfg.MemSize == 0 {
		cfg.MemSize = DEFAULT_MEM_SIZE
	}
	if cfg.DisplayStart == 0 {
		cfg.DisplayStart = DEFAULT_DISPLAY_START
	}
	if cfg.FBWidthPx == 0 {
		cfg.FBWidthPx = DISPLAY_WIDTH_PX
	}
	if cfg.FBHeight == 0 {
		cfg.FBHeight = DISPLAY_HEIGHT_PX
	}
	if cfg.BootROM == nil {
		cfg.BootROM = DefaultBootROM()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &MemoryClipboard{}
	}

	fbWidthWords := cfg.FBWidthPx / PIXELS_PER_WORD

	ram := NewRAM(cfg.MemSize)
	rom := NewROM(ROM_START, cfg.BootROM)

	timer := &TimerDevice{}
	switches := &SwitchesDevice{}
	input := &InputDevice{}

	io := NewIOBus(IO_START, timer, switches, input)
	io.Clipboard = NewClipboardDevice(cfg.Clipboard)
	io.Serial = NewSerialDevice(cfg.SerialTX)

	bus := NewSystemBus(cfg.MemSize, cfg.DisplayStart, fbWidthWords, cfg.FBHeight, ram, rom, io)

	cpu := &CPU{}
	cpu.Reset()

	return &Machine{CPU: cpu, Bus: bus}
}

// Run advances the CPU by up to cycles instructions.
func (m *Machine) Run(cycles uint32) error {
	return m.CPU.Run(m.Bus, cycles)
}

// Step executes exactly one instruction.
func (m *Machine) Step() error {
	if m.CPU.Progress == 0 {
		m.CPU.Progress = PROGRESS_BUDGET
	}
	return m.CPU.Step(m.Bus)
}

// SetMilliseconds updates the timer the guest's idle loop polls.
func (m *Machine) SetMilliseconds(ms uint32) {
	m.Bus.IO.Timer.Tick = ms
}

func (m *Machine) MouseMoved(x, y int) {
	m.Bus.IO.Input.MouseMoved(x, y)
}

func (m *Machine) MouseButton(button uint32, down bool) {
	m.Bus.IO.Input.MouseButton(button, down)
}

func (m *Machine) KeyboardInput(bytes []byte) error {
	return m.Bus.IO.Input.KeyboardInput(bytes)
}

// AttachDisk mounts a disk image at SPI slot 1..3, replacing any image
// already mounted there.
func (m *Machine) AttachDisk(slot int, path string) error {
	if slot < 1 || slot > 3 {
		return errDevice("invalid SPI slot %d", slot)
	}
	disk, err := NewDisk(path)
	if err != nil {
		return err
	}
	if m.disks[slot] != nil {
		m.disks[slot].Close()
	}
	m.disks[slot] = disk
	m.Bus.IO.SPI[slot] = disk
	return nil
}

// EjectDisk unmounts the image at SPI slot 1..3.
func (m *Machine) EjectDisk(slot int) {
	if slot < 1 || slot > 3 {
		return
	}
	if m.disks[slot] != nil {
		m.disks[slot].Close()
		m.disks[slot] = nil
	}
	m.Bus.IO.SPI[slot] = nil
}

// FramebufferWords snapshots the packed 1-bpp framebuffer.
func (m *Machine) FramebufferWords() []uint32 {
	return m.Bus.FramebufferWords()
}

// ResetDamage returns and clears the damage rectangle.
func (m *Machine) ResetDamage() DamageRect {
	return m.Bus.ResetDamage()
}

// PeekWord reads a word without device side effects.
func (m *Machine) PeekWord(addr uint32) (uint32, error) {
	return m.Bus.PeekWord(addr)
}

// View snapshots the CPU state for the debug UI.
func (m *Machine) View() CPUView {
	return m.CPU.View()
}
