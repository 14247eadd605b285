// io_bus.go - I/O register bus for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
io_bus.go - Memory-mapped I/O dispatch

Register reads and writes are routed to devices by offset from IO_START.
Two reads couple into the CPU's progress counter: the millisecond timer,
and the input status register while no scancode is pending. Those are the
registers the guest busy-waits on; draining progress there is what hands
the host a frame between polls.

Reads of unpopulated registers return 0, writes to them are accepted and
dropped, matching the bus behaviour of the original board.
*/

package main

// IODevice is the register-level capability shared by every peripheral.
type IODevice interface {
	Read(offset uint32) (uint32, error)
	Write(offset, value uint32) error
}

// SPIDevice is the byte-at-a-time capability of SPI slot peripherals.
type SPIDevice interface {
	ReadData() (uint32, error)
	WriteData(value uint32) error
}

type IOBus struct {
	ioStart uint32

	Timer     *TimerDevice
	Switches  *SwitchesDevice
	Serial    *SerialDevice
	SPI       [4]SPIDevice
	Input     *InputDevice
	Clipboard *ClipboardDevice

	spiSelected uint32
}

func NewIOBus(ioStart uint32, timer *TimerDevice, switches *SwitchesDevice, input *InputDevice) *IOBus {
	return &IOBus{
		ioStart:  ioStart,
		Timer:    timer,
		Switches: switches,
		Input:    input,
	}
}

func progressDec(progress *uint32) {
	if *progress > 0 {
		*progress--
	}
}

// ReadWordWithProgress dispatches a register read, draining the progress
// counter on the wait-like registers.
func (io *IOBus) ReadWordWithProgress(addr uint32, progress *uint32) (uint32, error) {
	if addr < io.ioStart {
		return 0, &UnmappedError{Addr: addr}
	}

	switch addr - io.ioStart {
	case IO_TIMER_MS:
		progressDec(progress)
		return io.Timer.Read(IO_TIMER_MS)

	case IO_SWITCHES_LEDS:
		return io.Switches.Read(IO_SWITCHES_LEDS)

	case IO_SERIAL_DATA:
		if io.Serial == nil {
			return 0, nil
		}
		return io.Serial.Read(IO_SERIAL_DATA)

	case IO_SERIAL_STATUS:
		if io.Serial == nil {
			return 0, nil
		}
		return io.Serial.Read(IO_SERIAL_STATUS)

	case IO_SPI_DATA:
		dev := io.SPI[io.spiSelected&3]
		if dev == nil {
			return 255, nil
		}
		return dev.ReadData()

	case IO_SPI_CONTROL:
		// SPI transfers complete within one access; always ready.
		return 1, nil

	case IO_INPUT_STATUS:
		v, err := io.Input.Read(IO_INPUT_STATUS)
		if err != nil {
			return 0, err
		}
		if v&KBD_READY_BIT == 0 {
			progressDec(progress)
		}
		return v, nil

	case IO_KEYBOARD_DATA:
		return io.Input.Read(IO_KEYBOARD_DATA)

	case IO_CLIP_CONTROL:
		if io.Clipboard == nil {
			return 0, nil
		}
		return io.Clipboard.Read(IO_CLIP_CONTROL)

	case IO_CLIP_DATA:
		if io.Clipboard == nil {
			return 0, nil
		}
		return io.Clipboard.Read(IO_CLIP_DATA)

	default:
		return 0, nil
	}
}

func (io *IOBus) WriteWord(addr, value uint32) error {
	if addr < io.ioStart {
		return &UnmappedError{Addr: addr}
	}

	switch addr - io.ioStart {
	case IO_SWITCHES_LEDS:
		return io.Switches.Write(IO_SWITCHES_LEDS, value)

	case IO_SERIAL_DATA:
		if io.Serial == nil {
			return nil
		}
		return io.Serial.Write(IO_SERIAL_DATA, value)

	case IO_SPI_DATA:
		dev := io.SPI[io.spiSelected&3]
		if dev == nil {
			return nil
		}
		return dev.WriteData(value)

	case IO_SPI_CONTROL:
		io.spiSelected = value & 3
		return nil

	case IO_CLIP_CONTROL:
		if io.Clipboard == nil {
			return nil
		}
		return io.Clipboard.Write(IO_CLIP_CONTROL, value)

	case IO_CLIP_DATA:
		if io.Clipboard == nil {
			return nil
		}
		return io.Clipboard.Write(IO_CLIP_DATA, value)

	default:
		return nil
	}
}
