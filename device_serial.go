// device_serial.go - RS-232 device for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "sync"

// Serial status bits as the guest driver reads them.
const (
	SERIAL_RX_READY = 1 << 0 // Receive data available
	SERIAL_TX_READY = 1 << 1 // Transmitter can accept a byte
)

// SerialDevice implements the RS-232 data/status registers at offsets 8/12.
// Received bytes are pushed from the host side (the raw-stdin pump or a
// test); transmitted bytes go to the tx callback. The transmitter is always
// ready: the host sink never back-pressures.
type SerialDevice struct {
	mu sync.Mutex
	rx []byte
	tx func(byte)
}

func NewSerialDevice(tx func(byte)) *SerialDevice {
	return &SerialDevice{tx: tx}
}

// Push queues received bytes for the guest.
func (s *SerialDevice) Push(bytes []byte) {
	s.mu.Lock()
	s.rx = append(s.rx, bytes...)
	s.mu.Unlock()
}

func (s *SerialDevice) Read(offset uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch offset {
	case IO_SERIAL_DATA:
		if len(s.rx) == 0 {
			return 0, nil
		}
		b := s.rx[0]
		s.rx = s.rx[1:]
		return uint32(b), nil
	case IO_SERIAL_STATUS:
		status := uint32(SERIAL_TX_READY)
		if len(s.rx) > 0 {
			status |= SERIAL_RX_READY
		}
		return status, nil
	default:
		return 0, nil
	}
}

func (s *SerialDevice) Write(offset, value uint32) error {
	if offset == IO_SERIAL_DATA && s.tx != nil {
		s.tx(byte(value))
	}
	return nil
}
