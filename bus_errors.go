// bus_errors.go - Bus error types for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "fmt"

// BoundsError reports a RAM access past the configured memory size.
type BoundsError struct {
	Addr uint32
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("address out of bounds: 0x%08X", e.Addr)
}

// UnmappedError reports an address that decodes to no region.
type UnmappedError struct {
	Addr uint32
}

func (e *UnmappedError) Error() string {
	return fmt.Sprintf("unmapped address: 0x%08X", e.Addr)
}

// DeviceError reports a peripheral failure: disk I/O, a write to ROM,
// keyboard queue overflow.
type DeviceError struct {
	Msg string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error: %s", e.Msg)
}

func errDevice(format string, args ...any) error {
	return &DeviceError{Msg: fmt.Sprintf(format, args...)}
}
