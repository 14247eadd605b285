// memory_ram.go - Main memory for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "encoding/binary"

// RAM is a contiguous byte-addressed little-endian word store. The top of the
// configured range doubles as the framebuffer; the system bus tags those
// writes for damage tracking, RAM itself does not care.
type RAM struct {
	bytes []byte
}

func NewRAM(sizeBytes uint32) *RAM {
	return &RAM{bytes: make([]byte, sizeBytes)}
}

func (r *RAM) Len() uint32 {
	return uint32(len(r.bytes))
}

func (r *RAM) ReadWord(addr uint32) (uint32, error) {
	a := int(addr)
	if a+WORD_SIZE > len(r.bytes) {
		return 0, &BoundsError{Addr: addr}
	}
	return binary.LittleEndian.Uint32(r.bytes[a : a+WORD_SIZE]), nil
}

func (r *RAM) WriteWord(addr uint32, value uint32) error {
	a := int(addr)
	if a+WORD_SIZE > len(r.bytes) {
		return &BoundsError{Addr: addr}
	}
	binary.LittleEndian.PutUint32(r.bytes[a:a+WORD_SIZE], value)
	return nil
}
