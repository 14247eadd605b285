// boot_rom.go - Boot ROM loading for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// DefaultBootROM is the fallback bootloader used when no ROM image is
// supplied: it parks the machine in a tight idle loop polling the
// millisecond timer, so the frontend comes up and the debugger works even
// without firmware. Real firmware is loaded with --rom.
func DefaultBootROM() []uint32 {
	return []uint32{
		0x6000_FFFF, // MOV' R0, 0xFFFF          R0 = 0xFFFF0000
		0x4006_FFC0, // IOR  R0, R0, 0xFFC0      R0 = IO_START
		0x8100_0000, // LDW  R1, [R0]            poll the ms counter
		0xE7FF_FFFE, // B    -2                  back to the poll
	}
}

// LoadROMImage reads a little-endian word image for the boot ROM.
func LoadROMImage(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ROM image: %w", err)
	}
	if len(data) == 0 || len(data)%WORD_SIZE != 0 {
		return nil, fmt.Errorf("ROM image %q is not a whole number of words", path)
	}
	words := make([]uint32, len(data)/WORD_SIZE)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*WORD_SIZE:])
	}
	return words, nil
}
