// memory_rom.go - Boot ROM for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

// ROM is an immutable word array mapped at a fixed high address. The CPU
// fetches its first instructions from here after reset.
type ROM struct {
	start uint32
	words []uint32
}

func NewROM(startAddr uint32, words []uint32) *ROM {
	return &ROM{start: startAddr, words: words}
}

func (r *ROM) Contains(addr uint32) bool {
	return addr >= r.start && addr < r.start+uint32(len(r.words))*WORD_SIZE
}

func (r *ROM) ReadWord(addr uint32) (uint32, error) {
	if !r.Contains(addr) {
		return 0, &UnmappedError{Addr: addr}
	}
	return r.words[(addr-r.start)/WORD_SIZE], nil
}
