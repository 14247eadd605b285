//go:build headless

// video_backend_headless.go - Headless frontend for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "time"

// RunFrontend drives the machine at frame rate with no window. Useful for
// soak runs and CI; a bus error ends the run.
func RunFrontend(machine *Machine) error {
	start := time.Now()
	ticker := time.NewTicker(time.Second / FRAMES_PER_SECOND)
	defer ticker.Stop()

	for range ticker.C {
		machine.SetMilliseconds(uint32(time.Since(start).Milliseconds()))
		if err := machine.Run(CYCLES_PER_FRAME); err != nil {
			return err
		}
		machine.ResetDamage()
	}
	return nil
}

func newClipboardHost() ClipboardHost {
	return &MemoryClipboard{}
}
