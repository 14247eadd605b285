// device_switches.go - DIP switch and LED device for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

// SwitchesDevice shares I/O offset 4: reads return the DIP switch value,
// writes latch the LED bank. The frontend can show the latched LEDs.
type SwitchesDevice struct {
	Switches uint32
	LEDs     uint32
}

func (s *SwitchesDevice) Read(offset uint32) (uint32, error) {
	if offset == IO_SWITCHES_LEDS {
		return s.Switches, nil
	}
	return 0, nil
}

func (s *SwitchesDevice) Write(offset, value uint32) error {
	if offset == IO_SWITCHES_LEDS {
		s.LEDs = value
	}
	return nil
}
