// main.go - Main entry point for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
)

func boilerPlate() {
	fmt.Println("OberonStation - a Project Oberon RISC workstation emulator")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/OberonStation")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	romPath := flag.String("rom", "", "boot ROM image (little-endian words)")
	disk1 := flag.String("disk1", "", "disk image for SPI slot 1")
	disk2 := flag.String("disk2", "", "disk image for SPI slot 2")
	serial := flag.Bool("serial", false, "wire the RS-232 port to stdio")
	flag.Parse()

	boilerPlate()

	cfg := MachineConfig{
		Clipboard: newClipboardHost(),
	}
	if *serial {
		cfg.SerialTX = SerialTX
	}
	if *romPath != "" {
		rom, err := LoadROMImage(*romPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading boot ROM: %v\n", err)
			os.Exit(1)
		}
		cfg.BootROM = rom
	}

	machine := NewMachine(cfg)

	if *disk1 != "" {
		if err := machine.AttachDisk(1, *disk1); err != nil {
			fmt.Fprintf(os.Stderr, "Error attaching disk 1: %v\n", err)
			os.Exit(1)
		}
	}
	if *disk2 != "" {
		if err := machine.AttachDisk(2, *disk2); err != nil {
			fmt.Fprintf(os.Stderr, "Error attaching disk 2: %v\n", err)
			os.Exit(1)
		}
	}

	if *serial {
		host := NewSerialHost(machine.Bus.IO.Serial)
		host.Start()
		defer host.Stop()
	}

	if err := RunFrontend(machine); err != nil {
		fmt.Fprintf(os.Stderr, "Emulator stopped: %v\n", err)
		os.Exit(1)
	}
}
