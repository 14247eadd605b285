// serial_host.go - Host stdio bridge for the RS-232 device

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
serial_host.go - Raw-mode stdin pump

With --serial the workstation's RS-232 port is wired to the launching
terminal: stdin goes into raw mode so every byte reaches the guest
untranslated (the PCLink protocol is binary), and transmitted bytes go
straight to stdout. Stop restores the terminal state.
*/

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type SerialHost struct {
	dev      *SerialDevice
	fd       int
	oldState *term.State
	stop     chan struct{}
	done     chan struct{}
}

func NewSerialHost(dev *SerialDevice) *SerialHost {
	return &SerialHost{
		dev:  dev,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start puts stdin into raw mode and begins pumping bytes to the device.
func (h *SerialHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "serial_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldState = oldState

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-h.stop:
				return
			default:
			}
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				h.dev.Push(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
}

// Stop restores the terminal.
func (h *SerialHost) Stop() {
	close(h.stop)
	if h.oldState != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
	}
}

// SerialTX writes a transmitted byte to stdout.
func SerialTX(b byte) {
	os.Stdout.Write([]byte{b})
}
