//go:build !headless

// clipboard_host.go - System clipboard host for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import (
	"sync"

	"golang.design/x/clipboard"
)

// SystemClipboard bridges the clipboard device to the host clipboard.
// Initialisation can fail on headless X sessions; the device then sees an
// always-empty clipboard, which the guest already copes with.
type SystemClipboard struct {
	once sync.Once
	ok   bool
}

func (s *SystemClipboard) init() {
	s.once.Do(func() {
		s.ok = clipboard.Init() == nil
	})
}

func (s *SystemClipboard) ReadText() []byte {
	s.init()
	if !s.ok {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

func (s *SystemClipboard) WriteText(text []byte) {
	s.init()
	if !s.ok {
		return
	}
	clipboard.Write(clipboard.FmtText, text)
}

func newClipboardHost() ClipboardHost {
	return &SystemClipboard{}
}
