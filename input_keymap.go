//go:build !headless

// input_keymap.go - Host key to PS/2 scancode translation for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
input_keymap.go - PS/2 set-2 scancodes

The guest keyboard driver speaks PS/2 scancode set 2: a make code per key
press, 0xF0 plus the make code on release, and an 0xE0 prefix for the
extended keys (cursor block, right control/alt). Modifiers are ordinary
keys here; the guest applies its own shift mapping.
*/

package main

import "github.com/hajimehoshi/ebiten/v2"

type scancode struct {
	code     byte
	extended bool
}

var ps2Keymap = map[ebiten.Key]scancode{
	ebiten.KeyA: {code: 0x1C},
	ebiten.KeyB: {code: 0x32},
	ebiten.KeyC: {code: 0x21},
	ebiten.KeyD: {code: 0x23},
	ebiten.KeyE: {code: 0x24},
	ebiten.KeyF: {code: 0x2B},
	ebiten.KeyG: {code: 0x34},
	ebiten.KeyH: {code: 0x33},
	ebiten.KeyI: {code: 0x43},
	ebiten.KeyJ: {code: 0x3B},
	ebiten.KeyK: {code: 0x42},
	ebiten.KeyL: {code: 0x4B},
	ebiten.KeyM: {code: 0x3A},
	ebiten.KeyN: {code: 0x31},
	ebiten.KeyO: {code: 0x44},
	ebiten.KeyP: {code: 0x4D},
	ebiten.KeyQ: {code: 0x15},
	ebiten.KeyR: {code: 0x2D},
	ebiten.KeyS: {code: 0x1B},
	ebiten.KeyT: {code: 0x2C},
	ebiten.KeyU: {code: 0x3C},
	ebiten.KeyV: {code: 0x2A},
	ebiten.KeyW: {code: 0x1D},
	ebiten.KeyX: {code: 0x22},
	ebiten.KeyY: {code: 0x35},
	ebiten.KeyZ: {code: 0x1A},

	ebiten.KeyDigit0: {code: 0x45},
	ebiten.KeyDigit1: {code: 0x16},
	ebiten.KeyDigit2: {code: 0x1E},
	ebiten.KeyDigit3: {code: 0x26},
	ebiten.KeyDigit4: {code: 0x25},
	ebiten.KeyDigit5: {code: 0x2E},
	ebiten.KeyDigit6: {code: 0x36},
	ebiten.KeyDigit7: {code: 0x3D},
	ebiten.KeyDigit8: {code: 0x3E},
	ebiten.KeyDigit9: {code: 0x46},

	ebiten.KeyBackquote:    {code: 0x0E},
	ebiten.KeyMinus:        {code: 0x4E},
	ebiten.KeyEqual:        {code: 0x55},
	ebiten.KeyBracketLeft:  {code: 0x54},
	ebiten.KeyBracketRight: {code: 0x5B},
	ebiten.KeyBackslash:    {code: 0x5D},
	ebiten.KeySemicolon:    {code: 0x4C},
	ebiten.KeyQuote:        {code: 0x52},
	ebiten.KeyComma:        {code: 0x41},
	ebiten.KeyPeriod:       {code: 0x49},
	ebiten.KeySlash:        {code: 0x4A},

	ebiten.KeySpace:     {code: 0x29},
	ebiten.KeyEnter:     {code: 0x5A},
	ebiten.KeyBackspace: {code: 0x66},
	ebiten.KeyTab:       {code: 0x0D},
	ebiten.KeyEscape:    {code: 0x76},
	ebiten.KeyCapsLock:  {code: 0x58},

	ebiten.KeyShiftLeft:    {code: 0x12},
	ebiten.KeyShiftRight:   {code: 0x59},
	ebiten.KeyControlLeft:  {code: 0x14},
	ebiten.KeyControlRight: {code: 0x14, extended: true},
	ebiten.KeyAltLeft:      {code: 0x11},
	ebiten.KeyAltRight:     {code: 0x11, extended: true},

	ebiten.KeyArrowUp:    {code: 0x75, extended: true},
	ebiten.KeyArrowDown:  {code: 0x72, extended: true},
	ebiten.KeyArrowLeft:  {code: 0x6B, extended: true},
	ebiten.KeyArrowRight: {code: 0x74, extended: true},
	ebiten.KeyInsert:     {code: 0x70, extended: true},
	ebiten.KeyDelete:     {code: 0x71, extended: true},
	ebiten.KeyHome:       {code: 0x6C, extended: true},
	ebiten.KeyEnd:        {code: 0x69, extended: true},
	ebiten.KeyPageUp:     {code: 0x7D, extended: true},
	ebiten.KeyPageDown:   {code: 0x7A, extended: true},

	ebiten.KeyF1: {code: 0x05},
	ebiten.KeyF2: {code: 0x06},
	ebiten.KeyF3: {code: 0x04},
	ebiten.KeyF4: {code: 0x0C},
	ebiten.KeyF5: {code: 0x03},
	ebiten.KeyF6: {code: 0x0B},
	ebiten.KeyF7: {code: 0x83},
	ebiten.KeyF8: {code: 0x0A},
}

func (sc scancode) makeSeq() []byte {
	if sc.extended {
		return []byte{0xE0, sc.code}
	}
	return []byte{sc.code}
}

func (sc scancode) breakSeq() []byte {
	if sc.extended {
		return []byte{0xE0, 0xF0, sc.code}
	}
	return []byte{0xF0, sc.code}
}
