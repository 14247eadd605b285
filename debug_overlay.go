//go:build !headless

// debug_overlay.go - Monitor overlay for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
debug_overlay.go - Machine monitor

F12 toggles a translucent monitor over the framebuffer: program counter,
the sixteen registers, H, the condition flags and a disassembly window
following the PC. While the overlay is up, F9 pauses and resumes the
machine, F10 single-steps, and B toggles a breakpoint on the current PC.

Text goes through x/image's fixed-width basicfont onto a plain RGBA
image that is pushed to an ebiten texture each frame; at monitor refresh
rates that is cheap enough for a debug surface.
*/

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	overlayWidth  = 560
	overlayHeight = 460
	overlayMargin = 8
	overlayLineH  = 14
	disasmBefore  = 6 // Words shown before the PC
	disasmAfter   = 16
)

type DebugOverlay struct {
	visible bool
	canvas  *image.RGBA
	texture *ebiten.Image
}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		canvas: image.NewRGBA(image.Rect(0, 0, overlayWidth, overlayHeight)),
	}
}

// HandleInput processes the monitor keys. Run control only applies while
// the overlay is visible so the guest never loses keys to it.
func (ov *DebugOverlay) HandleInput(fe *Frontend) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		ov.visible = !ov.visible
	}
	if !ov.visible {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		fe.running = !fe.running
		if fe.running {
			fe.runErr = nil
			ebiten.SetWindowTitle("OberonStation")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) && !fe.running {
		if err := fe.machine.Step(); err != nil {
			fe.pause(err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		pc := fe.pcAligned()
		if _, ok := fe.breakpoints[pc]; ok {
			delete(fe.breakpoints, pc)
		} else {
			fe.breakpoints[pc] = struct{}{}
		}
	}
	// Step over: resume until the instruction after this one.
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && !fe.running {
		fe.runTo = fe.pcAligned() + 4
		fe.runToSet = true
		fe.running = true
	}
}

func flagChar(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}

func (ov *DebugOverlay) lines(fe *Frontend) []string {
	view := fe.machine.View()

	state := "running"
	if !fe.running {
		state = "paused"
	}
	if fe.runErr != nil {
		state = fmt.Sprintf("halted: %v", fe.runErr)
	}

	lines := []string{
		fmt.Sprintf("PC 0x%08X   H 0x%08X   flags %c%c%c%c   %s",
			view.PC, view.H,
			flagChar(view.N, 'N'), flagChar(view.Z, 'Z'),
			flagChar(view.C, 'C'), flagChar(view.V, 'V'), state),
		"",
	}

	for row := 0; row < 4; row++ {
		lines = append(lines, fmt.Sprintf("R%02d 0x%08X  R%02d 0x%08X  R%02d 0x%08X  R%02d 0x%08X",
			row, view.R[row], row+4, view.R[row+4],
			row+8, view.R[row+8], row+12, view.R[row+12]))
	}
	lines = append(lines, "")

	pc := view.PC &^ 3
	for addr := pc - disasmBefore*4; addr <= pc+disasmAfter*4; addr += 4 {
		word, err := fe.machine.PeekWord(addr)
		if err != nil {
			continue
		}
		marker := "  "
		if addr == pc {
			marker = "> "
		}
		if _, bp := fe.breakpoints[addr]; bp {
			marker = "* "
		}
		lines = append(lines, marker+FormatDisasmLine(addr, word))
	}

	lines = append(lines, "", "F9 run/pause  F10 step  O step over  B breakpoint  F12 close")
	return lines
}

func (ov *DebugOverlay) Draw(screen *ebiten.Image, fe *Frontend) {
	if !ov.visible {
		return
	}

	draw.Draw(ov.canvas, ov.canvas.Bounds(),
		&image.Uniform{C: color.RGBA{0x10, 0x10, 0x18, 0xE0}}, image.Point{}, draw.Src)

	drawer := font.Drawer{
		Dst:  ov.canvas,
		Src:  image.NewUniform(color.RGBA{0xFD, 0xF6, 0xE3, 0xFF}),
		Face: basicfont.Face7x13,
	}
	y := overlayMargin + basicfont.Face7x13.Ascent
	for _, line := range ov.lines(fe) {
		drawer.Dot = fixed.P(overlayMargin, y)
		drawer.DrawString(line)
		y += overlayLineH
		if y > overlayHeight-overlayMargin {
			break
		}
	}

	if ov.texture == nil {
		ov.texture = ebiten.NewImage(overlayWidth, overlayHeight)
	}
	ov.texture.WritePixels(ov.canvas.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(16, 16)
	screen.DrawImage(ov.texture, op)
}
