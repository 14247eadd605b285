//go:build !headless

// video_backend_ebiten.go - Ebiten frontend for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
video_backend_ebiten.go - Windowed frontend

One ebiten game drives the whole workstation: each Update advances the
millisecond timer and runs a CPU slice, each Draw repaints the 1-bpp
framebuffer when the damage rectangle says something changed. Host mouse
and keyboard feed the input device; F11 toggles fullscreen, F12 the
monitor overlay.

The machine pauses on a bus error. The error lands in the window title and
on stderr, and the overlay comes up so the fault can be inspected; reset
is the only recovery, as on the original hardware.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Framebuffer palette, paper-white on slate like the original monitor.
const (
	FB_COLOR_ON  = 0xFDF6E3
	FB_COLOR_OFF = 0x657B83
)

var mouseButtonMap = [3]struct {
	host  ebiten.MouseButton
	guest uint32
}{
	{ebiten.MouseButtonLeft, 1},
	{ebiten.MouseButtonMiddle, 2},
	{ebiten.MouseButtonRight, 3},
}

type Frontend struct {
	machine *Machine

	fbW, fbH int
	pixels   []byte
	window   *ebiten.Image
	repaint  bool

	running    bool
	runErr     error
	fullscreen bool
	start      time.Time

	breakpoints map[uint32]struct{}
	runTo       uint32
	runToSet    bool

	overlay *DebugOverlay
}

func NewFrontend(machine *Machine) *Frontend {
	fbW := machine.Bus.FramebufferWidthPx()
	fbH := machine.Bus.FramebufferHeightPx()
	return &Frontend{
		machine:     machine,
		fbW:         fbW,
		fbH:         fbH,
		pixels:      make([]byte, fbW*fbH*4),
		repaint:     true,
		running:     true,
		start:       time.Now(),
		breakpoints: make(map[uint32]struct{}),
		overlay:     NewDebugOverlay(),
	}
}

// RunFrontend opens the window and runs the machine until it is closed.
func RunFrontend(machine *Machine) error {
	fe := NewFrontend(machine)
	ebiten.SetWindowSize(fe.fbW, fe.fbH)
	ebiten.SetWindowTitle("OberonStation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(fe)
}

func (fe *Frontend) pcAligned() uint32 {
	return fe.machine.View().PC &^ 3
}

func (fe *Frontend) pause(err error) {
	fe.running = false
	fe.runToSet = false
	if err != nil {
		fe.runErr = err
		fmt.Fprintf(os.Stderr, "machine halted at PC 0x%08X: %v\n", fe.pcAligned(), err)
		ebiten.SetWindowTitle(fmt.Sprintf("OberonStation - halted: %v", err))
		fe.overlay.visible = true
	}
}

// tick runs this frame's slice, stopping between instructions on
// breakpoints and run-to targets.
func (fe *Frontend) tick() {
	if !fe.running {
		return
	}

	fe.machine.SetMilliseconds(uint32(time.Since(fe.start).Milliseconds()))

	if len(fe.breakpoints) == 0 && !fe.runToSet {
		if err := fe.machine.Run(CYCLES_PER_FRAME); err != nil {
			fe.pause(err)
		}
		return
	}

	fe.machine.CPU.Progress = PROGRESS_BUDGET
	for remaining := CYCLES_PER_FRAME; remaining > 0; remaining-- {
		if fe.machine.CPU.Progress == 0 {
			break
		}
		pc := fe.pcAligned()
		if fe.runToSet && fe.runTo == pc {
			fe.pause(nil)
			break
		}
		if _, hit := fe.breakpoints[pc]; hit {
			fe.pause(nil)
			break
		}
		if err := fe.machine.CPU.Step(fe.machine.Bus); err != nil {
			fe.pause(err)
			break
		}
	}
}

func (fe *Frontend) handleMouse() {
	x, y := ebiten.CursorPosition()
	if x >= 0 && x < fe.fbW && y >= 0 && y < fe.fbH {
		// Guest Y runs bottom-up.
		fe.machine.MouseMoved(x, fe.fbH-1-y)
	}
	for _, mb := range mouseButtonMap {
		if inpututil.IsMouseButtonJustPressed(mb.host) {
			fe.machine.MouseButton(mb.guest, true)
		}
		if inpututil.IsMouseButtonJustReleased(mb.host) {
			fe.machine.MouseButton(mb.guest, false)
		}
	}
}

func (fe *Frontend) handleKeyboard() {
	for key, sc := range ps2Keymap {
		if inpututil.IsKeyJustPressed(key) {
			fe.inject(sc.makeSeq())
		}
		if inpututil.IsKeyJustReleased(key) {
			fe.inject(sc.breakSeq())
		}
	}
}

func (fe *Frontend) inject(seq []byte) {
	// A full queue drops the burst; the guest will miss the key, not wedge.
	if err := fe.machine.KeyboardInput(seq); err != nil {
		fmt.Fprintf(os.Stderr, "input dropped: %v\n", err)
	}
}

func (fe *Frontend) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fe.fullscreen = !fe.fullscreen
		ebiten.SetFullscreen(fe.fullscreen)
	}

	fe.overlay.HandleInput(fe)
	if !fe.overlay.visible {
		fe.handleMouse()
		fe.handleKeyboard()
	}

	fe.tick()
	return nil
}

// refreshFramebuffer expands the packed 1-bpp words to RGBA, bottom row
// first, least-significant bit leftmost.
func (fe *Frontend) refreshFramebuffer() {
	words := fe.machine.FramebufferWords()
	widthWords := fe.fbW / PIXELS_PER_WORD

	for y := 0; y < fe.fbH; y++ {
		srcRow := (fe.fbH - 1) - y
		base := srcRow * widthWords

		for xw := 0; xw < widthWords; xw++ {
			bits := words[base+xw]
			out := (y*fe.fbW + xw*PIXELS_PER_WORD) * 4

			for b := 0; b < PIXELS_PER_WORD; b++ {
				color := uint32(FB_COLOR_OFF)
				if bits&1 != 0 {
					color = FB_COLOR_ON
				}
				bits >>= 1
				fe.pixels[out] = byte(color >> 16)
				fe.pixels[out+1] = byte(color >> 8)
				fe.pixels[out+2] = byte(color)
				fe.pixels[out+3] = 0xFF
				out += 4
			}
		}
	}
}

func (fe *Frontend) Draw(screen *ebiten.Image) {
	if fe.window == nil {
		fe.window = ebiten.NewImage(fe.fbW, fe.fbH)
	}

	if !fe.machine.ResetDamage().Empty() || fe.repaint {
		fe.refreshFramebuffer()
		fe.window.WritePixels(fe.pixels)
		fe.repaint = false
	}
	screen.DrawImage(fe.window, nil)

	fe.overlay.Draw(screen, fe)
}

func (fe *Frontend) Layout(_, _ int) (int, int) {
	return fe.fbW, fe.fbH
}
