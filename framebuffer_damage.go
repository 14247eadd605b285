// framebuffer_damage.go - Framebuffer damage tracking for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

// DamageRect is the bounding box of framebuffer words mutated since the last
// frame, in word-column and row coordinates. The cleared state is the
// degenerate rectangle (widthWords, height, 0, 0): min/max updates from any
// write then establish a real bounding box without an empty special case.
type DamageRect struct {
	X1, Y1, X2, Y2 int32
}

func FullDamage(widthWords, height int32) DamageRect {
	return DamageRect{X1: 0, Y1: 0, X2: widthWords - 1, Y2: height - 1}
}

func ClearedDamage(widthWords, height int32) DamageRect {
	return DamageRect{X1: widthWords, Y1: height, X2: 0, Y2: 0}
}

// Empty reports whether the rectangle is still in its cleared state.
func (d DamageRect) Empty() bool {
	return d.X2 < d.X1 || d.Y2 < d.Y1
}

// UpdateWordIndex expands the rectangle to cover the framebuffer word at
// wIndex. Rows past the visible height are ignored.
func (d *DamageRect) UpdateWordIndex(widthWords, height, wIndex int32) {
	row := wIndex / widthWords
	col := wIndex % widthWords
	if row >= height {
		return
	}
	d.X1 = min(d.X1, col)
	d.X2 = max(d.X2, col)
	d.Y1 = min(d.Y1, row)
	d.Y2 = max(d.Y2, row)
}
