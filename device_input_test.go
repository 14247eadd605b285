// device_input_test.go - Mouse and keyboard device tests

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

package main

import "testing"

func TestMousePacking(t *testing.T) {
	in := &InputDevice{}
	in.MouseMoved(100, 200)

	v, _ := in.Read(IO_INPUT_STATUS)
	if v&0xFFF != 100 {
		t.Fatalf("X field = %d, expected 100", v&0xFFF)
	}
	if v>>12&0xFFF != 200 {
		t.Fatalf("Y field = %d, expected 200", v>>12&0xFFF)
	}

	// Out-of-range coordinates leave the fields alone.
	in.MouseMoved(-1, 5000)
	v, _ = in.Read(IO_INPUT_STATUS)
	if v&0xFFF != 100 || v>>12&0xFFF != 200 {
		t.Fatalf("clamped move altered fields: 0x%08X", v)
	}
}

func TestMouseButtons(t *testing.T) {
	in := &InputDevice{}

	in.MouseButton(1, true)
	in.MouseButton(3, true)
	v, _ := in.Read(IO_INPUT_STATUS)
	if v>>26&1 != 1 || v>>24&1 != 1 || v>>25&1 != 0 {
		t.Fatalf("buttons = 0x%08X", v)
	}

	in.MouseButton(1, false)
	v, _ = in.Read(IO_INPUT_STATUS)
	if v>>26&1 != 0 {
		t.Fatal("button 1 still down")
	}

	// Out-of-range buttons are ignored.
	in.MouseButton(0, true)
	in.MouseButton(4, true)
	w, _ := in.Read(IO_INPUT_STATUS)
	if w != v {
		t.Fatalf("bogus button changed the register: 0x%08X", w)
	}
}

func TestKeyboardReadyAndDequeue(t *testing.T) {
	in := &InputDevice{}

	v, _ := in.Read(IO_INPUT_STATUS)
	if v&KBD_READY_BIT != 0 {
		t.Fatal("ready bit set on an empty queue")
	}

	if err := in.KeyboardInput([]byte{0x1C}); err != nil {
		t.Fatal(err)
	}
	v, _ = in.Read(IO_INPUT_STATUS)
	if v&KBD_READY_BIT == 0 {
		t.Fatal("ready bit clear with a queued scancode")
	}

	sc, _ := in.Read(IO_KEYBOARD_DATA)
	if sc != 0x1C {
		t.Fatalf("scancode = 0x%X, expected 0x1C", sc)
	}
	v, _ = in.Read(IO_INPUT_STATUS)
	if v&KBD_READY_BIT != 0 {
		t.Fatal("ready bit still set after the dequeue")
	}
	if sc, _ := in.Read(IO_KEYBOARD_DATA); sc != 0 {
		t.Fatalf("empty dequeue = 0x%X, expected 0", sc)
	}
}

func TestKeyboardQueueOrderAndOverflow(t *testing.T) {
	in := &InputDevice{}

	if err := in.KeyboardInput([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	for want := uint32(1); want <= 3; want++ {
		if sc, _ := in.Read(IO_KEYBOARD_DATA); sc != want {
			t.Fatalf("scancode = %d, expected %d", sc, want)
		}
	}

	full := make([]byte, KEY_QUEUE_SIZE)
	if err := in.KeyboardInput(full); err != nil {
		t.Fatal(err)
	}
	err := in.KeyboardInput([]byte{0xFF})
	if _, ok := err.(*DeviceError); !ok {
		t.Fatalf("expected DeviceError on overflow, got %v", err)
	}
}
