// device_clipboard.go - Host clipboard bridge device for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
device_clipboard.go - Clipboard bridge device

Two registers drive a GET/PUT state machine:

    control read   reset, fetch host clipboard text, enter Get, return length
    control write  0xFFFFFFFF resets; any other value allocates a PUT buffer
    data read      next byte while in Get, LF translated to CR
    data write     next byte while in Put, CR translated to LF; the filled
                   buffer is committed to the host clipboard

The guest's text system uses CR line endings, the host uses LF, hence the
translation on both directions. Host clipboard failures are swallowed: the
guest treats a zero length as an empty clipboard and carries on.
*/

package main

import "unicode/utf8"

// ClipboardHost is the host side of the bridge. The windowed build backs it
// with the system clipboard; tests and headless builds use an in-memory one.
type ClipboardHost interface {
	ReadText() []byte
	WriteText(text []byte)
}

// MemoryClipboard is an in-process ClipboardHost.
type MemoryClipboard struct {
	Text []byte
}

func (m *MemoryClipboard) ReadText() []byte      { return m.Text }
func (m *MemoryClipboard) WriteText(text []byte) { m.Text = append([]byte(nil), text...) }

type clipboardState int

const (
	clipIdle clipboardState = iota
	clipGet
	clipPut
)

type ClipboardDevice struct {
	state clipboardState
	data  []byte
	ptr   int
	host  ClipboardHost
}

func NewClipboardDevice(host ClipboardHost) *ClipboardDevice {
	return &ClipboardDevice{host: host}
}

func (c *ClipboardDevice) reset() {
	c.state = clipIdle
	c.data = nil
	c.ptr = 0
}

// readControl fetches the host clipboard, prepares a GET and returns the
// byte length. The reference hardware documents a CRLF length adjustment
// here that it never applies; the raw length is reported the same way, and
// only the data path translates line endings.
func (c *ClipboardDevice) readControl() uint32 {
	c.reset()
	text := c.host.ReadText()
	if len(text) == 0 {
		return 0
	}
	c.data = append([]byte(nil), text...)
	c.state = clipGet
	return uint32(len(c.data))
}

func (c *ClipboardDevice) writeControl(length uint32) {
	c.reset()
	if length == 0xFFFF_FFFF {
		return
	}
	c.data = make([]byte, length)
	c.state = clipPut
}

func (c *ClipboardDevice) readData() uint32 {
	if c.state != clipGet || c.ptr >= len(c.data) {
		return 0
	}
	b := c.data[c.ptr]
	c.ptr++
	if b == '\n' {
		b = '\r'
	}
	if c.ptr >= len(c.data) {
		c.reset()
	}
	return uint32(b)
}

func (c *ClipboardDevice) writeData(value uint32) {
	if c.state != clipPut || c.ptr >= len(c.data) {
		return
	}
	b := byte(value)
	if b == '\r' {
		b = '\n'
	}
	c.data[c.ptr] = b
	c.ptr++
	if c.ptr >= len(c.data) {
		if utf8.Valid(c.data) {
			c.host.WriteText(c.data)
		}
		c.reset()
	}
}

func (c *ClipboardDevice) Read(offset uint32) (uint32, error) {
	switch offset {
	case IO_CLIP_CONTROL:
		return c.readControl(), nil
	case IO_CLIP_DATA:
		return c.readData(), nil
	default:
		return 0, nil
	}
}

func (c *ClipboardDevice) Write(offset, value uint32) error {
	switch offset {
	case IO_CLIP_CONTROL:
		c.writeControl(value)
	case IO_CLIP_DATA:
		c.writeData(value)
	}
	return nil
}
