// device_disk.go - SPI disk device for OberonStation

/*

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/OberonStation
License: GPLv3 or later
*/

/*
device_disk.go - SD-card style disk behind the SPI controller

The guest speaks a half-duplex byte protocol: 6-byte command frames, a data
token, 512-byte sectors as 128 little-endian words. Opcode 81 reads a
sector (two prelude words 0, 254 precede the payload), opcode 88 writes one
(the payload follows data token 254, trailed by two CRC bytes the device
ignores; status byte 5 acknowledges the transfer). Anything else is
acknowledged with a single zero byte.

Images that hold a bare filesystem start with magic word 0x9B1EA38D in
sector 0; those are mapped so guest sector numbers land from sector 1 of
the file onwards.
*/

package main

import (
	"encoding/binary"
	"io"
	"os"
)

const (
	SECTOR_SIZE       = 512        // Bytes per sector
	SECTOR_WORDS      = 128        // Words per sector
	DISK_CMD_READ     = 81         // Read-sector opcode
	DISK_CMD_WRITE    = 88         // Write-sector opcode
	DISK_DATA_TOKEN   = 254        // Marks the start of write payload
	DISK_WRITE_STATUS = 5          // Good-write status byte
	FS_ONLY_MAGIC     = 0x9B1EA38D // First word of a filesystem-only image
	FS_ONLY_OFFSET    = 0x80002    // Sector offset applied to such images
)

type diskState int

const (
	diskCommand diskState = iota
	diskRead
	diskWrite
	diskWriting
)

type Disk struct {
	state  diskState
	file   *os.File
	offset uint32

	rxBuf [SECTOR_WORDS]uint32
	rxIdx int

	txBuf [SECTOR_WORDS + 2]uint32
	txCnt int
	txIdx int // -1 means the next advance lands on txBuf[0]
}

// NewDisk opens a disk image read-write and probes sector 0 for the
// filesystem-only magic. An empty path yields a detached disk that answers
// every read with idle bytes.
func NewDisk(path string) (*Disk, error) {
	d := &Disk{state: diskCommand}
	if path == "" {
		return d, nil
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errDevice("can't open file %q: %v", path, err)
	}

	var first [SECTOR_WORDS]uint32
	if err := readSector(f, &first); err != nil {
		f.Close()
		return nil, err
	}
	if first[0] == FS_ONLY_MAGIC {
		d.offset = FS_ONLY_OFFSET
	}

	d.file = f
	return d, nil
}

// Close releases the backing image.
func (d *Disk) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

func (d *Disk) runCommand() error {
	cmd := d.rxBuf[0]
	arg := d.rxBuf[1]<<24 | d.rxBuf[2]<<16 | d.rxBuf[3]<<8 | d.rxBuf[4]

	switch cmd {
	case DISK_CMD_READ:
		d.state = diskRead
		d.txBuf[0] = 0
		d.txBuf[1] = DISK_DATA_TOKEN

		sector := arg - d.offset
		if err := seekSector(d.file, sector); err != nil {
			return err
		}
		var payload [SECTOR_WORDS]uint32
		if err := readSector(d.file, &payload); err != nil {
			return err
		}
		copy(d.txBuf[2:], payload[:])
		d.txCnt = 2 + SECTOR_WORDS

	case DISK_CMD_WRITE:
		d.state = diskWrite
		if err := seekSector(d.file, arg-d.offset); err != nil {
			return err
		}
		d.txBuf[0] = 0
		d.txCnt = 1

	default:
		d.txBuf[0] = 0
		d.txCnt = 1
	}

	d.txIdx = -1
	return nil
}

// WriteData feeds one byte from the guest into the state machine.
func (d *Disk) WriteData(value uint32) error {
	d.txIdx++

	switch d.state {
	case diskCommand:
		// Idle 0xFF bytes are ignored until a command starts.
		if byte(value) != 0xFF || d.rxIdx != 0 {
			d.rxBuf[d.rxIdx] = value
			d.rxIdx++
			if d.rxIdx == 6 {
				if err := d.runCommand(); err != nil {
					return err
				}
				d.rxIdx = 0
			}
		}

	case diskRead:
		if d.txIdx >= d.txCnt {
			d.state = diskCommand
			d.txCnt = 0
			d.txIdx = 0
		}

	case diskWrite:
		if value == DISK_DATA_TOKEN {
			d.state = diskWriting
		}

	case diskWriting:
		if d.rxIdx < SECTOR_WORDS {
			d.rxBuf[d.rxIdx] = value
		}
		d.rxIdx++

		if d.rxIdx == SECTOR_WORDS {
			if err := writeSector(d.file, &d.rxBuf); err != nil {
				return err
			}
		}
		// Two CRC bytes trail the payload before the status goes out.
		if d.rxIdx == SECTOR_WORDS+2 {
			d.txBuf[0] = DISK_WRITE_STATUS
			d.txCnt = 1
			d.txIdx = -1
			d.rxIdx = 0
			d.state = diskCommand
		}
	}

	return nil
}

// ReadData returns the current transmit byte, or 255 when idle.
func (d *Disk) ReadData() (uint32, error) {
	if d.txIdx >= 0 && d.txIdx < d.txCnt {
		return d.txBuf[d.txIdx], nil
	}
	return 255, nil
}

func seekSector(f *os.File, sector uint32) error {
	if f == nil {
		return nil
	}
	if _, err := f.Seek(int64(sector)*SECTOR_SIZE, io.SeekStart); err != nil {
		return errDevice("seek failed: %v", err)
	}
	return nil
}

func readSector(f *os.File, buf *[SECTOR_WORDS]uint32) error {
	var bytes [SECTOR_SIZE]byte
	if f != nil {
		if _, err := io.ReadFull(f, bytes[:]); err != nil {
			return errDevice("read failed: %v", err)
		}
	}
	for i := range buf {
		buf[i] = binary.LittleEndian.Uint32(bytes[i*4:])
	}
	return nil
}

func writeSector(f *os.File, buf *[SECTOR_WORDS]uint32) error {
	if f == nil {
		return nil
	}
	var bytes [SECTOR_SIZE]byte
	for i, w := range buf {
		binary.LittleEndian.PutUint32(bytes[i*4:], w)
	}
	if _, err := f.Write(bytes[:]); err != nil {
		return errDevice("write failed: %v", err)
	}
	return nil
}
