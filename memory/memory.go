// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the flat 64KiB address space the harness
// exposes to the CPU model.
package memory

import (
	"fmt"
	"io"
)

const (
	SIZE     = 0x10000 // Bytes of addressable memory.
	DUMP_ROW = 0x20    // Bytes per memory dump row.
)

// Space is a 64KiB byte addressable memory. The zero value is a
// zeroed memory ready for use.
type Space struct {
	Data [SIZE]byte
}

// Read returns the byte at addr.
func (mem *Space) Read(addr uint16) uint8 {
	return mem.Data[addr]
}

// Write stores value at addr.
func (mem *Space) Write(addr uint16, value uint8) {
	mem.Data[addr] = value
}

// Reset zeros the memory.
func (mem *Space) Reset() {
	clear(mem.Data[:])
}

// Load copies data into memory starting at origin.
// If data does not fit in the space above origin, the excess is dropped
// and ErrTruncated is returned along with the count of bytes stored.
func (mem *Space) Load(data []byte, origin uint16) (n int, err error) {
	n = copy(mem.Data[origin:], data)
	if n < len(data) {
		err = ErrTruncated
	}

	return
}

// LoadFrom reads an entire image from r and loads it at origin.
func (mem *Space) LoadFrom(r io.Reader, origin uint16) (n int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = &ErrRead{Err: err}
		return
	}

	return mem.Load(data, origin)
}

// Dump writes the first length bytes of memory as rows of hex bytes,
// each prefixed by its address. Partial rows are not written.
func (mem *Space) Dump(w io.Writer, length int) (err error) {
	rows := min(length, SIZE) / DUMP_ROW

	for y := range rows {
		base := y * DUMP_ROW
		_, err = fmt.Fprintf(w, "%04x: ", base)
		if err != nil {
			return
		}
		for _, value := range mem.Data[base : base+DUMP_ROW] {
			_, err = fmt.Fprintf(w, "%02x ", value)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}

	return
}
