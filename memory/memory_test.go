// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestSpaceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}

	for addr := range SIZE {
		value := uint8(addr*7 + addr>>8)
		mem.Write(uint16(addr), value)
		assert.Equal(value, mem.Read(uint16(addr)))
	}

	for value := range 256 {
		mem.Write(0xffff, uint8(value))
		assert.Equal(uint8(value), mem.Read(0xffff))
	}
}

func TestSpaceWrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}

	addr := uint16(0xffff)
	addr++
	mem.Write(addr, 0x5a)
	assert.Equal(uint8(0x5a), mem.Read(0))
}

func TestSpaceLoad(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		size   int
		origin uint16
		stored int
		err    error
	}){
		{"empty", 0, 0, 0, nil},
		{"small", 100, 0, 100, nil},
		{"exact", SIZE, 0, SIZE, nil},
		{"oversize", 70000, 0, SIZE, ErrTruncated},
		{"origin", 0x100, 0xff80, 0x80, ErrTruncated},
		{"origin_fit", 0x80, 0xff80, 0x80, nil},
	}

	for _, entry := range table {
		mem := &Space{}

		data := make([]byte, entry.size)
		for n := range data {
			data[n] = uint8(n%251 + 1)
		}

		n, err := mem.Load(data, entry.origin)
		assert.Equal(entry.stored, n, entry.name)
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}

		assert.Equal(data[:entry.stored], mem.Data[int(entry.origin):int(entry.origin)+entry.stored], entry.name)
	}
}

func TestSpaceLoadLeavesRemainder(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}

	data := bytes.Repeat([]byte{0xaa}, 100)
	n, err := mem.Load(data, 0)
	assert.NoError(err)
	assert.Equal(100, n)

	assert.Equal(uint8(0xaa), mem.Read(99))
	for addr := 100; addr < SIZE; addr++ {
		if mem.Read(uint16(addr)) != 0 {
			t.Fatalf("address %04x changed", addr)
		}
	}
}

func TestSpaceLoadFrom(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}

	n, err := mem.LoadFrom(bytes.NewReader([]byte{0x3e, 0x3f, 0x76}), 0)
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal(uint8(0x76), mem.Read(2))

	boom := errors.New("boom")
	_, err = mem.LoadFrom(iotest.ErrReader(boom), 0)
	assert.ErrorIs(err, boom)

	var readErr *ErrRead
	assert.ErrorAs(err, &readErr)
}

func TestSpaceReset(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}
	mem.Write(0x1234, 0x56)
	mem.Reset()
	assert.Equal(uint8(0), mem.Read(0x1234))
}

func TestSpaceDump(t *testing.T) {
	assert := assert.New(t)

	mem := &Space{}
	for n := range 0x40 {
		mem.Write(uint16(n), uint8(n))
	}

	var out strings.Builder
	err := mem.Dump(&out, 0x50)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(2, len(lines))
	assert.True(strings.HasPrefix(lines[0], "0000: 00 01 02 03 "))
	assert.True(strings.HasPrefix(lines[1], "0020: 20 21 22 "))
	assert.True(strings.HasSuffix(lines[1], "3e 3f "))
	assert.Equal(6+32*3, len(lines[0]))

	out.Reset()
	err = mem.Dump(&out, 0xffff)
	assert.NoError(err)
	assert.Equal(0x7ff, strings.Count(out.String(), "\n"))
}
