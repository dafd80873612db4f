package harness

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/z8t/cpu"
)

// fakeModel halts after haltAfter steps, each costing cost cycles.
// A negative haltAfter never halts. Each step writes its count to memory.
type fakeModel struct {
	mem       cpu.Memory
	haltAfter int
	cost      uint32
	steps     int
}

func (fm *fakeModel) Reset() {
	fm.steps = 0
}

func (fm *fakeModel) Halted() bool {
	return fm.haltAfter >= 0 && fm.steps >= fm.haltAfter
}

func (fm *fakeModel) Step() uint32 {
	fm.mem.Write(uint16(fm.steps), uint8(fm.steps+1))
	fm.steps++
	return fm.cost
}

func (fm *fakeModel) ReadRegister(reg cpu.Register) uint16 {
	return reg.Mask(uint16(fm.steps))
}

func newFake(haltAfter int, cost uint32) (h *Harness, fm *fakeModel) {
	h = NewHarnessWith(func(mem cpu.Memory) cpu.Model {
		fm = &fakeModel{mem: mem, haltAfter: haltAfter, cost: cost}
		return fm
	})
	return
}

func TestHarnessHaltedOnEntry(t *testing.T) {
	assert := assert.New(t)

	for _, steps := range []uint32{0, 1, 100} {
		h, fm := newFake(0, 4)
		assert.Equal(uint32(0), h.Run(steps))
		assert.Equal(0, fm.steps)
		assert.Equal(uint32(0), h.Cycles)
		assert.Equal(uint32(0), h.Steps)
	}
}

func TestHarnessRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name      string
		haltAfter int
		steps     uint32
		executed  int
	}){
		{"to_halt", 5, 0, 5},
		{"budget_larger", 5, 10, 5},
		{"budget_exact", 5, 5, 5},
		{"budget_smaller", 5, 3, 3},
		{"never_halts", -1, 7, 7},
		{"single", -1, 1, 1},
	}

	for _, entry := range table {
		h, fm := newFake(entry.haltAfter, 7)
		cycles := h.Run(entry.steps)
		assert.Equal(entry.executed, fm.steps, entry.name)
		assert.Equal(uint32(entry.executed)*7, cycles, entry.name)
		assert.Equal(cycles, h.Cycles, entry.name)
		assert.Equal(uint32(entry.executed), h.Steps, entry.name)

		// The model mutated memory through the harness.
		for n := range entry.executed {
			assert.Equal(uint8(n+1), h.Memory.Read(uint16(n)), entry.name)
		}
	}
}

func TestHarnessRunResumes(t *testing.T) {
	assert := assert.New(t)

	h, fm := newFake(10, 3)
	assert.Equal(uint32(12), h.Run(4))
	assert.Equal(uint32(18), h.Run(0))
	assert.Equal(10, fm.steps)
	assert.Equal(uint32(6), h.Steps)
}

func TestHarnessZ80Halt(t *testing.T) {
	assert := assert.New(t)

	h := NewHarness()
	n := h.Load([]byte{0x76}, 0)
	assert.Equal(1, n)

	assert.Equal(uint32(4), h.Run(0))
	assert.True(h.Model.Halted())
	assert.Equal(uint32(1), h.Steps)

	// Already halted: no further cost.
	assert.Equal(uint32(0), h.Run(0))
}

func TestHarnessZ80Program(t *testing.T) {
	assert := assert.New(t)

	h := NewHarness()
	h.Load([]byte{
		0x3e, 0x3f, // LD A,0x3f
		0x01, 0x34, 0x12, // LD BC,0x1234
		0x76, // HALT
	}, 0)

	assert.Equal(uint32(7), h.Run(1))
	assert.Equal(uint32(10+4), h.Run(0))

	var out strings.Builder
	assert.NoError(h.DumpRegisters(&out))
	lines := strings.Split(out.String(), "\n")
	assert.Equal("BC 12 34", lines[1])
	assert.True(strings.HasPrefix(lines[0], "AF 3f "))
}

func TestHarnessReset(t *testing.T) {
	assert := assert.New(t)

	h := NewHarness()
	h.Load([]byte{0x76}, 0)
	h.Run(0)

	h.Reset()
	assert.False(h.Model.Halted())
	assert.Equal(uint8(0), h.Memory.Read(0))
	assert.Equal(uint32(0), h.Cycles)
}

func TestHarnessLoadRom(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	small := filepath.Join(dir, "small.bin")
	assert.NoError(os.WriteFile(small, []byte{0x01, 0x02, 0x03}, 0o644))

	h := NewHarness()
	assert.NoError(h.LoadRom(small, 0x10))
	assert.Equal(uint8(0x01), h.Memory.Read(0x10))
	assert.Equal(uint8(0x03), h.Memory.Read(0x12))
	assert.Equal(uint8(0x00), h.Memory.Read(0x13))

	large := make([]byte, 70000)
	for n := range large {
		large[n] = uint8(n)
	}
	big := filepath.Join(dir, "big.bin")
	assert.NoError(os.WriteFile(big, large, 0o644))

	h = NewHarness()
	assert.NoError(h.LoadRom(big, 0))
	assert.Equal(large[:0x10000], h.Memory.Data[:])

	err := h.LoadRom(filepath.Join(dir, "missing.bin"), 0)
	assert.ErrorIs(err, fs.ErrNotExist)
	var romErr *ErrRom
	assert.ErrorAs(err, &romErr)
	assert.Equal(filepath.Join(dir, "missing.bin"), romErr.Path)
}

func TestHarnessDumpMemory(t *testing.T) {
	assert := assert.New(t)

	h := NewHarness()
	h.Load([]byte{0x76, 0xaa}, 0)

	var out strings.Builder
	assert.NoError(h.DumpMemory(&out, 0x40))
	assert.Equal(2, strings.Count(out.String(), "\n"))
	assert.True(strings.HasPrefix(out.String(), "0000: 76 aa 00 "))
}

type brokenWriter struct {
	err error
}

func (bw *brokenWriter) Write(p []byte) (n int, err error) {
	return 0, bw.err
}

func TestHarnessDumpWriteError(t *testing.T) {
	assert := assert.New(t)

	broken := &brokenWriter{err: fs.ErrClosed}

	h, _ := newFake(0, 1)
	assert.ErrorIs(h.DumpRegisters(broken), fs.ErrClosed)
	assert.ErrorIs(h.DumpMemory(broken, 0x40), fs.ErrClosed)

	sum := h.Verify("", nil)
	assert.ErrorIs(sum.Report(broken), fs.ErrClosed)
}
