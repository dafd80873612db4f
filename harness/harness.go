// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/ezrec/z8t/cpu"
	"github.com/ezrec/z8t/memory"
	"github.com/ezrec/z8t/z80"
)

// Harness state. Memory + CPU model.
type Harness struct {
	Verbose bool         // If set, enables verbose logging.
	Memory  memory.Space // Address space seen by the CPU model.
	Model   cpu.Model    // CPU model under test.

	Cycles uint32 // Cycles consumed by the last Run.
	Steps  uint32 // Instructions executed by the last Run.
}

// NewHarness creates a harness driving a Z80.
func NewHarness() (h *Harness) {
	h = &Harness{}
	h.Model = z80.NewCpu(&h.Memory)

	return
}

// NewHarnessWith creates a harness around the model returned by bind,
// which is handed the harness memory.
func NewHarnessWith(bind func(mem cpu.Memory) cpu.Model) (h *Harness) {
	h = &Harness{}
	h.Model = bind(&h.Memory)

	return
}

// Reset the CPU model and clear memory.
func (h *Harness) Reset() {
	h.Memory.Reset()
	h.Model.Reset()
	h.Cycles = 0
	h.Steps = 0
}

// Load places an image in memory at origin. A truncated image is
// logged, and is not an error.
func (h *Harness) Load(data []byte, origin uint16) (n int) {
	n, err := h.Memory.Load(data, origin)
	if errors.Is(err, memory.ErrTruncated) {
		log.Printf("z8t: %v", f("image of %d bytes truncated to %d", len(data), n))
	}

	return
}

// LoadRom loads a ROM file into memory at origin.
func (h *Harness) LoadRom(path string, origin uint16) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrRom{Path: path, Err: err}
		return
	}
	defer inf.Close()

	n, err := h.Memory.LoadFrom(inf, origin)
	if errors.Is(err, memory.ErrTruncated) {
		log.Printf("z8t: %v", f("rom file %v longer than memory", path))
		err = nil
	}
	if err != nil {
		err = &ErrRom{Path: path, Err: err}
		return
	}

	if h.Verbose {
		log.Printf("harness: loaded %v bytes at %04x from %v", n, origin, path)
	}

	return
}

// Run executes up to steps instructions, or until the model halts when
// steps is zero. Halt is tested before every instruction.
//
// With steps of zero, a program that never halts never returns.
func (h *Harness) Run(steps uint32) (cycles uint32) {
	var executed uint32

	for steps == 0 || executed < steps {
		if h.Model.Halted() {
			break
		}
		cycles += h.Model.Step()
		executed++
	}

	h.Cycles = cycles
	h.Steps = executed

	if h.Verbose {
		log.Printf("harness: %v instructions, %v cycles, halted %v", executed, cycles, h.Model.Halted())
	}

	return
}

// DumpRegisters writes the main register pairs to w.
func (h *Harness) DumpRegisters(w io.Writer) error {
	return cpu.DumpRegisters(w, h.Model)
}

// DumpMemory writes the first length bytes of memory to w.
func (h *Harness) DumpMemory(w io.Writer, length int) error {
	return h.Memory.Dump(w, length)
}
