// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package z80 binds the koron-go Z80 core to the z8t cpu.Model contract,
// adding per-instruction T-state accounting.
package z80

import (
	"log"

	kz80 "github.com/koron-go/z80"

	"github.com/ezrec/z8t/cpu"
)

// bus routes core memory cycles to a cpu.Memory.
type bus struct {
	cpu.Memory
}

func (b bus) Get(addr uint16) uint8 {
	return b.Read(addr)
}

func (b bus) Set(addr uint16, value uint8) {
	b.Write(addr, value)
}

// ports is the unconnected I/O space. Reads float to zero.
type ports struct{}

func (ports) In(addr uint8) uint8 {
	return 0
}

func (ports) Out(addr uint8, value uint8) {
}

// Cpu is a Z80 implementing cpu.Model.
type Cpu struct {
	Verbose bool // If set, logs every instruction executed.

	memory cpu.Memory
	core   *kz80.CPU
}

var _ cpu.Model = (*Cpu)(nil)

// NewCpu creates a Z80 attached to memory, in its power-on state.
func NewCpu(memory cpu.Memory) (z *Cpu) {
	z = &Cpu{
		memory: memory,
	}

	z.Reset()

	return
}

// Reset the core. Memory is not altered.
func (z *Cpu) Reset() {
	z.core = &kz80.CPU{
		Memory: bus{Memory: z.memory},
		IO:     ports{},
	}
}

// Halted reports if the core has executed a HALT.
func (z *Cpu) Halted() bool {
	return z.core.HALT
}

// Step executes one instruction, returning its T-states.
func (z *Cpu) Step() (cycles uint32) {
	pc := z.core.PC

	var code [4]uint8
	for n := range code {
		code[n] = z.memory.Read(pc + uint16(n))
	}

	z.core.Step()

	cycles = Cycles(code, pc, z.core.PC)

	if z.Verbose {
		log.Printf("z80: %04x: %02x %02x %02x %02x ; %v", pc, code[0], code[1], code[2], code[3], cycles)
	}

	return
}

func pair(reg kz80.Register) uint16 {
	return uint16(reg.Hi)<<8 | uint16(reg.Lo)
}

// ReadRegister returns the current value of a register.
func (z *Cpu) ReadRegister(reg cpu.Register) (value uint16) {
	core := z.core

	switch reg {
	case cpu.REG_AF:
		value = pair(core.AF)
	case cpu.REG_BC:
		value = pair(core.BC)
	case cpu.REG_DE:
		value = pair(core.DE)
	case cpu.REG_HL:
		value = pair(core.HL)
	case cpu.REG_IX:
		value = core.IX
	case cpu.REG_IY:
		value = core.IY
	case cpu.REG_SP:
		value = core.SP
	case cpu.REG_PC:
		value = core.PC
	case cpu.REG_AF2:
		value = pair(core.Alternate.AF)
	case cpu.REG_BC2:
		value = pair(core.Alternate.BC)
	case cpu.REG_DE2:
		value = pair(core.Alternate.DE)
	case cpu.REG_HL2:
		value = pair(core.Alternate.HL)
	case cpu.REG_I:
		value = uint16(core.IR.Hi)
	}

	return reg.Mask(value)
}
