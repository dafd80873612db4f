package cpu

import (
	"fmt"
	"io"
)

// Register names a register, or register pair, of the Model.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_AF  = Register(0)  // AF
	REG_BC  = Register(1)  // BC
	REG_DE  = Register(2)  // DE
	REG_HL  = Register(3)  // HL
	REG_IX  = Register(4)  // IX
	REG_IY  = Register(5)  // IY
	REG_SP  = Register(6)  // SP
	REG_PC  = Register(7)  // PC
	REG_AF2 = Register(8)  // AF'
	REG_BC2 = Register(9)  // BC'
	REG_DE2 = Register(10) // DE'
	REG_HL2 = Register(11) // HL'
	REG_I   = Register(12) // I
)

// Width in bits of the register.
func (reg Register) Width() int {
	if reg == REG_I {
		return 8
	}
	return 16
}

// Mask returns value limited to the register width.
func (reg Register) Mask(value uint16) uint16 {
	if reg.Width() == 8 {
		return value & 0xff
	}
	return value
}

// High byte of a register pair.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Low byte of a register pair.
func Low(value uint16) uint8 {
	return uint8(value & 0xff)
}

// DumpOrder lists the pairs written by DumpRegisters, in order.
var DumpOrder = [...]Register{
	REG_AF, REG_BC, REG_DE, REG_HL, REG_IX, REG_IY, REG_SP, REG_PC,
}

// DumpRegisters writes the main register pairs, one per line, as the
// pair name followed by its high and low byte in hex.
func DumpRegisters(w io.Writer, regs RegisterReader) (err error) {
	for _, reg := range DumpOrder {
		value := regs.ReadRegister(reg)
		_, err = fmt.Fprintf(w, "%v %02x %02x\n", reg, High(value), Low(value))
		if err != nil {
			return
		}
	}

	return
}
