package z80

// baseCycles are T-states of the unprefixed opcodes. Conditional
// branches list their not-taken cost; see branchPenalty.
var baseCycles = [256]uint32{
	4, 10, 7, 6, 4, 4, 7, 4, 4, 11, 7, 6, 4, 4, 7, 4, // 0x00
	8, 10, 7, 6, 4, 4, 7, 4, 12, 11, 7, 6, 4, 4, 7, 4, // 0x10
	7, 10, 16, 6, 4, 4, 7, 4, 7, 11, 16, 6, 4, 4, 7, 4, // 0x20
	7, 10, 13, 6, 11, 11, 10, 4, 7, 11, 13, 6, 4, 4, 7, 4, // 0x30
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x40
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x50
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x60
	7, 7, 7, 7, 7, 7, 4, 7, 4, 4, 4, 4, 4, 4, 7, 4, // 0x70
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x80
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x90
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0xa0
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0xb0
	5, 10, 10, 10, 10, 11, 7, 11, 5, 10, 10, 4, 10, 17, 7, 11, // 0xc0
	5, 10, 10, 11, 10, 11, 7, 11, 5, 4, 10, 11, 10, 4, 7, 11, // 0xd0
	5, 10, 10, 19, 10, 11, 7, 11, 5, 4, 10, 4, 10, 4, 7, 11, // 0xe0
	5, 10, 10, 4, 10, 11, 7, 11, 5, 6, 10, 4, 10, 4, 7, 11, // 0xf0
}

const (
	PREFIX_CB = 0xcb // Bit operations.
	PREFIX_DD = 0xdd // IX operations.
	PREFIX_ED = 0xed // Extended operations.
	PREFIX_FD = 0xfd // IY operations.
)

// cbCycles returns the T-states of a CB prefixed opcode.
func cbCycles(op uint8) uint32 {
	switch {
	case op&0x07 != 0x06:
		return 8
	case op&0xc0 == 0x40: // BIT n,(HL)
		return 12
	}
	return 15
}

// edCycles returns the T-states of an ED prefixed opcode.
func edCycles(op uint8) uint32 {
	switch {
	case op >= 0x40 && op < 0x80:
		switch op & 0x07 {
		case 0, 1: // IN r,(C) / OUT (C),r
			return 12
		case 2: // SBC HL,rr / ADC HL,rr
			return 15
		case 3: // LD (nn),rr / LD rr,(nn)
			return 20
		case 5: // RETN / RETI
			return 14
		case 7:
			switch op {
			case 0x67, 0x6f: // RRD / RLD
				return 18
			case 0x77, 0x7f:
				return 8
			}
			return 9
		}
		return 8
	case op&0xe4 == 0xa0: // LDI, CPI, INI, OUTI and their repeats
		return 16
	}

	// Undefined ED opcodes are two byte NOPs.
	return 8
}

// indexCycles returns the T-states of a DD or FD prefixed opcode.
func indexCycles(op uint8) uint32 {
	switch {
	case op == 0x34, op == 0x35: // INC/DEC (IX+d)
		return 23
	case op == 0x36: // LD (IX+d),n
		return 19
	case op == 0x76: // HALT
	case op&0xc7 == 0x46, op&0xf8 == 0x70, op&0xc7 == 0x86:
		return 19
	}

	return baseCycles[op] + 4
}

// indexCbCycles returns the T-states of a DD CB or FD CB opcode.
func indexCbCycles(op uint8) uint32 {
	if op&0xc0 == 0x40 {
		return 20
	}
	return 23
}

// branchPenalty is the extra cost of a taken conditional branch, keyed
// by the opcode, and the length of the instruction.
func branchPenalty(op uint8) (extra uint32, length uint16) {
	switch {
	case op == 0x10, op == 0x20, op == 0x28, op == 0x30, op == 0x38: // DJNZ, JR cc
		return 5, 2
	case op&0xc7 == 0xc0: // RET cc
		return 6, 1
	case op&0xc7 == 0xc4: // CALL cc
		return 7, 3
	}
	return 0, 0
}

// Cycles returns the T-state cost of the instruction whose bytes are
// code, started at pc, and left the program counter at next.
func Cycles(code [4]uint8, pc uint16, next uint16) (cycles uint32) {
	switch code[0] {
	case PREFIX_CB:
		cycles = cbCycles(code[1])
	case PREFIX_ED:
		cycles = edCycles(code[1])
		// LDIR, CPIR, INIR, OTIR and the decrementing forms
		// re-execute by leaving PC on themselves.
		if code[1]&0xf4 == 0xb0 && next == pc {
			cycles += 5
		}
	case PREFIX_DD, PREFIX_FD:
		if code[1] == PREFIX_CB {
			cycles = indexCbCycles(code[3])
		} else {
			cycles = indexCycles(code[1])
		}
	default:
		cycles = baseCycles[code[0]]
		extra, length := branchPenalty(code[0])
		if length != 0 && next != pc+length {
			cycles += extra
		}
	}

	return
}
