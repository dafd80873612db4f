package check

import (
	"github.com/ezrec/z8t/cpu"
)

// Kind of a dispatch table entry.
type Kind int

const (
	KIND_UNKNOWN  = Kind(0) // Not in the table.
	KIND_ASSERT   = Kind(1) // Compare a register field.
	KIND_RESERVED = Kind(2) // Accepted, nothing checked.
	KIND_WARN     = Kind(3) // Rejected with Entry.Err.
)

// Part of a register selected by a Field.
type Part int

const (
	PART_WORD = Part(0) // Whole register.
	PART_HIGH = Part(1) // High byte of a pair.
	PART_LOW  = Part(2) // Low byte of a pair.
)

// Field selects a register, or half of a register pair.
type Field struct {
	Register cpu.Register
	Part     Part
}

// Width of the field, in bits.
func (fd Field) Width() int {
	if fd.Part != PART_WORD {
		return 8
	}
	return fd.Register.Width()
}

// Mask narrows value to the width of the field.
func (fd Field) Mask(value uint32) uint32 {
	return value & (1<<fd.Width() - 1)
}

// Read the field from the register file.
func (fd Field) Read(regs cpu.RegisterReader) (value uint32) {
	reg := regs.ReadRegister(fd.Register)

	switch fd.Part {
	case PART_HIGH:
		value = uint32(cpu.High(reg))
	case PART_LOW:
		value = uint32(cpu.Low(reg))
	default:
		value = uint32(fd.Register.Mask(reg))
	}

	return
}

// Entry is a resolved command.
type Entry struct {
	Kind  Kind
	Field Field  // KIND_ASSERT field.
	Label string // KIND_ASSERT notice label.
	Err   error  // KIND_WARN reason.

	// Second letter dispatch, for commands such as IX and IY.
	Index map[byte]Entry
}

// Key into the dispatch table: a command's first letter and its length.
// Lengths over MAX_LENGTH are looked up as MAX_LENGTH.
type Key struct {
	Letter byte
	Length int
}

const MAX_LENGTH = 3

func assertion(reg cpu.Register, part Part, label string) Entry {
	return Entry{Kind: KIND_ASSERT, Field: Field{Register: reg, Part: part}, Label: label}
}

var reserved = Entry{Kind: KIND_RESERVED}

func warning(err error) Entry {
	return Entry{Kind: KIND_WARN, Err: err}
}

// Table maps commands to register fields.
//
// A single letter selects the 8-bit register of that name, two letters
// select the pair, and three letters the alternate pair (C, E and L
// reach the alternate bank with two letters).
var Table = map[Key]Entry{
	{'A', 1}: assertion(cpu.REG_AF, PART_HIGH, "Register A value correct"),
	{'A', 2}: assertion(cpu.REG_AF, PART_WORD, "Register AF value correct"),
	{'A', 3}: assertion(cpu.REG_AF2, PART_WORD, "Register AF' value correct"),

	// B shares the A label.
	{'B', 1}: assertion(cpu.REG_BC, PART_HIGH, "Register A value correct"),
	{'B', 2}: assertion(cpu.REG_BC, PART_WORD, "Register BC value correct"),
	{'B', 3}: assertion(cpu.REG_BC2, PART_WORD, "Register BC' value correct"),

	{'C', 1}: assertion(cpu.REG_BC, PART_LOW, "Register C value correct"),
	{'C', 2}: assertion(cpu.REG_BC2, PART_LOW, "Register C' value correct"),

	{'D', 1}: assertion(cpu.REG_DE, PART_HIGH, "Register D value correct"),
	{'D', 2}: assertion(cpu.REG_DE, PART_WORD, "Register DE value correct"),
	{'D', 3}: assertion(cpu.REG_DE2, PART_WORD, "Register DE' value correct"),

	{'E', 1}: assertion(cpu.REG_DE, PART_LOW, "Register E value correct"),
	{'E', 2}: assertion(cpu.REG_DE2, PART_LOW, "Register E' value correct"),

	{'H', 1}: assertion(cpu.REG_HL, PART_HIGH, "Register H value correct"),
	{'H', 2}: assertion(cpu.REG_HL, PART_WORD, "Register HL value correct"),
	{'H', 3}: assertion(cpu.REG_HL2, PART_WORD, "Register HL' value correct"),

	{'L', 1}: assertion(cpu.REG_HL, PART_LOW, "Register L value correct"),
	{'L', 2}: assertion(cpu.REG_HL2, PART_LOW, "Register L' value correct"),

	{'I', 1}: assertion(cpu.REG_I, PART_WORD, "Register I value correct"),
	{'I', 2}: {Index: map[byte]Entry{
		'X': assertion(cpu.REG_IX, PART_WORD, "Register IX value correct"),
		'Y': assertion(cpu.REG_IY, PART_WORD, "Register IY value correct"),
	}},
	{'I', 3}: warning(ErrCommandTooLong),

	{'S', 1}: warning(ErrCommandBareS),
	{'S', 2}: reserved,
	{'S', 3}: warning(ErrCommandUnrecognized),

	{'R', 1}: reserved,
	{'R', 2}: reserved,
	{'R', 3}: reserved,

	{'M', 1}: reserved,
	{'M', 2}: reserved,
	{'M', 3}: reserved,
}

// Lookup resolves a command. Commands not in the table have
// KIND_UNKNOWN.
func Lookup(command string) (entry Entry) {
	if len(command) == 0 {
		return
	}

	key := Key{Letter: command[0], Length: min(len(command), MAX_LENGTH)}
	entry = Table[key]

	if entry.Index != nil {
		entry = entry.Index[command[1]]
	}

	return
}
