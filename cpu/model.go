package cpu

// Memory is the address space a Model reads and writes.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// RegisterReader exposes the register file of a halted Model.
type RegisterReader interface {
	// ReadRegister returns the register value, masked to its Width.
	ReadRegister(reg Register) uint16
}

// Model is an instruction-execution engine.
type Model interface {
	RegisterReader

	// Reset returns the engine to its power-on state.
	Reset()
	// Step executes a single instruction and returns its cycle cost.
	Step() (cycles uint32)
	// Halted reports if the engine is waiting in a HALT.
	Halted() bool
}
