// Package cpu defines the contract between the z8t harness and the
// instruction-execution engine it drives.
//
// A Model advances one instruction per Step, reporting the cycle cost of
// that instruction, and accesses memory only through the Memory it was
// bound to. Registers are exposed read-only, by Register name.
package cpu
