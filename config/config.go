// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads z8t run files.
//
// A run file is a Starlark script. Its globals name the inputs of a run:
//
//	rom = "tests/add.bin"
//	spec = "tests/add.txt"
//	steps = 1000
//	origin = 0x100
//	verbose = False
//	dump_registers = True
//	dump_memory = False
//
// MEMORY_SIZE is predeclared. Unknown globals are ignored.
package config

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/z8t/memory"
)

// Config of a single run.
type Config struct {
	Rom           string // ROM image path.
	Spec          string // Test specification path.
	Steps         uint32 // Step budget, 0 to run until halted.
	Origin        uint16 // ROM load address.
	Verbose       bool   // Verbose logging.
	DumpRegisters bool   // Dump registers after the run.
	DumpMemory    bool   // Dump memory after the run.
}

var predeclared = starlark.StringDict{
	"MEMORY_SIZE": starlark.MakeInt(memory.SIZE),
}

// Parse executes a run file held in src, overriding the fields of cfg it
// sets. filename is only used for diagnostics.
func (cfg *Config) Parse(filename string, src any) (err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if err != nil {
		err = &ErrConfig{Path: filename, Err: err}
		return
	}

	strs := map[string]*string{
		"rom":  &cfg.Rom,
		"spec": &cfg.Spec,
	}
	for name, ptr := range strs {
		value, ok := globals[name]
		if !ok {
			continue
		}
		str, ok := starlark.AsString(value)
		if !ok {
			err = &ErrConfig{Path: filename, Name: name, Err: ErrType}
			return
		}
		*ptr = str
	}

	bools := map[string]*bool{
		"verbose":        &cfg.Verbose,
		"dump_registers": &cfg.DumpRegisters,
		"dump_memory":    &cfg.DumpMemory,
	}
	for name, ptr := range bools {
		value, ok := globals[name]
		if !ok {
			continue
		}
		b, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrConfig{Path: filename, Name: name, Err: ErrType}
			return
		}
		*ptr = bool(b)
	}

	steps, ok, err := intGlobal(globals, filename, "steps", math.MaxUint32)
	if err != nil {
		return
	}
	if ok {
		cfg.Steps = uint32(steps)
	}

	origin, ok, err := intGlobal(globals, filename, "origin", math.MaxUint16)
	if err != nil {
		return
	}
	if ok {
		cfg.Origin = uint16(origin)
	}

	return
}

// intGlobal fetches an integer global in the range 0..limit.
func intGlobal(globals starlark.StringDict, filename, name string, limit int64) (value int64, ok bool, err error) {
	sv, ok := globals[name]
	if !ok {
		return
	}

	st_int, is_int := sv.(starlark.Int)
	if !is_int {
		err = &ErrConfig{Path: filename, Name: name, Err: ErrType}
		return
	}

	value, exact := st_int.Int64()
	if !exact || value < 0 || value > limit {
		err = &ErrConfig{Path: filename, Name: name, Err: ErrRange}
		return
	}

	return
}

// Load reads the run file at path into cfg.
func (cfg *Config) Load(path string) (err error) {
	return cfg.Parse(path, nil)
}
