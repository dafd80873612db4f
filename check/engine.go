// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package check evaluates parsed expectations against the registers of
// a halted CPU model, and reports the outcome.
package check

import (
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/ezrec/z8t/cpu"
	"github.com/ezrec/z8t/expect"
)

// Engine dispatches expectations to register comparisons.
type Engine struct {
	Verbose   bool               // If set, logs every dispatched line.
	Registers cpu.RegisterReader // Registers under test.
	Output    io.Writer          // Pass and fail notices. Discarded if nil.
}

func (eng *Engine) output() io.Writer {
	if eng.Output == nil {
		return io.Discard
	}
	return eng.Output
}

// Check evaluates a single line, recording the outcome in res.
// Lines that do not resolve to an assertion return an *ErrLine and
// leave res untouched.
func (eng *Engine) Check(res *Result, line expect.Line) (err error) {
	entry := Lookup(line.Command)

	if eng.Verbose {
		log.Printf("check: line %d: %v %#x", line.LineNo, line.Command, line.Value)
	}

	switch entry.Kind {
	case KIND_ASSERT:
		eng.compare(res, entry, line.Value)
	case KIND_RESERVED:
	case KIND_WARN:
		err = &ErrLine{LineNo: line.LineNo, Command: line.Command, Err: entry.Err}
	default:
		err = &ErrLine{LineNo: line.LineNo, Command: line.Command, Err: ErrCommandUnknown}
	}

	return
}

func (eng *Engine) compare(res *Result, entry Entry, expected uint32) {
	observed := entry.Field.Read(eng.Registers)
	expected = entry.Field.Mask(expected)

	if observed == expected {
		res.Passes++
		fmt.Fprintf(eng.output(), "PASS: %v\n", entry.Label)
		return
	}

	res.Failures++
	fmt.Fprintf(eng.output(), "FAIL: %v: got %d expected %d\n", entry.Label, observed, expected)
}

// Run checks every line in order. Dispatch warnings are logged and do
// not stop the run; a read failure from lines does.
func (eng *Engine) Run(res *Result, lines iter.Seq2[expect.Line, error]) (err error) {
	for line, lerr := range lines {
		if lerr != nil {
			err = lerr
			return
		}

		cerr := eng.Check(res, line)
		if cerr != nil {
			log.Printf("check: %v", cerr)
		}
	}

	return
}
