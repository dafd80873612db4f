// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/ezrec/z8t/config"
	"github.com/ezrec/z8t/harness"
	"github.com/ezrec/z8t/memory"
)

func main() {
	var runfile string
	var opt config.Config
	var steps uint
	var origin uint

	flag.StringVar(&runfile, "c", "", "Starlark run file")
	flag.StringVar(&opt.Rom, "r", "", "ROM image to execute")
	flag.StringVar(&opt.Spec, "t", "", "test specification file")
	flag.UintVar(&steps, "n", 0, "maximum instructions to execute, 0 to run until HALT")
	flag.UintVar(&origin, "o", 0, "ROM load address")
	flag.BoolVar(&opt.DumpRegisters, "R", false, "Dump registers after execution")
	flag.BoolVar(&opt.DumpMemory, "M", false, "Dump memory after execution")
	flag.BoolVar(&opt.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if steps > math.MaxUint32 {
		log.Fatalf("%v: -n %v: out of range", os.Args[0], steps)
	}
	if origin > math.MaxUint16 {
		log.Fatalf("%v: -o %v: out of range", os.Args[0], origin)
	}
	opt.Steps = uint32(steps)
	opt.Origin = uint16(origin)

	cfg := opt
	if len(runfile) != 0 {
		cfg = config.Config{}
		err := cfg.Load(runfile)
		if err != nil {
			log.Fatalf("%v", err)
		}

		// Explicit flags win over the run file.
		flag.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "r":
				cfg.Rom = opt.Rom
			case "t":
				cfg.Spec = opt.Spec
			case "n":
				cfg.Steps = opt.Steps
			case "o":
				cfg.Origin = opt.Origin
			case "R":
				cfg.DumpRegisters = opt.DumpRegisters
			case "M":
				cfg.DumpMemory = opt.DumpMemory
			case "v":
				cfg.Verbose = opt.Verbose
			}
		})
	}

	h := harness.NewHarness()
	h.Verbose = cfg.Verbose

	err := h.LoadRom(cfg.Rom, cfg.Origin)
	if err != nil {
		log.Fatalf("%v", err)
	}

	h.Run(cfg.Steps)

	if cfg.DumpRegisters {
		err = h.DumpRegisters(os.Stdout)
		if err != nil {
			log.Printf("registers: %v", err)
		}
	}
	if cfg.DumpMemory {
		err = h.DumpMemory(os.Stdout, memory.SIZE)
		if err != nil {
			log.Printf("memory: %v", err)
		}
	}

	sum := h.Verify(cfg.Spec, os.Stdout)
	err = sum.Report(os.Stdout)
	if err != nil {
		log.Printf("report: %v", err)
	}
}
