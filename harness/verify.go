package harness

import (
	"io"
	"log"
	"os"

	"github.com/ezrec/z8t/check"
	"github.com/ezrec/z8t/expect"
)

// Verify checks the specification file at path against the current
// register state, writing notices to out, and summarizes the outcome
// with the cycles of the last Run.
//
// A missing path, or a file that cannot be read, is logged and yields
// an empty summary.
func (h *Harness) Verify(path string, out io.Writer) (sum check.Summary) {
	var res check.Result

	defer func() {
		sum = check.Summarize(res, h.Cycles)
	}()

	if len(path) == 0 {
		log.Printf("z8t: %v", f("no test file given"))
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		log.Printf("z8t: %v", f("could not open test file: %v", err))
		return
	}
	defer inf.Close()

	h.VerifyFrom(&res, inf, out)

	return
}

// VerifyFrom checks the expectations read from input, accumulating into
// res.
func (h *Harness) VerifyFrom(res *check.Result, input io.Reader, out io.Writer) {
	parser := &expect.Parser{Verbose: h.Verbose}
	engine := &check.Engine{
		Verbose:   h.Verbose,
		Registers: h.Model,
		Output:    out,
	}

	err := engine.Run(res, parser.Lines(input))
	if err != nil {
		log.Printf("z8t: %v", f("test file: %v", err))
	}
}
