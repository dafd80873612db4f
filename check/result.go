package check

import (
	"fmt"
	"io"
)

const (
	VERDICT_PASS = "ALL TESTS PASS"
	VERDICT_FAIL = "SOME TESTS FAILED"
)

// Result accumulates assertion outcomes over one specification pass.
type Result struct {
	Passes   uint32
	Failures uint32
}

// Ran is the number of assertions evaluated.
func (res *Result) Ran() uint32 {
	return res.Passes + res.Failures
}

// Summary is the final report of a run.
type Summary struct {
	Ran      uint32
	Failures uint32
	Passes   uint32
	Verdict  string
	Cycles   uint32
}

// Summarize a result and the cycles consumed to produce it.
func Summarize(res Result, cycles uint32) (sum Summary) {
	sum = Summary{
		Ran:      res.Ran(),
		Failures: res.Failures,
		Passes:   res.Passes,
		Verdict:  VERDICT_PASS,
		Cycles:   cycles,
	}

	if res.Failures != 0 {
		sum.Verdict = VERDICT_FAIL
	}

	return
}

// Passed reports if no assertion failed.
func (sum Summary) Passed() bool {
	return sum.Failures == 0
}

// Report writes the summary to w.
func (sum Summary) Report(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "Tests run: %d\nFailures: %d\nPasses: %d\n%v\nCYCLES %08x\n",
		sum.Ran, sum.Failures, sum.Passes, sum.Verdict, sum.Cycles)
	return
}
