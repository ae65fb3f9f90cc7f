package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ltr/internal/domain"
)

// Console reports a run line by line, in the form CI logs are read in:
// the case being evaluated, then its verdict
type Console struct {
	out  io.Writer
	ok   *color.Color
	fail *color.Color
	warn *color.Color
	info *color.Color
}

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		out:  out,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		info: color.New(color.FgCyan),
	}
	if noColor {
		for _, col := range []*color.Color{c.ok, c.fail, c.warn, c.info} {
			col.DisableColor()
		}
	}
	return c
}

// CaseStarted prints the name of the case about to run
func (c *Console) CaseStarted(tc domain.Case) {
	fmt.Fprintf(c.out, "Evaluating %s\n", tc.ID())
}

// CaseFinished prints the verdict of a case
func (c *Console) CaseFinished(result domain.CaseResult) {
	if result.CompileErr != nil {
		c.warn.Fprintf(c.out, "WARNING! %v\n", result.CompileErr)
	}

	switch result.Verdict {
	case domain.Success:
		c.ok.Fprintln(c.out, "OK")
	case domain.InterpreterFailure:
		msg := fmt.Sprintf("ERROR! Interpreter returned %d", result.ExitCode)
		if result.Err != nil {
			msg += fmt.Sprintf(" (%v)", result.Err)
		}
		c.fail.Fprintln(c.out, msg)
	case domain.OutputMismatch:
		msg := "ERROR! Output differs from expected"
		if result.Err != nil {
			msg += fmt.Sprintf(" (%v)", result.Err)
		}
		c.fail.Fprintln(c.out, msg)
	}
}

// Summary prints the final tally and, for runs that kept going, the failed cases
func (c *Console) Summary(outcome domain.Outcome) {
	if outcome.Total == 0 {
		c.warn.Fprintln(c.out, "No tests to execute")
	}

	fmt.Fprintf(c.out, "Total tests: %d, successful: %d\n", outcome.Total, outcome.Succeeded)

	if len(outcome.Failed) == 0 {
		return
	}
	c.fail.Fprintf(c.out, "Failed: %d\n", len(outcome.Failed))
	for _, r := range outcome.Failed {
		c.info.Fprintf(c.out, "  %s", r.Case.ID())
		fmt.Fprintf(c.out, ": %s\n", r.Verdict)
	}
}
