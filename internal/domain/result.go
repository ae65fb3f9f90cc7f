package domain

// Verdict is the outcome of a single case
type Verdict int

const (
	Success Verdict = iota
	OutputMismatch
	InterpreterFailure
)

func (v Verdict) String() string {
	switch v {
	case Success:
		return "success"
	case OutputMismatch:
		return "output mismatch"
	case InterpreterFailure:
		return "interpreter failure"
	default:
		return "unknown"
	}
}

// CaseResult is the result of running one case
type CaseResult struct {
	Case     Case
	Verdict  Verdict
	ExitCode int   // interpreter exit status, -1 if it never produced one
	Err      error // launch, timeout or I/O error behind a failing verdict

	// CompileErr is the compiler's failure, if any. It never decides the verdict.
	CompileErr error
}

// Passed reports whether the case succeeded
func (r CaseResult) Passed() bool {
	return r.Verdict == Success
}

// Process exit codes
const (
	ExitOK         = 0
	ExitIncomplete = 1
	ExitUsage      = 2
	// ExitAborted is reported when a failing case stops the run.
	// It is the unsigned form of exit(-1).
	ExitAborted = 255
)

// Outcome accumulates the totals of a run
type Outcome struct {
	Total     int
	Succeeded int
	Aborted   bool
	Failed    []CaseResult
}

// Record folds a case result into the totals
func (o *Outcome) Record(r CaseResult) {
	o.Total++
	if r.Passed() {
		o.Succeeded++
		return
	}
	o.Failed = append(o.Failed, r)
}

// ExitCode maps the outcome to the process exit status
func (o Outcome) ExitCode() int {
	if o.Aborted {
		return ExitAborted
	}
	if o.Total > 0 && o.Succeeded == o.Total {
		return ExitOK
	}
	return ExitIncomplete
}
