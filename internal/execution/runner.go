package execution

import (
	"context"
	"fmt"
	"os"
	"time"

	"ltr/internal/domain"
)

// Runner compiles, executes and checks a single case
type Runner struct {
	compiler    Compiler
	interpreter Interpreter
	timeout     time.Duration
}

// NewRunner creates a new Runner. A zero timeout means cases may run forever.
func NewRunner(compiler Compiler, interpreter Interpreter, timeout time.Duration) *Runner {
	return &Runner{
		compiler:    compiler,
		interpreter: interpreter,
		timeout:     timeout,
	}
}

// Run executes the compile, execute and compare steps for c
func (r *Runner) Run(ctx context.Context, c domain.Case) domain.CaseResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result := domain.CaseResult{Case: c}

	// The compiler's status does not decide the verdict; a failed compile
	// shows up as a missing or stale artifact in the next step
	result.CompileErr = r.compiler.Compile(ctx, c.Source, c.ArtifactDir)

	exitCode, err := r.execute(ctx, c)
	result.ExitCode = exitCode
	if err != nil || exitCode != 0 {
		result.Verdict = domain.InterpreterFailure
		result.Err = err
		return result
	}

	equal, err := Compare(c.Expected, c.Actual)
	if err != nil || !equal {
		result.Verdict = domain.OutputMismatch
		result.Err = err
		return result
	}

	result.Verdict = domain.Success
	return result
}

// execute runs the interpreter with the case's input and output files bound
// to its standard streams. Both files are closed before it returns.
func (r *Runner) execute(ctx context.Context, c domain.Case) (code int, err error) {
	in, err := os.Open(c.Input)
	if err != nil {
		return -1, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(c.Actual)
	if err != nil {
		return -1, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			code, err = -1, fmt.Errorf("close output: %w", cerr)
		}
	}()

	return r.interpreter.Run(ctx, c.Artifact(), in, out)
}
