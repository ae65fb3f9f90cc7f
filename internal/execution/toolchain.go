package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Compiler turns a source file into an artifact deposited in dir
type Compiler interface {
	Compile(ctx context.Context, source, dir string) error
}

// Interpreter runs an artifact with the given standard input and output and
// returns its exit status. A non-nil error means no exit status was obtained.
type Interpreter interface {
	Run(ctx context.Context, artifact string, stdin io.Reader, stdout io.Writer) (int, error)
}

// ExecCompiler invokes an external compiler as "<path> -b <source>"
type ExecCompiler struct {
	path   string
	stdout io.Writer
	stderr io.Writer
}

// NewExecCompiler creates a compiler whose output passes through to the console
func NewExecCompiler(path string) *ExecCompiler {
	return &ExecCompiler{path: path, stdout: os.Stdout, stderr: os.Stderr}
}

// SetOutput redirects the compiler's stdout and stderr
func (c *ExecCompiler) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Compile runs the compiler inside dir so the artifact lands there
func (c *ExecCompiler) Compile(ctx context.Context, source, dir string) error {
	abs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolve source %s: %w", source, err)
	}

	cmd := exec.CommandContext(ctx, c.path, "-b", abs)
	cmd.Dir = dir
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("compile %s: %w", source, err)
	}
	return nil
}

// ExecInterpreter invokes an external interpreter as "<path> <artifact>"
type ExecInterpreter struct {
	path   string
	stderr io.Writer
}

// NewExecInterpreter creates an interpreter whose stderr passes through to the console
func NewExecInterpreter(path string) *ExecInterpreter {
	return &ExecInterpreter{path: path, stderr: os.Stderr}
}

// SetStderr redirects the interpreter's stderr
func (i *ExecInterpreter) SetStderr(stderr io.Writer) {
	i.stderr = stderr
}

// Run executes the interpreter and waits for it to exit
func (i *ExecInterpreter) Run(ctx context.Context, artifact string, stdin io.Reader, stdout io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, i.path, artifact)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = i.stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("interpreter stopped: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("launch interpreter: %w", err)
	}
	return 0, nil
}
