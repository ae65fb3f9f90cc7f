package execution

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// fakeCompiler records the sources it was asked to compile
type fakeCompiler struct {
	calls []string
	dirs  []string
	err   error
}

func (f *fakeCompiler) Compile(ctx context.Context, source, dir string) error {
	f.calls = append(f.calls, source)
	f.dirs = append(f.dirs, dir)
	return f.err
}

// fakeInterpreter copies stdin to stdout, or exits with the configured status
// for the named artifacts
type fakeInterpreter struct {
	calls    []string
	exitCode map[string]int
	suffix   map[string]string
	sawCtx   []context.Context
}

func (f *fakeInterpreter) Run(ctx context.Context, artifact string, stdin io.Reader, stdout io.Writer) (int, error) {
	name := strings.TrimSuffix(filepath.Base(artifact), filepath.Ext(artifact))
	f.calls = append(f.calls, name)
	f.sawCtx = append(f.sawCtx, ctx)

	if code, ok := f.exitCode[name]; ok {
		return code, nil
	}
	if _, err := io.Copy(stdout, stdin); err != nil {
		return -1, err
	}
	if extra, ok := f.suffix[name]; ok {
		if _, err := io.WriteString(stdout, extra); err != nil {
			return -1, err
		}
	}
	return 0, nil
}
