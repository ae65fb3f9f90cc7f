package execution

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ltr/internal/config"
	"ltr/internal/discovery"
	"ltr/internal/domain"
	"ltr/internal/ui"
	"ltr/internal/workspace"
)

type suiteFixture struct {
	root        string
	outDir      string
	cfg         *config.Config
	compiler    *fakeCompiler
	interpreter *fakeInterpreter
	console     bytes.Buffer
}

func newSuiteFixture(t *testing.T) *suiteFixture {
	t.Helper()
	tmpDir := t.TempDir()
	f := &suiteFixture{
		root:        filepath.Join(tmpDir, "regression"),
		outDir:      filepath.Join(tmpDir, "out", "logs"),
		compiler:    &fakeCompiler{},
		interpreter: &fakeInterpreter{exitCode: map[string]int{}, suffix: map[string]string{}},
	}
	f.cfg = config.New()
	f.cfg.CorpusRoot = f.root
	f.cfg.OutputDir = f.outDir
	return f
}

func (f *suiteFixture) suite() *Suite {
	ws := workspace.New(f.cfg.OutputDir, f.cfg.GetArtifactRoot(), f.cfg.ScopeArtifacts)
	return NewSuite(
		f.cfg,
		discovery.NewScanner(f.cfg.SourceExt),
		discovery.NewFilter(),
		NewRunner(f.compiler, f.interpreter, 0),
		ws,
		ui.NewConsole(&f.console, true),
	)
}

func (f *suiteFixture) run(t *testing.T) domain.Outcome {
	t.Helper()
	outcome, err := f.suite().Run(context.Background(), f.cfg.GetGroups())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return outcome
}

func (f *suiteFixture) lines() []string {
	return strings.Split(strings.TrimSuffix(f.console.String(), "\n"), "\n")
}

type recordingProgress struct {
	updates  [][2]int
	finished bool
}

func (p *recordingProgress) Update(successCount, failCount int) {
	p.updates = append(p.updates, [2]int{successCount, failCount})
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func TestSuite_AllPass(t *testing.T) {
	f := newSuiteFixture(t)
	for _, name := range []string{"c", "a", "b"} {
		writeCase(t, f.root, name, name+"\n")
	}

	outcome := f.run(t)

	want := []string{
		"Evaluating a", "OK",
		"Evaluating b", "OK",
		"Evaluating c", "OK",
		"Total tests: 3, successful: 3",
	}
	if diff := cmp.Diff(want, f.lines()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
	if outcome.ExitCode() != domain.ExitOK {
		t.Errorf("expected exit code 0, got %d", outcome.ExitCode())
	}
	if outcome.Total != 3 || outcome.Succeeded != 3 {
		t.Errorf("expected 3/3, got %d/%d", outcome.Total, outcome.Succeeded)
	}
	if _, err := os.Stat(filepath.Join(f.outDir, "b.log")); err != nil {
		t.Errorf("expected actual log for b: %v", err)
	}
}

func TestSuite_OutputMismatchStopsRun(t *testing.T) {
	f := newSuiteFixture(t)
	for _, name := range []string{"a", "b", "c"} {
		writeCase(t, f.root, name, name+"\n")
	}
	// Alter one byte of b's expected transcript
	if err := os.WriteFile(filepath.Join(f.root, "orig", "b.log"), []byte("B\n"), 0644); err != nil {
		t.Fatalf("failed to alter expected output: %v", err)
	}

	outcome := f.run(t)

	want := []string{
		"Evaluating a", "OK",
		"Evaluating b", "ERROR! Output differs from expected",
	}
	if diff := cmp.Diff(want, f.lines()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, f.interpreter.calls); diff != "" {
		t.Errorf("c must never be evaluated (-want +got):\n%s", diff)
	}
	if !outcome.Aborted || outcome.ExitCode() != domain.ExitAborted {
		t.Errorf("expected aborted run, got %+v", outcome)
	}
	if outcome.Total != 2 || outcome.Succeeded != 1 {
		t.Errorf("expected 2/1, got %d/%d", outcome.Total, outcome.Succeeded)
	}
}

func TestSuite_InterpreterFailureStopsRun(t *testing.T) {
	f := newSuiteFixture(t)
	for _, name := range []string{"a", "b", "c"} {
		writeCase(t, f.root, name, name+"\n")
	}
	f.interpreter.exitCode["b"] = 2

	outcome := f.run(t)

	want := []string{
		"Evaluating a", "OK",
		"Evaluating b", "ERROR! Interpreter returned 2",
	}
	if diff := cmp.Diff(want, f.lines()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
	if len(f.compiler.calls) != 2 {
		t.Errorf("expected 2 compilations, got %d", len(f.compiler.calls))
	}
	if outcome.ExitCode() != domain.ExitAborted {
		t.Errorf("expected exit code %d, got %d", domain.ExitAborted, outcome.ExitCode())
	}
}

func TestSuite_KeepGoing(t *testing.T) {
	f := newSuiteFixture(t)
	f.cfg.StopOnFirstFailure = false
	for _, name := range []string{"a", "b", "c"} {
		writeCase(t, f.root, name, name+"\n")
	}
	f.interpreter.suffix["a"] = "extra"

	outcome := f.run(t)

	if diff := cmp.Diff([]string{"a", "b", "c"}, f.interpreter.calls); diff != "" {
		t.Errorf("every case must run (-want +got):\n%s", diff)
	}
	if outcome.Aborted {
		t.Error("run must not be aborted")
	}
	if outcome.ExitCode() != domain.ExitIncomplete {
		t.Errorf("expected exit code 1, got %d", outcome.ExitCode())
	}
	lines := f.lines()
	if !strings.Contains(f.console.String(), "Total tests: 3, successful: 2") {
		t.Errorf("expected tally line, got %v", lines)
	}
}

func TestSuite_GroupOrder(t *testing.T) {
	f := newSuiteFixture(t)
	f.cfg.Groups = []string{"deep", "."}
	writeCase(t, f.root, "b", "1\n")
	writeCase(t, f.root, "a", "2\n")
	writeCase(t, filepath.Join(f.root, "deep"), "z", "3\n")
	writeCase(t, filepath.Join(f.root, "deep"), "y", "4\n")

	outcome := f.run(t)

	if diff := cmp.Diff([]string{"y", "z", "a", "b"}, f.interpreter.calls); diff != "" {
		t.Errorf("run order mismatch (-want +got):\n%s", diff)
	}
	if outcome.ExitCode() != domain.ExitOK {
		t.Errorf("expected exit code 0, got %d", outcome.ExitCode())
	}
	if got := f.lines()[0]; got != "Evaluating deep/y" {
		t.Errorf("expected group-qualified name, got %q", got)
	}
}

func TestSuite_MissingGroupFailsBeforeAnyCase(t *testing.T) {
	f := newSuiteFixture(t)
	f.cfg.Groups = []string{".", "missing"}
	writeCase(t, f.root, "a", "1\n")

	_, err := f.suite().Run(context.Background(), f.cfg.GetGroups())
	if !errors.Is(err, domain.ErrDiscovery) {
		t.Fatalf("expected ErrDiscovery, got %v", err)
	}
	if len(f.interpreter.calls) != 0 {
		t.Errorf("no case may run, got %v", f.interpreter.calls)
	}
	if info, err := os.Stat(f.outDir); err != nil || !info.IsDir() {
		t.Errorf("workspace must be created before discovery")
	}
}

func TestSuite_EmptyCorpus(t *testing.T) {
	f := newSuiteFixture(t)
	if err := os.MkdirAll(f.root, 0755); err != nil {
		t.Fatalf("failed to create corpus: %v", err)
	}

	outcome := f.run(t)

	if outcome.ExitCode() != domain.ExitIncomplete {
		t.Errorf("an empty run must not exit 0, got %d", outcome.ExitCode())
	}
}

func TestSuite_Idempotent(t *testing.T) {
	f := newSuiteFixture(t)
	for _, name := range []string{"a", "b"} {
		writeCase(t, f.root, name, strings.Repeat(name, 3)+"\n")
	}

	first := f.run(t)
	logA, err := os.ReadFile(filepath.Join(f.outDir, "a.log"))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	second := f.run(t)
	logA2, err := os.ReadFile(filepath.Join(f.outDir, "a.log"))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	if first.ExitCode() != domain.ExitOK || second.ExitCode() != domain.ExitOK {
		t.Errorf("expected both runs to pass, got %d and %d", first.ExitCode(), second.ExitCode())
	}
	if !bytes.Equal(logA, logA2) {
		t.Errorf("logs differ between runs: %q vs %q", logA, logA2)
	}
}

func TestSuite_ScopedArtifacts(t *testing.T) {
	f := newSuiteFixture(t)
	f.cfg.ScopeArtifacts = true
	f.cfg.Groups = []string{".", "deep"}
	writeCase(t, f.root, "same", "1\n")
	writeCase(t, filepath.Join(f.root, "deep"), "same", "1\n")

	f.run(t)

	if len(f.compiler.dirs) != 2 {
		t.Fatalf("expected 2 compilations, got %d", len(f.compiler.dirs))
	}
	if f.compiler.dirs[0] == f.compiler.dirs[1] {
		t.Errorf("same-named cases in different groups share artifact dir %s", f.compiler.dirs[0])
	}
	for _, dir := range f.compiler.dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("expected artifact dir %s to exist", dir)
		}
	}
}

func TestSuite_NameFilter(t *testing.T) {
	f := newSuiteFixture(t)
	f.cfg.Flags.NameFilter = "test0*"
	for _, name := range []string{"test001", "test002", "test101"} {
		writeCase(t, f.root, name, "x\n")
	}

	outcome := f.run(t)

	if outcome.Total != 2 {
		t.Errorf("expected 2 cases after filtering, got %d", outcome.Total)
	}
}

func TestSuite_Progress(t *testing.T) {
	f := newSuiteFixture(t)
	for _, name := range []string{"a", "b"} {
		writeCase(t, f.root, name, "x\n")
	}
	f.interpreter.exitCode["b"] = 1

	suite := f.suite()
	progress := &recordingProgress{}
	suite.SetProgress(progress)

	if _, err := suite.Run(context.Background(), f.cfg.GetGroups()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([][2]int{{1, 0}, {1, 1}}, progress.updates); diff != "" {
		t.Errorf("progress updates mismatch (-want +got):\n%s", diff)
	}
	if !progress.finished {
		t.Error("progress must be finished when the run stops")
	}
}

func TestSuite_CanceledContext(t *testing.T) {
	f := newSuiteFixture(t)
	writeCase(t, f.root, "a", "x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.suite().Run(ctx, f.cfg.GetGroups())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(f.interpreter.calls) != 0 {
		t.Errorf("no case may run after cancellation, got %v", f.interpreter.calls)
	}
}
