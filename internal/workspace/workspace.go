// Package workspace prepares the directories a run writes into.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"ltr/internal/domain"
)

// Workspace owns the output directory for actual transcripts and, when
// artifacts are scoped, one artifact directory per group
type Workspace struct {
	outputDir    string
	artifactRoot string
	scoped       bool
}

// New creates a Workspace. With scoped unset every artifact goes to the
// current working directory.
func New(outputDir, artifactRoot string, scoped bool) *Workspace {
	return &Workspace{
		outputDir:    outputDir,
		artifactRoot: artifactRoot,
		scoped:       scoped,
	}
}

// OutputDir returns the directory actual transcripts are written to
func (w *Workspace) OutputDir() string {
	return w.outputDir
}

// ArtifactDir returns the directory the artifacts of group are compiled into
func (w *Workspace) ArtifactDir(group domain.Group) string {
	if !w.scoped {
		return "."
	}
	return filepath.Join(w.artifactRoot, group.Key())
}

// Prepare creates the output directory and the artifact directories of groups.
// It is safe to call repeatedly.
func (w *Workspace) Prepare(groups []domain.Group) error {
	if err := Ensure(w.outputDir); err != nil {
		return err
	}
	if !w.scoped {
		return nil
	}
	for _, group := range groups {
		if err := Ensure(w.ArtifactDir(group)); err != nil {
			return err
		}
	}
	return nil
}

// Ensure creates dir and any missing parents
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrWorkspace, dir, err)
	}
	return nil
}
