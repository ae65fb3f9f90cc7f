package domain

import "path/filepath"

// Layout describes the file naming conventions of a test corpus
type Layout struct {
	SourceExt   string // e.g. ".lama"
	InputExt    string // e.g. ".input"
	LogExt      string // e.g. ".log"
	ArtifactExt string // e.g. ".bc"
	ExpectedDir string // subdirectory of a group holding expected transcripts
}

// Case is a single compile-execute-compare unit
type Case struct {
	Group       Group
	Name        string
	Source      string // <group>/<name><source-ext>
	Input       string // <group>/<name><input-ext>
	Expected    string // <group>/<expected-dir>/<name><log-ext>
	Actual      string // <output-dir>/<name><log-ext>
	ArtifactDir string // directory the compiler runs in and deposits the artifact into

	artifactExt string
}

// Resolve derives every path of a case from its group and name
func Resolve(root string, group Group, name string, layout Layout, outputDir, artifactDir string) Case {
	dir := group.Dir(root)
	return Case{
		Group:       group,
		Name:        name,
		Source:      filepath.Join(dir, name+layout.SourceExt),
		Input:       filepath.Join(dir, name+layout.InputExt),
		Expected:    filepath.Join(dir, layout.ExpectedDir, name+layout.LogExt),
		Actual:      filepath.Join(outputDir, name+layout.LogExt),
		ArtifactDir: artifactDir,
		artifactExt: layout.ArtifactExt,
	}
}

// Artifact returns the path the compiler is expected to write the artifact to.
// The name depends only on the case name, so cases sharing a name share an
// artifact unless ArtifactDir differs between their groups.
func (c Case) Artifact() string {
	return filepath.Join(c.ArtifactDir, c.Name+c.artifactExt)
}

// ID returns "<group>/<name>" for display
func (c Case) ID() string {
	return filepath.ToSlash(filepath.Join(c.Group.String(), c.Name))
}
