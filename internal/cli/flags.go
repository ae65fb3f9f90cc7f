package cli

import (
	"time"

	"ltr/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile     string
	EnvFile        string
	CorpusRoot     string
	Groups         []string
	Compiler       string
	Interpreter    string
	OutputDir      string
	NameFilter     string
	KeepGoing      bool
	ScopeArtifacts bool
	Timeout        time.Duration
	Progress       bool
	NoColor        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:     f.ConfigFile,
		EnvFile:        f.EnvFile,
		CorpusRoot:     f.CorpusRoot,
		Groups:         append([]string(nil), f.Groups...),
		Compiler:       f.Compiler,
		Interpreter:    f.Interpreter,
		OutputDir:      f.OutputDir,
		NameFilter:     f.NameFilter,
		KeepGoing:      f.KeepGoing,
		ScopeArtifacts: f.ScopeArtifacts,
		Timeout:        f.Timeout,
		Progress:       f.Progress,
		NoColor:        f.NoColor,
	}
}
