package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ltr/internal/domain"
)

// Config holds all configuration for a run
type Config struct {
	// Corpus settings
	CorpusRoot string
	Groups     []string

	// External tools
	Compiler    string
	Interpreter string

	// Output settings
	OutputDir string

	// Corpus layout
	ExpectedDir string
	SourceExt   string
	InputExt    string
	LogExt      string
	ArtifactExt string

	// Execution settings
	StopOnFirstFailure bool
	ScopeArtifacts     bool
	Timeout            time.Duration

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		CorpusRoot:         DefaultCorpusRoot,
		Compiler:           DefaultCompiler,
		Interpreter:        DefaultInterpreter,
		OutputDir:          DefaultOutputDir,
		ExpectedDir:        DefaultExpectedDir,
		SourceExt:          DefaultSourceExt,
		InputExt:           DefaultInputExt,
		LogExt:             DefaultLogExt,
		ArtifactExt:        DefaultArtifactExt,
		StopOnFirstFailure: true,
	}
	// Copy default groups
	cfg.Groups = make([]string, len(DefaultGroups))
	copy(cfg.Groups, DefaultGroups)
	return cfg
}

// Load builds a config from defaults, the config file, the environment and flags,
// in increasing order of precedence
func Load(flags Flags) (*Config, error) {
	cfg := New()

	configFile := flags.ConfigFile
	required := configFile != ""
	if !required {
		configFile = DefaultConfigFile
	}
	if err := cfg.LoadFile(configFile, required); err != nil {
		return nil, err
	}

	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}

	cfg.Apply(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overrides config values with the flags that were set
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.CorpusRoot != "" {
		c.CorpusRoot = flags.CorpusRoot
	}
	if len(flags.Groups) > 0 {
		c.Groups = append([]string(nil), flags.Groups...)
	}
	if flags.Compiler != "" {
		c.Compiler = flags.Compiler
	}
	if flags.Interpreter != "" {
		c.Interpreter = flags.Interpreter
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.KeepGoing {
		c.StopOnFirstFailure = false
	}
	if flags.ScopeArtifacts {
		c.ScopeArtifacts = true
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
}

// Validate checks that the config describes a runnable corpus
func (c *Config) Validate() error {
	if c.CorpusRoot == "" {
		return fmt.Errorf("%w: corpus root is empty", domain.ErrConfig)
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("%w: no groups configured", domain.ErrConfig)
	}
	if c.Compiler == "" {
		return fmt.Errorf("%w: compiler is empty", domain.ErrConfig)
	}
	if c.Interpreter == "" {
		return fmt.Errorf("%w: interpreter is empty", domain.ErrConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output dir is empty", domain.ErrConfig)
	}
	if c.SourceExt == "" {
		return fmt.Errorf("%w: source extension is empty", domain.ErrConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", domain.ErrConfig, c.Timeout)
	}
	return nil
}

// Layout returns the corpus naming conventions
func (c *Config) Layout() domain.Layout {
	return domain.Layout{
		SourceExt:   c.SourceExt,
		InputExt:    c.InputExt,
		LogExt:      c.LogExt,
		ArtifactExt: c.ArtifactExt,
		ExpectedDir: c.ExpectedDir,
	}
}

// GetGroups returns the configured groups in order
func (c *Config) GetGroups() []domain.Group {
	return domain.NewGroups(c.Groups)
}

// GetInterpreterPath returns the interpreter path. Relative paths containing a
// separator are made absolute so they survive the compiler's working directory.
func (c *Config) GetInterpreterPath() string {
	return absIfPath(c.Interpreter)
}

// GetCompilerPath returns the compiler path, left as-is when it is a bare name
func (c *Config) GetCompilerPath() string {
	return absIfPath(c.Compiler)
}

// GetArtifactRoot returns the directory under which per-group artifact
// directories are created when artifacts are scoped
func (c *Config) GetArtifactRoot() string {
	return filepath.Join(c.OutputDir, "artifacts")
}

func absIfPath(p string) string {
	if filepath.IsAbs(p) || !strings.ContainsRune(filepath.ToSlash(p), '/') {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
