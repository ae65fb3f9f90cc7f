package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ltr/internal/domain"
)

// Environment variables recognised by LoadEnv
const (
	EnvCorpusRoot  = "LTR_CORPUS_ROOT"
	EnvGroups      = "LTR_GROUPS"
	EnvCompiler    = "LTR_COMPILER"
	EnvInterpreter = "LTR_INTERPRETER"
	EnvOutputDir   = "LTR_OUTPUT_DIR"
)

// LoadEnv loads envFile into the process environment, if it exists, and then
// applies the LTR_* variables. Variables already set in the environment win
// over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: load %s: %v", domain.ErrConfig, envFile, err)
		}
	}

	if v := os.Getenv(EnvCorpusRoot); v != "" {
		c.CorpusRoot = v
	}
	if v := os.Getenv(EnvCompiler); v != "" {
		c.Compiler = v
	}
	if v := os.Getenv(EnvInterpreter); v != "" {
		c.Interpreter = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if groups := parseList(os.Getenv(EnvGroups)); len(groups) > 0 {
		c.Groups = groups
	}
	return nil
}

func parseList(raw string) []string {
	fields := strings.Split(raw, ",")
	items := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
