package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"ltr/internal/domain"
)

//go:embed config.schema.json
var schemaData []byte

var (
	fileSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// fileConfig mirrors the YAML config file. Pointers distinguish unset keys.
type fileConfig struct {
	CorpusRoot         *string  `yaml:"corpus_root"`
	Groups             []string `yaml:"groups"`
	Compiler           *string  `yaml:"compiler"`
	Interpreter        *string  `yaml:"interpreter"`
	OutputDir          *string  `yaml:"output_dir"`
	ExpectedDir        *string  `yaml:"expected_dir"`
	SourceExt          *string  `yaml:"source_ext"`
	InputExt           *string  `yaml:"input_ext"`
	LogExt             *string  `yaml:"log_ext"`
	ArtifactExt        *string  `yaml:"artifact_ext"`
	StopOnFirstFailure *bool    `yaml:"stop_on_first_failure"`
	ScopeArtifacts     *bool    `yaml:"scope_artifacts"`
	Timeout            *string  `yaml:"timeout"`
}

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		fileSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
		}
	})
	return compileErr
}

// ValidateFile checks YAML config data against the embedded schema
func ValidateFile(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parse config file: %v", domain.ErrConfig, err)
	}
	if raw == nil {
		// Empty file
		raw = map[string]any{}
	}

	// Round-trip through JSON so the validator sees JSON types
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: config file is not a mapping of plain values: %v", domain.ErrConfig, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}

	if err := fileSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}
	return nil
}

// LoadFile applies the YAML config file at path. A missing file is an error
// only when required is set.
func (c *Config) LoadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read config file: %v", domain.ErrConfig, err)
	}

	if err := ValidateFile(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: parse config file %s: %v", domain.ErrConfig, path, err)
	}
	return c.applyFile(fc)
}

func (c *Config) applyFile(fc fileConfig) error {
	setString(&c.CorpusRoot, fc.CorpusRoot)
	setString(&c.Compiler, fc.Compiler)
	setString(&c.Interpreter, fc.Interpreter)
	setString(&c.OutputDir, fc.OutputDir)
	setString(&c.ExpectedDir, fc.ExpectedDir)
	setString(&c.SourceExt, fc.SourceExt)
	setString(&c.InputExt, fc.InputExt)
	setString(&c.LogExt, fc.LogExt)
	setString(&c.ArtifactExt, fc.ArtifactExt)

	if len(fc.Groups) > 0 {
		c.Groups = append([]string(nil), fc.Groups...)
	}
	if fc.StopOnFirstFailure != nil {
		c.StopOnFirstFailure = *fc.StopOnFirstFailure
	}
	if fc.ScopeArtifacts != nil {
		c.ScopeArtifacts = *fc.ScopeArtifacts
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", domain.ErrConfig, err)
		}
		c.Timeout = d
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
