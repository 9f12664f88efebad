// Package yaml loads coursecheck configuration files with gopkg.in/yaml.v3.
//
// Values present in the file override coursecheck.DefaultConfig; absent keys
// keep their defaults. Unknown keys are rejected.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/coursecheck"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	DB        *string      `yaml:"db"`
	Threshold *int         `yaml:"threshold"`
	Model     *string      `yaml:"model"`
	ProgramA  *fileProgram `yaml:"program_a"`
	ProgramB  *fileProgram `yaml:"program_b"`
}

type fileProgram struct {
	Name                 *string `yaml:"name"`
	Path                 *string `yaml:"path"`
	Format               *string `yaml:"format"`
	Delimiter            *string `yaml:"delimiter"`
	Selector             *string `yaml:"selector"`
	NameColumn           *string `yaml:"name_column"`
	ClassificationColumn *string `yaml:"classification_column"`
	Template             *string `yaml:"template"`
}

// LoadConfig reads the configuration file at path. Relative database and
// catalog paths in the file are resolved against the file's directory.
func LoadConfig(path string) (*coursecheck.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, coursecheck.Errorf(coursecheck.ENOTFOUND, "config file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeConfig reads a configuration from r. Relative paths are kept as is.
func DecodeConfig(r io.Reader) (*coursecheck.Config, error) {
	return decode(r, "")
}

func decode(r io.Reader, baseDir string) (*coursecheck.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "invalid config: %v", err)
	}

	cfg := coursecheck.DefaultConfig()
	if fc.DB != nil {
		cfg.DBPath = resolve(baseDir, *fc.DB)
	}
	if fc.Threshold != nil {
		cfg.Threshold = *fc.Threshold
	}
	if fc.Model != nil {
		cfg.Model = *fc.Model
	}
	fc.ProgramA.apply(&cfg.ProgramA, baseDir)
	fc.ProgramB.apply(&cfg.ProgramB, baseDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *fileProgram) apply(dst *coursecheck.Program, baseDir string) {
	if p == nil {
		return
	}
	set(&dst.Name, p.Name)
	if p.Path != nil {
		dst.Path = resolve(baseDir, *p.Path)
	}
	set(&dst.Layout.Format, p.Format)
	set(&dst.Layout.Delimiter, p.Delimiter)
	set(&dst.Layout.Selector, p.Selector)
	set(&dst.Layout.NameColumn, p.NameColumn)
	set(&dst.Layout.ClassificationColumn, p.ClassificationColumn)
	set(&dst.Layout.Template, p.Template)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func resolve(baseDir, path string) string {
	if baseDir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
