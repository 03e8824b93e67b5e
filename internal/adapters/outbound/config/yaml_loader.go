// Package config reads .tplcheck.yaml, which supplies defaults for flags
// the user did not pass explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = ".tplcheck.yaml"

// Defaults mirrors the run flags. Pointer fields distinguish "not set in
// the file" from explicit zero values.
type Defaults struct {
	Tool           string `yaml:"tool"`
	Template       string `yaml:"template"`
	DataRoot       string `yaml:"data_root"`
	LogDir         string `yaml:"log_dir"`
	Pattern        string `yaml:"pattern"`
	Recursive      *bool  `yaml:"recursive"`
	SkipPriorOK    *bool  `yaml:"skip_prior_ok"`
	NoUI           *bool  `yaml:"noui"`
	ExitAfter      *bool  `yaml:"exit"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Workers        int    `yaml:"workers"`
}

// Loader reads defaults from .tplcheck.yaml in a directory.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load reads .tplcheck.yaml from dir. A missing file is not an error and
// returns zero Defaults; a malformed file is a configuration error.
func (l *Loader) Load(dir string) (Defaults, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults{}, nil
		}
		return Defaults{}, err
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return d, nil
}
