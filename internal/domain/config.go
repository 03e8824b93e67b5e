package domain

import (
	"fmt"
	"runtime"
	"time"
)

// RunConfig holds everything one validation run needs. It is constructed
// once by the CLI layer, validated, and passed into the core by value; the
// core never reads ambient state.
type RunConfig struct {
	ToolPath     string        `json:"tool"`
	TemplatePath string        `json:"template"`
	DataRoot     string        `json:"data_root"`
	LogDir       string        `json:"log_dir"`
	Recursive    bool          `json:"recursive"`
	Pattern      string        `json:"pattern"`
	SkipPriorOK  bool          `json:"skip_prior_ok"`
	NoUI         bool          `json:"noui"`
	ExitAfter    bool          `json:"exit_after"`
	Timeout      time.Duration `json:"timeout"`
	Workers      int           `json:"workers"`
}

// DefaultWorkers is the worker-count default: detected CPU count, minimum 1.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

// Validate checks everything that can be checked without touching the
// filesystem. Each failure carries its own diagnostic; the first one found
// aborts the run before any file I/O. Filesystem existence checks live in
// the application layer's preflight.
func (c *RunConfig) Validate() error {
	if c.ToolPath == "" {
		return fmt.Errorf("tool executable path must not be empty")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template path must not be empty")
	}
	if c.DataRoot == "" {
		return fmt.Errorf("data root path must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("per-file timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	if _, err := NewFilenameMatcher(c.Pattern); err != nil {
		return err
	}
	return nil
}

// Matcher compiles the configured pattern. Call Validate first.
func (c *RunConfig) Matcher() (*FilenameMatcher, error) {
	return NewFilenameMatcher(c.Pattern)
}
