package domain

import (
	"path/filepath"
	"strings"
)

// Target is one file selected for validation in a run. The path is always
// absolute; a Target is immutable once selected.
type Target struct {
	Path string `json:"path"`
}

// Outcome is the result of one external-tool run against one target.
// Created exactly once per target, immutable thereafter.
type Outcome struct {
	Path         string  `json:"path"`
	RelativePath string  `json:"relative_path"`
	Verdict      Verdict `json:"verdict"`
	Message      string  `json:"message"`
	Stdout       string  `json:"stdout,omitempty"`
	Stderr       string  `json:"stderr,omitempty"`
}

// DisplayPath returns path relative to root for display. The second return
// is false when the path is not under root; the caller falls back to the
// bare filename and should surface the inconsistency rather than hide it.
func DisplayPath(path, root string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(path), false
	}
	return rel, true
}

// NormalizePath resolves a path to absolute, symlink-free, cleaned form so
// that skip-set membership tests are exact string matches. Names reached
// through a symlinked root must normalize to the same string as the real
// path, or a prior OK list stops matching. Paths that do not exist yet
// cannot be resolved and fall back to the cleaned absolute form.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}
