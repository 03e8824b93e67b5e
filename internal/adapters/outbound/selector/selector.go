// Package selector implements target discovery by walking the data root.
package selector

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// FileSelector implements domain.TargetSelector. Pattern matching is
// filename-scoped: only the bare filename is ever matched, never the path.
type FileSelector struct {
	root      string
	recursive bool
}

func New(root string, recursive bool) *FileSelector {
	return &FileSelector{root: domain.NormalizePath(root), recursive: recursive}
}

// Select walks the root (the full subtree when recursive, direct children
// otherwise), keeps regular files whose bare filename matches, then
// subtracts skip-set members. Matched and Skipped counts are retained for
// the report even though only the net set is processed.
func (s *FileSelector) Select(matcher *domain.FilenameMatcher, skip domain.SkipSet) (*domain.Selection, error) {
	candidates, err := s.listFiles()
	if err != nil {
		return nil, err
	}

	sel := &domain.Selection{}
	for _, path := range candidates {
		if !matcher.Match(filepath.Base(path)) {
			continue
		}
		sel.Matched++
		if skip.Contains(path) {
			sel.Skipped++
			continue
		}
		sel.Targets = append(sel.Targets, domain.Target{Path: path})
	}

	// Deterministic submission order; completion order still varies.
	sort.Slice(sel.Targets, func(i, j int) bool {
		return sel.Targets[i].Path < sel.Targets[j].Path
	})
	return sel, nil
}

func (s *FileSelector) listFiles() ([]string, error) {
	if !s.recursive {
		entries, err := os.ReadDir(s.root)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, e := range entries {
			if e.Type().IsRegular() {
				files = append(files, filepath.Join(s.root, e.Name()))
			}
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

var _ domain.TargetSelector = (*FileSelector)(nil)
