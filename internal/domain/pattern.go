package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// regexMetaChars: a pattern containing any of these is treated as a regular
// expression; otherwise it is a shell-style glob.
const regexMetaChars = "^$+?()[]{}"

// FilenameMatcher matches bare filenames (never full paths) against either
// a glob or a regular expression, chosen from the pattern's syntax.
type FilenameMatcher struct {
	raw string
	re  *regexp.Regexp // nil when the pattern is a glob
}

// NewFilenameMatcher compiles pattern. Regular expressions use
// match-from-start semantics: the pattern is wrapped as ^(?:pattern), the
// same anchoring Python's re.match applies. An invalid regular expression
// is a configuration error.
func NewFilenameMatcher(pattern string) (*FilenameMatcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("file pattern must not be empty")
	}
	if !strings.ContainsAny(pattern, regexMetaChars) {
		return &FilenameMatcher{raw: pattern}, nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression pattern %q: %w", pattern, err)
	}
	return &FilenameMatcher{raw: pattern, re: re}, nil
}

// Match reports whether the bare filename matches the pattern.
func (m *FilenameMatcher) Match(name string) bool {
	if m.re != nil {
		return m.re.MatchString(name)
	}
	ok, err := path.Match(m.raw, name)
	return err == nil && ok
}

// IsRegex reports whether the pattern was compiled as a regular expression.
func (m *FilenameMatcher) IsRegex() bool { return m.re != nil }

// Kind returns "regex" or "glob" for display.
func (m *FilenameMatcher) Kind() string {
	if m.re != nil {
		return "regex"
	}
	return "glob"
}

func (m *FilenameMatcher) String() string { return m.raw }
