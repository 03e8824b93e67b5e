package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplcheck/tplcheck/internal/domain"
)

func TestFilenameMatcher_Glob(t *testing.T) {
	m, err := domain.NewFilenameMatcher("*.efx.*")
	require.NoError(t, err)

	assert.False(t, m.IsRegex())
	assert.Equal(t, "glob", m.Kind())
	assert.True(t, m.Match("a.efx.1"))
	assert.True(t, m.Match("weapon.efx.17"))
	assert.False(t, m.Match("b.dat"))
	assert.False(t, m.Match("a.efx"))
}

func TestFilenameMatcher_RegexDetection(t *testing.T) {
	// Any of ^$+?()[]{} switches to regex mode.
	m, err := domain.NewFilenameMatcher(`data_[0-9]+\.bin`)
	require.NoError(t, err)

	assert.True(t, m.IsRegex())
	assert.Equal(t, "regex", m.Kind())
	assert.True(t, m.Match("data_042.bin"))
	assert.False(t, m.Match("data_.bin"))
}

func TestFilenameMatcher_RegexMatchesFromStart(t *testing.T) {
	m, err := domain.NewFilenameMatcher(`efx\.[0-9]`)
	require.NoError(t, err)

	// Anchored at the start, unanchored at the end.
	assert.True(t, m.Match("efx.1"))
	assert.True(t, m.Match("efx.1.bak"))
	assert.False(t, m.Match("a.efx.1"))
}

func TestFilenameMatcher_DotIsLiteralInGlobMode(t *testing.T) {
	// "." is not a regex trigger character, so this stays a glob.
	m, err := domain.NewFilenameMatcher("a.b")
	require.NoError(t, err)
	assert.False(t, m.IsRegex())
	assert.True(t, m.Match("a.b"))
	assert.False(t, m.Match("axb"))
}

func TestFilenameMatcher_InvalidRegexIsError(t *testing.T) {
	_, err := domain.NewFilenameMatcher("([a-z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regular expression")
}

func TestFilenameMatcher_EmptyPatternIsError(t *testing.T) {
	_, err := domain.NewFilenameMatcher("")
	require.Error(t, err)
}
