package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplcheck/tplcheck/internal/domain"
)

func TestDisplayPath_UnderRoot(t *testing.T) {
	rel, under := domain.DisplayPath("/data/chunk/a.efx.1", "/data")
	assert.True(t, under)
	assert.Equal(t, "chunk/a.efx.1", rel)
}

func TestDisplayPath_OutsideRootFallsBackToFilename(t *testing.T) {
	rel, under := domain.DisplayPath("/elsewhere/a.efx.1", "/data")
	assert.False(t, under)
	assert.Equal(t, "a.efx.1", rel)
}

func TestDisplayPath_RootItself(t *testing.T) {
	rel, under := domain.DisplayPath("/data", "/data")
	assert.True(t, under)
	assert.Equal(t, ".", rel)
}

func TestNormalizePath_ResolvesSymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	require.NoError(t, os.MkdirAll(real, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(real, "a.efx.1"), []byte{0x01}, 0o644))
	link := filepath.Join(base, "link")
	require.NoError(t, os.Symlink(real, link))

	// The same file reached via the symlink and via the real directory must
	// normalize identically, or OK lists from one run stop matching the next.
	assert.Equal(t,
		domain.NormalizePath(filepath.Join(real, "a.efx.1")),
		domain.NormalizePath(filepath.Join(link, "a.efx.1")))
}

func TestNormalizePath_MissingPathFallsBackToCleanAbsolute(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "..", "missing", "a.efx.1")
	got := domain.NormalizePath(p)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Clean(p), got)
}

func TestSkipSet_ContainsIsExactAfterNormalization(t *testing.T) {
	s := domain.NewSkipSet()
	s.Add("/data/chunk/../chunk/a.efx.1")

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("/data/chunk/a.efx.1"))
	assert.False(t, s.Contains("/data/chunk/a.efx.2"))
}
