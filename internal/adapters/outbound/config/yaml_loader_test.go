package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplcheck/tplcheck/internal/adapters/outbound/config"
)

func TestLoader_MissingFileIsZeroDefaults(t *testing.T) {
	d, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Defaults{}, d)
}

func TestLoader_ReadsAllFields(t *testing.T) {
	dir := t.TempDir()
	content := `
tool: /opt/010editor/010editor
template: /templates/efx.bt
data_root: /data
log_dir: /data/logs
pattern: "*.efx.*"
recursive: false
skip_prior_ok: true
noui: true
exit: false
timeout_seconds: 90
workers: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tplcheck.yaml"), []byte(content), 0o644))

	d, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/010editor/010editor", d.Tool)
	assert.Equal(t, "/templates/efx.bt", d.Template)
	assert.Equal(t, "/data", d.DataRoot)
	assert.Equal(t, "/data/logs", d.LogDir)
	assert.Equal(t, "*.efx.*", d.Pattern)
	require.NotNil(t, d.Recursive)
	assert.False(t, *d.Recursive)
	require.NotNil(t, d.SkipPriorOK)
	assert.True(t, *d.SkipPriorOK)
	assert.Equal(t, 90, d.TimeoutSeconds)
	assert.Equal(t, 6, d.Workers)
}

func TestLoader_UnsetBoolsStayNil(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tplcheck.yaml"), []byte("pattern: '*'\n"), 0o644))

	d, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Nil(t, d.Recursive)
	assert.Nil(t, d.NoUI)
}

func TestLoader_MalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tplcheck.yaml"), []byte("pattern: [unclosed"), 0o644))

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".tplcheck.yaml")
}
