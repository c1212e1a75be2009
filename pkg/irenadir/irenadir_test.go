package irenadir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_PathAccessors(t *testing.T) {
	d := New("/project/.irena")

	assert.Equal(t, "/project/.irena", d.Root())
	assert.Equal(t, "/project/.irena/site.yaml", d.SitePath())
	assert.Equal(t, "/project/.irena/local", d.LocalDir())
	assert.Equal(t, "/project/.irena/local/irena.log", d.LogPath())
	assert.Equal(t, "/project/.irena/.gitignore", d.GitignorePath())
}

func TestDir_Exists(t *testing.T) {
	tmp := t.TempDir()

	d := New(filepath.Join(tmp, "missing"))
	assert.False(t, d.Exists())

	d = New(tmp)
	assert.True(t, d.Exists())
}

func TestEnsureStructure(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".irena"))
	require.NoError(t, EnsureStructure(d))

	info, err := os.Stat(d.LocalDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "local/\n", string(data))
}

func TestEnsureStructure_KeepsGitignore(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".irena"))
	require.NoError(t, os.MkdirAll(d.Root(), 0o750))
	require.NoError(t, os.WriteFile(d.GitignorePath(), []byte("custom\n"), 0o600))

	require.NoError(t, EnsureStructure(d))
	require.NoError(t, EnsureStructure(d))

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}

func TestBootstrap(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".irena"))

	require.NoError(t, Bootstrap(d, []byte("brand: Irena\n"), false))

	data, err := os.ReadFile(d.SitePath())
	require.NoError(t, err)
	assert.Equal(t, "brand: Irena\n", string(data))
	assert.True(t, d.Exists())
}

func TestBootstrap_RefusesOverwrite(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".irena"))
	require.NoError(t, Bootstrap(d, []byte("brand: A\n"), false))

	err := Bootstrap(d, []byte("brand: B\n"), false)
	require.ErrorIs(t, err, ErrSiteExists)

	require.NoError(t, Bootstrap(d, []byte("brand: B\n"), true))
	data, err := os.ReadFile(d.SitePath())
	require.NoError(t, err)
	assert.Equal(t, "brand: B\n", string(data))
}
