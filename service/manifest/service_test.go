package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromManifest(t *testing.T) {
	dir := t.TempDir()

	path := write(t, dir, "pubspec.yaml", "name: nokubooru\nversion: 1.1.1\nenvironment:\n  sdk: '>=3.0.0 <4.0.0'\n")
	got, err := FromManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "1.1.1", got)

	path = write(t, dir, "build.yaml", "version: 1.4.0+12\n")
	got, err = FromManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0+12", got)

	path = write(t, dir, "float.yaml", "version: 1.10\n")
	got, err = FromManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "1.10", got)
}

func TestFromManifestMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "pubspec.yaml", "name: nokubooru\n")

	_, err := FromManifest(path)
	require.ErrorIs(t, err, ErrNoVersion)
	assert.Contains(t, err.Error(), path)

	path = write(t, dir, "nested.yaml", "version:\n  major: 1\n")
	_, err = FromManifest(path)
	require.ErrorIs(t, err, ErrNoVersion)
}

func TestCurrentPrefersVersionFile(t *testing.T) {
	dir := t.TempDir()
	manifest := write(t, dir, "pubspec.yaml", "version: 1.1.1\n")
	versionFile := write(t, dir, "VERSION", "2.3.4\n")

	got, err := Current(manifest, versionFile)
	require.NoError(t, err)
	assert.Equal(t, "2.3.4", got)

	got, err = Current(manifest, "")
	require.NoError(t, err)
	assert.Equal(t, "1.1.1", got)
}

func TestFromVersionFileEmpty(t *testing.T) {
	path := write(t, t.TempDir(), "VERSION", "  \n")
	_, err := FromVersionFile(path)
	require.ErrorIs(t, err, ErrNoVersion)
}

func TestCurrentMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Current(filepath.Join(dir, "pubspec.yaml"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}
