package substitute

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pubspec = `name: nokubooru
description: A booru client.
publish_to: 'none'
version: 1.1.1

environment:
  sdk: '>=3.0.0 <4.0.0'
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyManifest(t *testing.T) {
	path := writeFile(t, "pubspec.yaml", pubspec)

	n, err := Apply(path, "version: 1.1.1", "version: 1.1.2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `name: nokubooru
description: A booru client.
publish_to: 'none'
version: 1.1.2

environment:
  sdk: '>=3.0.0 <4.0.0'
`
	assert.Equal(t, want, string(got))
}

func TestApplyNoMatchLeavesContent(t *testing.T) {
	path := writeFile(t, "pubspec.yaml", pubspec)

	n, err := Apply(path, "version: 9.9.9", "version: 9.9.10")
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pubspec, string(got))
}

func TestApplyReplacesEveryOccurrence(t *testing.T) {
	path := writeFile(t, "about.dart", `applicationVersion: "1.1.1", // applicationVersion: "1.1.1"`)

	n, err := Apply(path, `applicationVersion: "1.1.1"`, `applicationVersion: "1.2.0"`)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `applicationVersion: "1.2.0", // applicationVersion: "1.2.0"`, string(got))
}

func TestApplyPreservesMode(t *testing.T) {
	path := writeFile(t, "build.sh", "VERSION=1.1.1\n")
	require.NoError(t, os.Chmod(path, 0o755))

	_, err := Apply(path, "1.1.1", "1.1.2")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestApplyMissingFile(t *testing.T) {
	_, err := Apply(filepath.Join(t.TempDir(), "missing.yaml"), "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyAll(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "pubspec.yaml")
	about := filepath.Join(dir, "about.dart")
	require.NoError(t, os.WriteFile(manifest, []byte(pubspec), 0o644))
	require.NoError(t, os.WriteFile(about, []byte(`applicationName: "Nokubooru",
applicationVersion: "1.1.1",
`), 0o644))

	results, err := ApplyAll([]Rule{
		{Path: manifest, Pattern: "version: {version}"},
		{Path: about, Pattern: `applicationVersion: "{version}"`},
	}, "1.1.1", "2.0.0")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "version: 2.0.0", results[0].NewPhrase)
	assert.Equal(t, 1, results[1].Replacements)

	got, err := os.ReadFile(about)
	require.NoError(t, err)
	assert.Contains(t, string(got), `applicationVersion: "2.0.0"`)
}

func TestApplyAllStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "pubspec.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(pubspec), 0o644))

	results, err := ApplyAll([]Rule{
		{Path: manifest, Pattern: "version: {version}"},
		{Path: filepath.Join(dir, "lib", "about.dart"), Pattern: `applicationVersion: "{version}"`},
	}, "1.1.1", "1.1.2")
	require.Error(t, err)
	require.Len(t, results, 1)

	got, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Contains(t, string(got), "version: 1.1.2")
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "version: 1.0.0", Phrase("version: {version}", "1.0.0"))
	assert.Equal(t, "no placeholder", Phrase("no placeholder", "1.0.0"))
}
