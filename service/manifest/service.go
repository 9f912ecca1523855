// Package manifest resolves the project's current version.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoVersion is returned when the version source holds no version.
var ErrNoVersion = errors.New("no version found")

// Current returns the version recorded in versionFile when it is set,
// otherwise the "version" key of the YAML manifest.
func Current(manifestPath, versionFile string) (string, error) {
	if versionFile != "" {
		return FromVersionFile(versionFile)
	}
	return FromManifest(manifestPath)
}

// FromManifest reads the top-level "version" key of a pubspec-style manifest.
func FromManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc struct {
		Version yaml.Node `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	// Read the raw scalar so "1.10" is not turned into a float.
	v := strings.TrimSpace(doc.Version.Value)
	if doc.Version.Kind != yaml.ScalarNode || v == "" {
		return "", fmt.Errorf("%w in %s", ErrNoVersion, path)
	}
	return v, nil
}

// FromVersionFile reads a plain text file holding only the version.
func FromVersionFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file: %w", err)
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", fmt.Errorf("%w in %s", ErrNoVersion, path)
	}
	return v, nil
}
