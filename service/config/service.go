// Package config loads the release configuration for a project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nokutoka/nokubuild/service/substitute"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration of the Nokubooru Flutter project.
func Default() *Config {
	return &Config{
		AppName:  "Nokubooru",
		Manifest: "pubspec.yaml",
		Substitutions: []substitute.Rule{
			{Path: "pubspec.yaml", Pattern: "version: {version}"},
			{Path: filepath.Join("lib", "about.dart"), Pattern: `applicationVersion: "{version}"`},
		},
		Targets: []Target{
			{
				Name:      "Android APK",
				Command:   "flutter build apk",
				OutputDir: filepath.Join("build", "app", "outputs", "flutter-apk"),
			},
			{
				Name:      "Windows executable",
				Command:   "flutter build windows",
				OutputDir: filepath.Join("build", "windows", "x64", "runner", "Release"),
			},
		},
		KillProcesses: []string{"java.exe", "adb.exe"},
	}
}

// Load reads configPath over the defaults. An empty configPath falls back to
// DefaultPath and tolerates its absence.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return finalize(cfg), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Lists replace the defaults wholesale when present in the file.
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	merge(cfg, &file)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return finalize(cfg), nil
}

func merge(base, override *Config) {
	if override.AppName != "" {
		base.AppName = override.AppName
	}
	if override.Manifest != "" {
		base.Manifest = override.Manifest
	}
	if override.VersionFile != "" {
		base.VersionFile = override.VersionFile
	}
	if override.Substitutions != nil {
		base.Substitutions = override.Substitutions
	}
	if override.Targets != nil {
		base.Targets = override.Targets
	}
	if override.KillProcesses != nil {
		base.KillProcesses = override.KillProcesses
	}
}

func validate(cfg *Config) error {
	for i, r := range cfg.Substitutions {
		if r.Path == "" {
			return fmt.Errorf("substitution %d has no path", i+1)
		}
		if r.Pattern == "" {
			return fmt.Errorf("substitution %s has no pattern", r.Path)
		}
	}
	for i, t := range cfg.Targets {
		if t.Command == "" {
			return fmt.Errorf("target %d has no command", i+1)
		}
	}
	return nil
}

// finalize fills target names and makes sure the version file, when used,
// is rewritten along with the other files.
func finalize(cfg *Config) *Config {
	for i := range cfg.Targets {
		if cfg.Targets[i].Name == "" {
			cfg.Targets[i].Name = cfg.Targets[i].Command
		}
	}
	if cfg.VersionFile == "" {
		return cfg
	}
	for _, r := range cfg.Substitutions {
		if filepath.Clean(r.Path) == filepath.Clean(cfg.VersionFile) {
			return cfg
		}
	}
	cfg.Substitutions = append(cfg.Substitutions, substitute.Rule{
		Path:    cfg.VersionFile,
		Pattern: substitute.Placeholder,
	})
	return cfg
}
